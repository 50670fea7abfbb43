// Package reqdecode decodes and validates request payloads.
//
// JSON bodies are validated with go-playground/validator struct tags.
// Query strings are decoded into structs with gorilla/schema using the
// "schema" tag, then validated the same way.
package reqdecode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// MaxBodyBytes bounds a JSON request body.
const MaxBodyBytes = 1 << 20

var (
	validate = newValidator()
	query    = newQueryDecoder()
)

// newValidator reports fields by their wire names (json, then schema tag).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "schema"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// ErrEmptyBody is returned when a JSON body is required but missing.
var ErrEmptyBody = errors.New("request body is empty")

// JSON decodes the request body into dst and validates it.
func JSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return Struct(dst)
}

// Query decodes r's query string into dst and validates it.
func Query(r *http.Request, dst any) error {
	if err := query.Decode(dst, r.URL.Query()); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	return Struct(dst)
}

// Struct validates dst against its validate tags.
func Struct(dst any) error {
	if err := validate.Struct(dst); err != nil {
		return describe(err)
	}
	return nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	parts := make([]string, 0, len(ves))
	for _, fe := range ves {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return errors.New("invalid fields: " + strings.Join(parts, ", "))
}
