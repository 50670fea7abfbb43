// internal/app/system/authz/authz.go
//
// Package authz extracts the caller identity from a request.
//
// The identity is currently the unsigned X-Admin-Email header. It is read
// only here, so swapping it for a verified session or token changes this
// file and nothing downstream.
package authz

import (
	"net/http"
	"strings"
)

// AdminHeader carries the caller's email on admin-gated requests.
const AdminHeader = "X-Admin-Email"

// CallerEmail returns the identity presented by the request and whether one
// was presented at all.
func CallerEmail(r *http.Request) (string, bool) {
	email := strings.TrimSpace(r.Header.Get(AdminHeader))
	return email, email != ""
}
