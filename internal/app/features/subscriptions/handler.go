// internal/app/features/subscriptions/handler.go
package subscriptions

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/policy/memberpolicy"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	invoicestore "github.com/dalemusser/coursehub/internal/app/store/invoices"
	memberstore "github.com/dalemusser/coursehub/internal/app/store/members"
	"github.com/dalemusser/coursehub/internal/app/system/payments"
	"github.com/dalemusser/coursehub/internal/app/system/reqdecode"
	"github.com/dalemusser/coursehub/internal/app/system/respond"
	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"go.uber.org/zap"
)

type Handler struct {
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	Members  *memberstore.Store
	Invoices *invoicestore.Store
	Policy   *memberpolicy.Policy
}

func NewHandler(docs *docstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	members := memberstore.New(docs)
	return &Handler{
		Log:      logger,
		ErrLog:   errLog,
		Members:  members,
		Invoices: invoicestore.New(docs),
		Policy:   memberpolicy.New(members),
	}
}

type subscribeInput struct {
	Email    string  `json:"email" validate:"required"`
	Provider string  `json:"provider" validate:"required"`
	Company  *string `json:"company"`
	Notes    *string `json:"notes"`
}

type subscribeResponse struct {
	Message     string                    `json:"message"`
	Status      models.SubscriptionStatus `json:"status"`
	CheckoutURL *string                   `json:"checkout_url"`
}

// HandleSubscribe starts a subscription for an existing member.
//
// Order: member lookup (404), provider check (400), invoice request for the
// invoice provider, then the member's status and provider. The two writes are
// not atomic; a member update that fails after the invoice was recorded is
// logged with both identifiers.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	var in subscribeInput
	if err := reqdecode.JSON(r, &in); err != nil {
		h.ErrLog.Write(w, r, uierrors.BadRequest(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, err := h.Policy.EnsureMember(ctx, in.Email); err != nil {
		if errors.Is(err, memberpolicy.ErrMemberNotFound) {
			h.ErrLog.Write(w, r, uierrors.NotFound("Member not found"))
			return
		}
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	provider, ok := models.ParseProvider(in.Provider)
	if !ok {
		h.ErrLog.Write(w, r, uierrors.BadRequest("Invalid provider"))
		return
	}
	co := payments.Start(provider)

	var invoiceID string
	if co.NeedsInvoice {
		id, err := h.Invoices.Request(ctx, in.Email, in.Company, in.Notes)
		if err != nil {
			h.ErrLog.Write(w, r, uierrors.FromStore(err))
			return
		}
		invoiceID = id
	}

	if err := h.Members.SetSubscription(ctx, in.Email, co.Status, co.Provider); err != nil {
		if invoiceID != "" {
			h.Log.Error("invoice recorded but member update failed",
				zap.String("invoice_id", invoiceID),
				zap.String("email", in.Email),
				zap.Error(err))
		}
		h.ErrLog.Write(w, r, uierrors.FromStore(err))
		return
	}

	h.Log.Info("subscription initiated",
		zap.String("email", in.Email),
		zap.String("provider", string(co.Provider)),
		zap.String("status", string(co.Status)))

	respond.OK(w, subscribeResponse{
		Message:     "Subscription initiated",
		Status:      co.Status,
		CheckoutURL: co.CheckoutURL,
	})
}
