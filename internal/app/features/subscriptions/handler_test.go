package subscriptions_test

import (
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/coursehub/internal/app/features/errors"
	"github.com/dalemusser/coursehub/internal/app/features/subscriptions"
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/app/system/payments"
	"github.com/dalemusser/coursehub/internal/domain/models"
	"github.com/dalemusser/coursehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *subscriptions.Handler {
	logger := zap.NewNop()
	return subscriptions.NewHandler(docstore.New(db), uierrors.NewErrorLogger(logger), logger)
}

func subscribe(h *subscriptions.Handler, body string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	subscriptions.Routes(h).ServeHTTP(rec, testutil.NewJSONRequest("POST", "/", body))
	return rec
}

type subscribeBody struct {
	Message     string  `json:"message"`
	Status      string  `json:"status"`
	CheckoutURL *string `json:"checkout_url"`
}

func TestSubscribe_CardProviders(t *testing.T) {
	tests := []struct {
		provider string
		url      string
	}{
		{"stripe", payments.StripeCheckoutURL},
		{"PayPal", payments.PayPalCheckoutURL},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			ctx, cancel := testutil.TestContext()
			defer cancel()
			fx := testutil.NewFixtures(t, db)
			fx.CreateMember(ctx, "Ann", "ann@x.com", models.RoleMember, models.StatusInactive)

			rec := subscribe(newHandler(db), `{"email":"ann@x.com","provider":"`+tt.provider+`"}`)
			rec.AssertStatus(t, http.StatusOK)

			var body subscribeBody
			rec.DecodeJSON(t, &body)
			if body.Message != "Subscription initiated" || body.Status != "active" {
				t.Errorf("unexpected body: %+v", body)
			}
			if body.CheckoutURL == nil || *body.CheckoutURL != tt.url {
				t.Errorf("checkout_url: got %v, want %q", body.CheckoutURL, tt.url)
			}

			m := fx.GetMember(ctx, "ann@x.com")
			if m.SubscriptionStatus != models.StatusActive {
				t.Errorf("status: got %q, want active", m.SubscriptionStatus)
			}
			if n := fx.Count(ctx, docstore.InvoiceRequests, nil); n != 0 {
				t.Errorf("invoice requests: got %d, want 0", n)
			}
		})
	}
}

func TestSubscribe_Invoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateMember(ctx, "Ann", "ann@x.com", models.RoleMember, models.StatusInactive)

	rec := subscribe(newHandler(db), `{"email":"ann@x.com","provider":"invoice","company":"Acme"}`)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"checkout_url":null`)

	var body subscribeBody
	rec.DecodeJSON(t, &body)
	if body.Status != "pending" {
		t.Errorf("status: got %q, want pending", body.Status)
	}

	m := fx.GetMember(ctx, "ann@x.com")
	if m.SubscriptionStatus != models.StatusPending {
		t.Errorf("member status: got %q, want pending", m.SubscriptionStatus)
	}
	if m.Provider == nil || *m.Provider != models.ProviderInvoice {
		t.Errorf("provider: got %v, want invoice", m.Provider)
	}

	var inv models.InvoiceRequest
	if err := db.Collection(docstore.InvoiceRequests).FindOne(ctx, bson.M{"member_email": "ann@x.com"}).Decode(&inv); err != nil {
		t.Fatalf("invoice request not found: %v", err)
	}
	if inv.Status != models.InvoiceRequested {
		t.Errorf("invoice status: got %q, want requested", inv.Status)
	}
	if inv.Company == nil || *inv.Company != "Acme" {
		t.Errorf("company: got %v, want Acme", inv.Company)
	}
	if inv.Notes != nil {
		t.Errorf("notes: got %q, want nil", *inv.Notes)
	}
}

func TestSubscribe_InvoiceProviderIsCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateMember(ctx, "Ann", "ann@x.com", models.RoleMember, models.StatusInactive)

	rec := subscribe(newHandler(db), `{"email":"ann@x.com","provider":"INVOICE"}`)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Subscription initiated")

	reqs := fx.InvoiceRequests(ctx, "ann@x.com")
	if len(reqs) != 1 {
		t.Fatalf("invoice requests: got %d, want 1", len(reqs))
	}
	if reqs[0].Status != models.InvoiceRequested {
		t.Errorf("invoice status: got %q, want requested", reqs[0].Status)
	}

	m := fx.GetMember(ctx, "ann@x.com")
	if m.SubscriptionStatus != models.StatusPending {
		t.Errorf("member status: got %q, want pending", m.SubscriptionStatus)
	}
	if m.Provider == nil || *m.Provider != models.ProviderInvoice {
		t.Errorf("provider: got %v, want invoice", m.Provider)
	}
}

func TestSubscribe_UnknownMemberWritesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	rec := subscribe(newHandler(db), `{"email":"ghost@x.com","provider":"invoice"}`)
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Member not found")

	if n := fx.Count(ctx, docstore.InvoiceRequests, nil); n != 0 {
		t.Errorf("invoice requests: got %d, want 0", n)
	}
}

func TestSubscribe_InvalidProvider(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateMember(ctx, "Ann", "ann@x.com", models.RoleMember, models.StatusInactive)

	rec := subscribe(newHandler(db), `{"email":"ann@x.com","provider":"bitcoin"}`)
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid provider")

	if m := fx.GetMember(ctx, "ann@x.com"); m.SubscriptionStatus != models.StatusInactive {
		t.Errorf("status changed: %q", m.SubscriptionStatus)
	}
}

func TestSubscribe_BadBody(t *testing.T) {
	rec := subscribe(newHandler(nil), `{"email":"ann@x.com"}`)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestSubscribe_NoStore(t *testing.T) {
	rec := subscribe(newHandler(nil), `{"email":"ann@x.com","provider":"stripe"}`)
	rec.AssertStatus(t, http.StatusServiceUnavailable)
}
