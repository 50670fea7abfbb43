package invoicestore

import (
	"context"

	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/domain/models"
)

type Store struct {
	ds *docstore.Store
}

func New(ds *docstore.Store) *Store {
	return &Store{ds: ds}
}

// Request records a manual invoice request in the "requested" state.
func (s *Store) Request(ctx context.Context, memberEmail string, company, notes *string) (string, error) {
	now := docstore.Now()
	return s.ds.Create(ctx, docstore.InvoiceRequests, models.InvoiceRequest{
		MemberEmail: memberEmail,
		Company:     company,
		Notes:       notes,
		Status:      models.InvoiceRequested,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

