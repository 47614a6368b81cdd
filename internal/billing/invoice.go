package billing

import (
	"context"
	"time"

	"github.com/hoteldesk/hoteldesk/internal/model"
	"github.com/hoteldesk/hoteldesk/internal/repository"
)

// Issuer turns a priced reservation into a persisted invoice snapshot.
// Each call computes the total at the moment of invocation; re-issuing
// after a price change intentionally produces a second invoice with a
// different total.
type Issuer struct {
	Engine   *Engine
	Invoices *repository.InvoiceRepo
}

// NewIssuer constructs an Issuer over the given pricing engine and
// invoice repository.
func NewIssuer(engine *Engine, invoices *repository.InvoiceRepo) *Issuer {
	return &Issuer{Engine: engine, Invoices: invoices}
}

// Generate prices the reservation now, stamps today's date and persists a
// new invoice row, returning the stored invoice. The reservation must have
// been saved (repository.ErrUnsaved otherwise). The invoice row is written
// in its own statement; it is not atomic with any preceding reservation or
// service-link writes, and the caller re-drives this step if it fails.
func (i *Issuer) Generate(ctx context.Context, res *model.Reservation) (*model.Invoice, error) {
	if res.ID == 0 {
		return nil, repository.ErrUnsaved
	}
	q, err := i.Engine.Quote(ctx, res)
	if err != nil {
		return nil, err
	}
	inv := &model.Invoice{
		IssueDate:     time.Now().UTC().Format(model.DateLayout),
		Total:         q.Total,
		ReservationID: res.ID,
	}
	if _, err := i.Invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}
