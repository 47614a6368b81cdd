package repository

import (
	"context"
	"database/sql"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// InvoiceRepo persists invoice snapshots. Invoices are immutable after
// creation: there is no update path here, only insertion and retrieval.
// A reservation may accumulate any number of invoices over time.
type InvoiceRepo struct {
	db    *sql.DB
	store *Store[model.Invoice]
}

// NewInvoiceRepo constructs an InvoiceRepo bound to the given database.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db, store: NewStore(db, Mapping[model.Invoice]{
		Table: "invoices",
		Cols:  []string{"issue_date", "total", "reservation_id"},
		Fields: func(inv *model.Invoice) []any {
			return []any{&inv.IssueDate, &inv.Total, &inv.ReservationID}
		},
		ID:       func(inv *model.Invoice) uint64 { return inv.ID },
		SetID:    func(inv *model.Invoice, id uint64) { inv.ID = id },
		NotFound: ErrInvoiceNotFound,
	})}
}

// Create inserts a new invoice row and records the assigned identity on
// the invoice. Invoices are never updated; passing one that already has an
// identity fails with ErrImmutableInvoice.
func (r *InvoiceRepo) Create(ctx context.Context, inv *model.Invoice) (uint64, error) {
	if inv.ID != 0 {
		return 0, ErrImmutableInvoice
	}
	return r.store.Save(ctx, inv)
}

// Get fetches an invoice by identity, returning ErrInvoiceNotFound when
// absent.
func (r *InvoiceRepo) Get(ctx context.Context, id uint64) (*model.Invoice, error) {
	return r.store.Get(ctx, id)
}

// List returns all invoices ordered by identity.
func (r *InvoiceRepo) List(ctx context.Context) ([]*model.Invoice, error) {
	return r.store.List(ctx)
}

// ListByReservation returns every invoice issued for one reservation in
// issuance order. Multiple invoices with different totals are expected
// when prices changed between issuances.
func (r *InvoiceRepo) ListByReservation(ctx context.Context, reservationID uint64) ([]*model.Invoice, error) {
	const q = `SELECT id, issue_date, total, reservation_id FROM invoices WHERE reservation_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Invoice, 0)
	for rows.Next() {
		inv := new(model.Invoice)
		if err := rows.Scan(&inv.ID, &inv.IssueDate, &inv.Total, &inv.ReservationID); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
