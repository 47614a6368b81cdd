package model

import "github.com/shopspring/decimal"

// Invoice is a point-in-time snapshot of a reservation's computed total.
// Once created it is never updated; re-issuing an invoice for the same
// reservation after a price change produces a second row with a different
// total.  This struct corresponds to a row in the `invoices` table.
//
// Fields:
//  ID            primary key identifier, assigned by the store on first save.
//  IssueDate     calendar date the invoice was issued (YYYY-MM-DD).
//  Total         total amount owed at issue time, exact decimal.
//  ReservationID reservation this invoice was computed from.
type Invoice struct {
	ID            uint64          `json:"id"`             // invoices.id
	IssueDate     string          `json:"issue_date"`     // invoices.issue_date (YYYY-MM-DD)
	Total         decimal.Decimal `json:"total"`          // invoices.total DECIMAL(10,2)
	ReservationID uint64          `json:"reservation_id"` // invoices.reservation_id
}
