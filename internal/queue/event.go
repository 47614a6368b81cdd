// Package queue defines message payloads exchanged over the message broker.
package queue

// InvoiceIssuedEvent is published when an invoice has been persisted for a
// reservation. It carries enough information for downstream consumers to
// log or notify without querying the primary database. Total is the exact
// decimal amount as a string.
type InvoiceIssuedEvent struct {
	InvoiceID     uint64 `json:"invoice_id"`
	ReservationID uint64 `json:"reservation_id"`
	GuestID       uint64 `json:"guest_id"`
	RoomID        uint64 `json:"room_id"`
	Nights        int    `json:"nights"`
	Total         string `json:"total"`
	IssueDate     string `json:"issue_date"`
}
