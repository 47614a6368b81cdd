// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios. For example,
// ErrUnsaved indicates the caller passed an entity that has never been
// saved to an operation that requires an assigned identity, while
// ErrIntegrity signals that a foreign-key reference did not resolve at the
// store boundary.
package repository

import (
	"errors"
	"strings"
)

// ErrUnsaved is returned when an operation requires a saved entity (one
// with an assigned identity) but received an unsaved one, such as attaching
// a service to a reservation that was never saved. This is always a caller
// bug; handlers should translate it into an HTTP 409 response.
var ErrUnsaved = errors.New("entity has not been saved")

// ErrIntegrity is returned when a write references a row that does not
// exist, e.g. a reservation pointing at a deleted guest. It is propagated
// from the database's foreign-key checks, never masked. Handlers should
// translate this into an HTTP 422 response.
var ErrIntegrity = errors.New("foreign key reference does not resolve")

// ErrImmutableInvoice is returned when a caller tries to re-save an
// invoice that already has an identity. Invoices are point-in-time
// snapshots; issue a new one instead of mutating an old one.
var ErrImmutableInvoice = errors.New("invoices cannot be modified after creation")

// ErrRoomNumberTaken is returned when saving a room whose number collides
// with an existing room. Room numbers are unique across the hotel.
var ErrRoomNumberTaken = errors.New("room number already exists")

// Per-entity not-found sentinels. Each generic store instance maps
// sql.ErrNoRows onto its entity's sentinel so callers never depend on
// database/sql directly.
var (
	ErrGuestNotFound       = errors.New("guest not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
)

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062), e.g. inserting a room number that already exists.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}

// isFKViolation reports whether err is a MySQL foreign-key violation:
// 1452 when an inserted/updated row references a missing parent, 1451 when
// a delete would orphan child rows.
func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1452") || strings.Contains(msg, "1451")
}
