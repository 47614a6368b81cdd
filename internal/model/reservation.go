package model

import "github.com/shopspring/decimal"

// Reservation aggregates a stay: one guest in one room over a date range,
// optionally handled by a staff member, together with the set of additional
// services attached to the stay.  Status is a free-form label set by the
// caller (e.g. "confirmed"); no state machine is enforced.  This struct
// corresponds to a row in the `reservations` table.
//
// Fields:
//  ID       primary key identifier, assigned by the store on first save.
//  CheckIn  check-in calendar date (YYYY-MM-DD).
//  CheckOut check-out calendar date (YYYY-MM-DD).
//  Status   free-form status label.
//  GuestID  guest staying (required reference).
//  RoomID   room being occupied (required reference).
//  StaffID  handling employee, if any.
type Reservation struct {
	ID       uint64  `json:"id"`                 // reservations.id
	CheckIn  string  `json:"checkin"`            // reservations.checkin (YYYY-MM-DD)
	CheckOut string  `json:"checkout"`           // reservations.checkout (YYYY-MM-DD)
	Status   string  `json:"status"`             // reservations.status
	GuestID  uint64  `json:"guest_id"`           // reservations.guest_id
	RoomID   uint64  `json:"room_id"`            // reservations.room_id
	StaffID  *uint64 `json:"staff_id,omitempty"` // reservations.staff_id (nullable)
}

// Nights returns the stay length in whole calendar days, floored at zero.
// A same-day or inverted range yields zero nights rather than an error; a
// zero-night stay is legal and still bills any attached services.
func (r *Reservation) Nights() int {
	in := parseDay(r.CheckIn)
	out := parseDay(r.CheckOut)
	if in.IsZero() || out.IsZero() {
		return 0
	}
	n := int(out.Sub(in).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// ServiceLine is one service attachment on a reservation joined with the
// service's current details.  Duplicate attachments of the same service are
// separate lines and are billed independently, never merged.
//
// Fields:
//  ServiceID   service being billed.
//  Name        service name at read time.
//  Description service description, if recorded.
//  UnitCost    current unit cost of the service.
//  Quantity    positive quantity on this line (defaults to 1 on attach).
type ServiceLine struct {
	ServiceID   uint64          `json:"service_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Quantity    uint32          `json:"quantity"`
}
