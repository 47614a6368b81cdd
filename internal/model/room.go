package model

import "github.com/shopspring/decimal"

// Room statuses used by the front desk.  Status is a free-form label; these
// two are merely the conventional values.
const (
	RoomAvailable = "available"
	RoomOccupied  = "occupied"
)

// Room is a sellable hotel room.  The room number is unique across the
// hotel.  The nightly rate is kept as an exact decimal so that pricing never
// passes through binary floating point.  This struct corresponds to a row in
// the `rooms` table.
//
// Fields:
//  ID     primary key identifier, assigned by the store on first save.
//  Number unique room number.
//  Type   room type label (e.g. "single", "suite"), if recorded.
//  Rate   nightly rate, non-negative decimal money value.
//  Status free-form status label (see RoomAvailable / RoomOccupied).
type Room struct {
	ID     uint64          `json:"id"`             // rooms.id
	Number uint32          `json:"number"`         // rooms.number (unique)
	Type   *string         `json:"type,omitempty"` // rooms.type (nullable)
	Rate   decimal.Decimal `json:"rate"`           // rooms.rate DECIMAL(10,2)
	Status string          `json:"status"`         // rooms.status
}
