// Package billing computes what a stay costs. All arithmetic happens in
// exact decimal values; nothing is ever converted through binary floating
// point, so a 99.99 rate over 3 nights is exactly 299.97.
package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hoteldesk/hoteldesk/internal/model"
	"github.com/hoteldesk/hoteldesk/internal/repository"
)

// Quote is the priced breakdown of a reservation at a point in time. It is
// recomputed on every request; only invoices capture a total durably.
type Quote struct {
	ReservationID    uint64              `json:"reservation_id"`
	Nights           int                 `json:"nights"`
	RoomRate         decimal.Decimal     `json:"room_rate"`
	RoomSubtotal     decimal.Decimal     `json:"room_subtotal"`
	Services         []model.ServiceLine `json:"services"`
	ServicesSubtotal decimal.Decimal     `json:"services_subtotal"`
	Total            decimal.Decimal     `json:"total"`
}

// Engine prices reservations. It reads the current room rate and service
// costs from the record store on every call, so a quote always reflects
// prices as of now.
type Engine struct {
	Rooms        *repository.RoomRepo
	Reservations *repository.ReservationRepo
}

// NewEngine constructs a pricing engine over the given repositories.
func NewEngine(rooms *repository.RoomRepo, reservations *repository.ReservationRepo) *Engine {
	return &Engine{Rooms: rooms, Reservations: reservations}
}

// Quote computes the full price breakdown for a saved reservation:
//
//	roomSubtotal     = rate x nights (nights floored at zero)
//	servicesSubtotal = sum over links of unitCost x quantity
//	total            = roomSubtotal + servicesSubtotal
//
// A zero-night stay yields a zero room subtotal but still bills every
// attached service in full. The reservation must have been saved
// (repository.ErrUnsaved otherwise) and its room must still exist
// (repository.ErrRoomNotFound otherwise). Duplicate links to the same
// service contribute independently.
func (e *Engine) Quote(ctx context.Context, res *model.Reservation) (*Quote, error) {
	if res.ID == 0 {
		return nil, repository.ErrUnsaved
	}
	room, err := e.Rooms.Get(ctx, res.RoomID)
	if err != nil {
		return nil, err
	}
	nights := res.Nights()
	roomSubtotal := room.Rate.Mul(decimal.NewFromInt(int64(nights)))

	lines, err := e.Reservations.ListServices(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	servicesSubtotal := decimal.Zero
	for _, l := range lines {
		servicesSubtotal = servicesSubtotal.Add(l.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return &Quote{
		ReservationID:    res.ID,
		Nights:           nights,
		RoomRate:         room.Rate,
		RoomSubtotal:     roomSubtotal,
		Services:         lines,
		ServicesSubtotal: servicesSubtotal,
		Total:            roomSubtotal.Add(servicesSubtotal),
	}, nil
}
