package handler // handler contains the HTTP handlers for the management API

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/billing"
	"github.com/hoteldesk/hoteldesk/internal/model"
	"github.com/hoteldesk/hoteldesk/internal/repository"
)

// FrontDeskHandler bundles the repositories for the plain record entities:
// guests, staff, rooms and the service catalog. These are load/save/list
// endpoints with no derived state.
type FrontDeskHandler struct {
	Guests   *repository.GuestRepo
	Staff    *repository.StaffRepo
	Rooms    *repository.RoomRepo
	Services *repository.ServiceRepo
}

// NewFrontDeskHandler constructs a FrontDeskHandler and panics if any
// dependency is nil.
func NewFrontDeskHandler(guests *repository.GuestRepo, staff *repository.StaffRepo, rooms *repository.RoomRepo, services *repository.ServiceRepo) *FrontDeskHandler {
	if guests == nil || staff == nil || rooms == nil || services == nil {
		panic("nil repository passed to NewFrontDeskHandler")
	}
	return &FrontDeskHandler{Guests: guests, Staff: staff, Rooms: rooms, Services: services}
}

// ReservationHandler bundles everything the reservation endpoints need:
// the reservation repository, the pricing engine, the invoice issuer and
// the invoice repository for reads.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Engine       *billing.Engine
	Issuer       *billing.Issuer
	Invoices     *repository.InvoiceRepo
}

// NewReservationHandler constructs a ReservationHandler and panics if any
// dependency is nil.
func NewReservationHandler(reservations *repository.ReservationRepo, engine *billing.Engine, issuer *billing.Issuer, invoices *repository.InvoiceRepo) *ReservationHandler {
	if reservations == nil || engine == nil || issuer == nil || invoices == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: reservations, Engine: engine, Issuer: issuer, Invoices: invoices}
}

// paramID parses the numeric :id path parameter.
func paramID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// repoError translates the repository/billing error taxonomy into an HTTP
// response: not-found sentinels become 404, precondition violations 409,
// unresolved references 422, bad input 400, everything else 500. The
// original error text is returned for the first four classes; internal
// errors are masked.
func repoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrGuestNotFound),
		errors.Is(err, repository.ErrStaffNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrServiceNotFound),
		errors.Is(err, repository.ErrReservationNotFound),
		errors.Is(err, repository.ErrInvoiceNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrUnsaved),
		errors.Is(err, repository.ErrImmutableInvoice),
		errors.Is(err, repository.ErrRoomNumberTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrIntegrity):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrBadDate),
		errors.Is(err, repository.ErrNameRequired),
		errors.Is(err, repository.ErrNegativeAmount):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
