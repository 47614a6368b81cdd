package handler // reservation endpoints: stays, service links and quotes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// CreateReservation handles POST /v1/reservations. Dates may be supplied
// as YYYY-MM-DD or a full timestamp; they are normalized to calendar dates
// on save. A guest or room reference that does not resolve responds 422.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var res model.Reservation
	if err := c.Bind(&res); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if res.GuestID == 0 || res.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_id and room_id are required"})
	}
	res.ID = 0
	if _, err := h.Reservations.Save(c.Request().Context(), &res); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// UpdateReservation handles PUT /v1/reservations/:id.
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Reservations.Get(ctx, id); err != nil {
		return repoError(c, err)
	}
	var res model.Reservation
	if err := c.Bind(&res); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if res.GuestID == 0 || res.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_id and room_id are required"})
	}
	res.ID = id
	if _, err := h.Reservations.Save(ctx, &res); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// GetReservation handles GET /v1/reservations/:id. The response includes
// the computed number of nights alongside the stored fields.
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	res, err := h.Reservations.Get(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": res, "nights": res.Nights()})
}

// ListReservations handles GET /v1/reservations.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	items, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// DeleteReservation handles DELETE /v1/reservations/:id. Service links go
// with the reservation; a reservation that has invoices cannot be deleted.
func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Reservations.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddReservationService handles POST /v1/reservations/:id/services and
// appends a service link. The same service may be attached repeatedly;
// links are never merged.
func (h *ReservationHandler) AddReservationService(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		ServiceID uint64 `json:"service_id"`
		Quantity  uint32 `json:"quantity"` // optional, defaults to 1
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ServiceID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_id is required"})
	}
	ctx := c.Request().Context()
	res, err := h.Reservations.Get(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	if err := h.Reservations.AddService(ctx, res, body.ServiceID, body.Quantity); err != nil {
		return repoError(c, err)
	}
	lines, err := h.Reservations.ListServices(ctx, res.ID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"items": lines})
}

// ListReservationServices handles GET /v1/reservations/:id/services and
// returns the service links joined with current service details.
func (h *ReservationHandler) ListReservationServices(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	res, err := h.Reservations.Get(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	lines, err := h.Reservations.ListServices(ctx, res.ID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": lines})
}

// QuoteReservation handles GET /v1/reservations/:id/quote and returns the
// priced breakdown at current room and service prices. Nothing is
// persisted; quotes are recomputed on every call.
func (h *ReservationHandler) QuoteReservation(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	res, err := h.Reservations.Get(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	quote, err := h.Engine.Quote(ctx, res)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}
