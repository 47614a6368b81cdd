package handler // invoice issuing and lookup

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/queue"
	queuepub "github.com/hoteldesk/hoteldesk/internal/service"
)

// GenerateInvoice handles POST /v1/reservations/:id/invoices. It prices
// the reservation at current rates, persists an immutable snapshot dated
// today, and announces the new invoice on the queue. Repeated calls issue
// additional invoices; existing ones are never touched.
func (h *ReservationHandler) GenerateInvoice(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	res, err := h.Reservations.Get(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	inv, err := h.Issuer.Generate(ctx, res)
	if err != nil {
		return repoError(c, err)
	}

	event := queue.InvoiceIssuedEvent{
		InvoiceID:     inv.ID,
		ReservationID: res.ID,
		GuestID:       res.GuestID,
		RoomID:        res.RoomID,
		Nights:        res.Nights(),
		Total:         inv.Total.String(),
		IssueDate:     inv.IssueDate,
	}
	go func() {
		if err := queuepub.PublishInvoiceIssued(context.Background(), event); err != nil {
			log.Printf("invoice %d issued but event not published: %v", inv.ID, err)
		}
	}()

	return c.JSON(http.StatusCreated, inv)
}

// ListReservationInvoices handles GET /v1/reservations/:id/invoices.
func (h *ReservationHandler) ListReservationInvoices(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Reservations.Get(ctx, id); err != nil {
		return repoError(c, err)
	}
	items, err := h.Invoices.ListByReservation(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetInvoice handles GET /v1/invoices/:id.
func (h *ReservationHandler) GetInvoice(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	inv, err := h.Invoices.Get(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, inv)
}

// ListInvoices handles GET /v1/invoices.
func (h *ReservationHandler) ListInvoices(c echo.Context) error {
	items, err := h.Invoices.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
