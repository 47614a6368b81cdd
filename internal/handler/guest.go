package handler // guest record endpoints

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// CreateGuest handles POST /v1/guests and registers a new guest.
func (h *FrontDeskHandler) CreateGuest(c echo.Context) error {
	var g model.Guest
	if err := c.Bind(&g); err != nil { // bind the JSON payload into the model
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	g.ID = 0 // identity is assigned by the store, never by the client
	if _, err := h.Guests.Save(c.Request().Context(), &g); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

// UpdateGuest handles PUT /v1/guests/:id and updates a guest in place.
func (h *FrontDeskHandler) UpdateGuest(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Guests.Get(ctx, id); err != nil { // verify the guest exists before updating
		return repoError(c, err)
	}
	var g model.Guest
	if err := c.Bind(&g); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	g.ID = id
	if _, err := h.Guests.Save(ctx, &g); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// GetGuest handles GET /v1/guests/:id.
func (h *FrontDeskHandler) GetGuest(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, err := h.Guests.Get(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// ListGuests handles GET /v1/guests.
func (h *FrontDeskHandler) ListGuests(c echo.Context) error {
	items, err := h.Guests.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
