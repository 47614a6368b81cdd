package handler // service catalog endpoints

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// CreateService handles POST /v1/services and adds a catalog entry.
func (h *FrontDeskHandler) CreateService(c echo.Context) error {
	var s model.Service
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s.ID = 0
	if _, err := h.Services.Save(c.Request().Context(), &s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// UpdateService handles PUT /v1/services/:id. Cost changes affect future
// quotes and invoices only; existing invoices are untouched snapshots.
func (h *FrontDeskHandler) UpdateService(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Services.Get(ctx, id); err != nil {
		return repoError(c, err)
	}
	var s model.Service
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s.ID = id
	if _, err := h.Services.Save(ctx, &s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// GetService handles GET /v1/services/:id.
func (h *FrontDeskHandler) GetService(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Services.Get(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// ListServices handles GET /v1/services.
func (h *FrontDeskHandler) ListServices(c echo.Context) error {
	items, err := h.Services.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
