package handler // staff record endpoints

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// CreateStaff handles POST /v1/staff and registers a new staff member.
func (h *FrontDeskHandler) CreateStaff(c echo.Context) error {
	var s model.Staff
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s.ID = 0
	if _, err := h.Staff.Save(c.Request().Context(), &s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

// UpdateStaff handles PUT /v1/staff/:id and updates a staff member in place.
func (h *FrontDeskHandler) UpdateStaff(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Staff.Get(ctx, id); err != nil {
		return repoError(c, err)
	}
	var s model.Staff
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s.ID = id
	if _, err := h.Staff.Save(ctx, &s); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// GetStaff handles GET /v1/staff/:id.
func (h *FrontDeskHandler) GetStaff(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Staff.Get(c.Request().Context(), id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// ListStaff handles GET /v1/staff.
func (h *FrontDeskHandler) ListStaff(c echo.Context) error {
	items, err := h.Staff.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
