package handler // room record endpoints

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// CreateRoom handles POST /v1/rooms and registers a new room. Room
// numbers are unique; a collision responds with 409.
func (h *FrontDeskHandler) CreateRoom(c echo.Context) error {
	var rm model.Room
	if err := c.Bind(&rm); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if rm.Number == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room number is required"})
	}
	rm.ID = 0
	if _, err := h.Rooms.Save(c.Request().Context(), &rm); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, rm)
}

// UpdateRoom handles PUT /v1/rooms/:id. Rate changes take effect for
// future quotes and invoices only; issued invoices keep their totals.
func (h *FrontDeskHandler) UpdateRoom(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Rooms.Get(ctx, id); err != nil {
		return repoError(c, err)
	}
	var rm model.Room
	if err := c.Bind(&rm); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rm.ID = id
	if _, err := h.Rooms.Save(ctx, &rm); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rm)
}

// GetRoom handles GET /v1/rooms/:id. The optional ?number=true query flag
// looks the room up by its unique room number instead of its identity.
func (h *FrontDeskHandler) GetRoom(c echo.Context) error {
	raw := c.Param("id")
	ctx := c.Request().Context()
	if c.QueryParam("number") == "true" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
		}
		rm, err := h.Rooms.GetByNumber(ctx, uint32(n))
		if err != nil {
			return repoError(c, err)
		}
		return c.JSON(http.StatusOK, rm)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rm, err := h.Rooms.Get(ctx, id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, rm)
}

// ListRooms handles GET /v1/rooms.
func (h *FrontDeskHandler) ListRooms(c echo.Context) error {
	items, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
