package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework for routing

	"github.com/hoteldesk/hoteldesk/internal/handler"    // handlers implementing the business logic
	"github.com/hoteldesk/hoteldesk/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probe this to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Session-free operations: register, login, token exchange, logout.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts either a bearer token or a refresh_token in the body,
	// so it does not sit behind the JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "RECEPTION"))
	auth.GET("/me", a.Me)
}

// RegisterFrontDesk registers the guest, staff, room and service catalog
// routes. Reads are public so terminals and kiosks can browse without a
// session; the optional cache middleware applies to them. All mutations
// require an authenticated staff account.
func RegisterFrontDesk(e *echo.Echo, h *handler.FrontDeskHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	read := e.Group("/v1")
	if cache != nil {
		read.Use(cache)
	}
	read.GET("/guests", h.ListGuests)
	read.GET("/guests/:id", h.GetGuest)
	read.GET("/staff", h.ListStaff)
	read.GET("/staff/:id", h.GetStaff)
	read.GET("/rooms", h.ListRooms)
	read.GET("/rooms/:id", h.GetRoom)
	read.GET("/services", h.ListServices)
	read.GET("/services/:id", h.GetService)

	write := e.Group("/v1")
	write.Use(middleware.JWTAuth(jwtSecret))
	write.Use(middleware.RequireRole("ADMIN", "RECEPTION"))
	write.POST("/guests", h.CreateGuest)
	write.PUT("/guests/:id", h.UpdateGuest)
	write.POST("/staff", h.CreateStaff)
	write.PUT("/staff/:id", h.UpdateStaff)
	write.POST("/rooms", h.CreateRoom)
	write.PUT("/rooms/:id", h.UpdateRoom)
	write.POST("/services", h.CreateService)
	write.PUT("/services/:id", h.UpdateService)
}

// RegisterReservations registers reservation, quote and invoice routes.
// Quotes and invoice reads are public; everything that writes rows sits
// behind the JWT and role middleware.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	read := e.Group("/v1")
	if cache != nil {
		read.Use(cache)
	}
	read.GET("/reservations", h.ListReservations)
	read.GET("/reservations/:id", h.GetReservation)
	read.GET("/reservations/:id/services", h.ListReservationServices)
	read.GET("/reservations/:id/quote", h.QuoteReservation)
	read.GET("/reservations/:id/invoices", h.ListReservationInvoices)
	read.GET("/invoices", h.ListInvoices)
	read.GET("/invoices/:id", h.GetInvoice)

	write := e.Group("/v1")
	write.Use(middleware.JWTAuth(jwtSecret))
	write.Use(middleware.RequireRole("ADMIN", "RECEPTION"))
	write.POST("/reservations", h.CreateReservation)
	write.PUT("/reservations/:id", h.UpdateReservation)
	write.DELETE("/reservations/:id", h.DeleteReservation)
	write.POST("/reservations/:id/services", h.AddReservationService)
	write.POST("/reservations/:id/invoices", h.GenerateInvoice)
}
