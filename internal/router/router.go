package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/flight-seat-reservation/internal/handler"    // handlers that call the booking service
	"github.com/iliyamo/flight-seat-reservation/internal/middleware" // JWT, role and rate-limit middleware
	"github.com/iliyamo/flight-seat-reservation/internal/utils"      // role names
)

// RegisterRoutes registers routes outside /v1.  Currently it exposes only
// a health check.
func RegisterRoutes(e *echo.Echo, b *handler.BookingHandler) {
	e.GET("/healthz", b.Health)
}

// RegisterAPI registers the /v1 API.  Reading the seat map and searching
// are public; booking, cancelling and snapshot operations need an
// OPERATOR access token signed with jwtSecret for this server's flight.
// limiter wraps every /v1 route (pass a no-op middleware to disable it);
// on operator routes it runs after authentication so it can key on the
// operator.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, b *handler.BookingHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	pub := v1.Group("", limiter)
	// Token issuance for the operator account.
	pub.POST("/auth/login", a.Login)
	// Read-only views of the flight.
	pub.GET("/seats", b.Seats)
	pub.GET("/passengers", b.Search)

	// Everything that changes the grid or the snapshot.
	op := v1.Group("",
		middleware.JWTAuth(jwtSecret, b.Svc.FlightCode()),
		middleware.RequireRole(utils.RoleOperator),
		limiter,
	)
	op.POST("/bookings", b.Book)
	op.DELETE("/bookings/:seat", b.Cancel)
	op.POST("/snapshot/save", b.Save)
	op.POST("/snapshot/load", b.Load)
}
