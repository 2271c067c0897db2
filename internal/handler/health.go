package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health answers GET /healthz with the flight this server holds and how
// many of its seats are booked.
func (h *BookingHandler) Health(c echo.Context) error {
	m := h.Svc.SeatMap()
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"flight": m.FlightCode,
		"booked": m.Booked,
		"seats":  m.Rows * m.Cols,
	})
}
