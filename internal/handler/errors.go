package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// statusFor maps store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, reservation.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, reservation.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, reservation.ErrNoSnapshot):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// fail writes err as {"error": ...}.  I/O details stay in the log; the
// client only sees a generic message for 500s.
func fail(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "storage error"
	}
	return c.JSON(code, echo.Map{"error": msg})
}
