package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-seat-reservation/internal/service"
)

// BookingHandler exposes the booking service over HTTP.  Mutating
// routes are expected to sit behind JWTAuth + RequireRole.
type BookingHandler struct {
	Svc *service.BookingService
}

// NewBookingHandler panics on a nil service.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc}
}

type bookReq struct {
	Name string `json:"name"`
	Seat string `json:"seat"`
}

// Seats handles GET /v1/seats.  The default is the JSON seat map;
// ?format=text returns the same view the menu prints.
func (h *BookingHandler) Seats(c echo.Context) error {
	if strings.EqualFold(c.QueryParam("format"), "text") {
		var b strings.Builder
		if err := h.Svc.Render(&b); err != nil {
			return fail(c, err)
		}
		return c.String(http.StatusOK, b.String())
	}
	return c.JSON(http.StatusOK, h.Svc.SeatMap())
}

// Search handles GET /v1/passengers?q=.  An empty match list is 200.
func (h *BookingHandler) Search(c echo.Context) error {
	matches, err := h.Svc.Search(c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count": len(matches),
		"items": matches,
	})
}

// Book handles POST /v1/bookings with {"name": ..., "seat": ...}.
func (h *BookingHandler) Book(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := h.Svc.Book(c.Request().Context(), req.Name, req.Seat)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Cancel handles DELETE /v1/bookings/:seat and returns the removed
// passenger.
func (h *BookingHandler) Cancel(c echo.Context) error {
	p, err := h.Svc.Cancel(c.Request().Context(), c.Param("seat"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Save handles POST /v1/snapshot/save.
func (h *BookingHandler) Save(c echo.Context) error {
	n, err := h.Svc.Save(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": n, "location": h.Svc.Location()})
}

// Load handles POST /v1/snapshot/load.  A missing snapshot is 404 and
// leaves the bookings untouched.
func (h *BookingHandler) Load(c echo.Context) error {
	res, err := h.Svc.Load(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
