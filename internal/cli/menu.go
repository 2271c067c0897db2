// Package cli is the interactive, menu-driven front end of the booking
// service.  It reads one answer per line and prints to a writer, so tests
// drive it with strings.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
	"github.com/iliyamo/flight-seat-reservation/internal/service"
)

const menuText = `
=== Airline Ticket Reservation System ===
1. View Seats
2. Book a Seat
3. Cancel a Booking
4. Search Passenger
5. Save Bookings
6. Load Bookings
0. Exit
`

// ViewBuffer holds the seat view the store draws during an action.  Pass
// it to reservation.WithRenderer; the menu prints it after the action's
// own message.
type ViewBuffer struct {
	bytes.Buffer
}

// Menu runs the prompt loop against one BookingService.
type Menu struct {
	svc     *service.BookingService
	viewBuf *ViewBuffer
	in      *bufio.Scanner
	out     io.Writer
}

// NewMenu reads answers from in and writes prompts and results to out.
// view may be nil when the store has no renderer.
func NewMenu(svc *service.BookingService, view *ViewBuffer, in io.Reader, out io.Writer) *Menu {
	return &Menu{svc: svc, viewBuf: view, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user picks 0, input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	actions := map[string]func(context.Context) bool{
		"1": m.view,
		"2": m.book,
		"3": m.cancel,
		"4": m.search,
		"5": m.save,
		"6": m.load,
	}
	for ctx.Err() == nil {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("Select an option: ")
		if !ok || choice == "0" {
			fmt.Fprintln(m.out, "Goodbye.")
			return m.in.Err()
		}
		action, found := actions[choice]
		if !found {
			fmt.Fprintln(m.out, "Invalid option. Please try again.")
			continue
		}
		fmt.Fprintln(m.out)
		ok = action(ctx)
		m.flushView()
		if !ok {
			fmt.Fprintln(m.out, "Goodbye.")
			return m.in.Err()
		}
	}
	return ctx.Err()
}

// prompt prints label and returns the next trimmed line; ok is false at
// end of input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// Each action returns false when input ran out mid-prompt.

func (m *Menu) view(context.Context) bool {
	if err := m.svc.Render(m.out); err != nil {
		m.report(err, "")
	}
	return true
}

func (m *Menu) book(ctx context.Context) bool {
	name, ok := m.prompt("Name: ")
	if !ok {
		return false
	}
	seat, ok := m.prompt("Seat (e.g., 1A): ")
	if !ok {
		return false
	}
	p, err := m.svc.Book(ctx, name, seat)
	if err != nil {
		m.report(err, seat)
		return true
	}
	fmt.Fprintf(m.out, "Booked: %s -> %s\n", p.Name, p.SeatNumber)
	return true
}

func (m *Menu) cancel(ctx context.Context) bool {
	seat, ok := m.prompt("Seat to cancel (e.g., 1A): ")
	if !ok {
		return false
	}
	p, err := m.svc.Cancel(ctx, seat)
	if err != nil {
		m.report(err, seat)
		return true
	}
	fmt.Fprintf(m.out, "Cancelled: %s @ %s\n", p.Name, p.SeatNumber)
	return true
}

func (m *Menu) search(context.Context) bool {
	query, ok := m.prompt("Search name: ")
	if !ok {
		return false
	}
	matches, err := m.svc.Search(query)
	if err != nil {
		m.report(err, "")
		return true
	}
	if len(matches) == 0 {
		fmt.Fprintf(m.out, "No passengers found matching '%s'.\n", query)
		return true
	}
	fmt.Fprintf(m.out, "Found %d match(es):\n", len(matches))
	for _, p := range matches {
		fmt.Fprintf(m.out, " - %s at %s (%s)\n", p.Name, p.SeatNumber, p.FlightCode)
	}
	return true
}

func (m *Menu) save(ctx context.Context) bool {
	n, err := m.svc.Save(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error saving bookings: %v\n", err)
		return true
	}
	fmt.Fprintf(m.out, "Saved %d booking(s) to '%s'.\n", n, m.svc.Location())
	return true
}

func (m *Menu) load(ctx context.Context) bool {
	res, err := m.svc.Load(ctx)
	switch {
	case errors.Is(err, reservation.ErrNoSnapshot):
		fmt.Fprintf(m.out, "No file found at '%s'.\n", m.svc.Location())
	case err != nil:
		fmt.Fprintf(m.out, "Error loading bookings: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Loaded %d booking(s). Skipped %d line(s).\n", res.Loaded, res.Skipped)
	}
	return true
}

// flushView prints whatever the store drew during the last action.
func (m *Menu) flushView() {
	if m.viewBuf == nil || m.viewBuf.Len() == 0 {
		return
	}
	_, _ = m.viewBuf.WriteTo(m.out)
}

// report turns a store error into the message the user sees.
func (m *Menu) report(err error, seat string) {
	seat = strings.ToUpper(strings.TrimSpace(seat))
	switch {
	case errors.Is(err, reservation.ErrAlreadyBooked):
		fmt.Fprintf(m.out, "Sorry, seat %s is already booked.\n", seat)
	case errors.Is(err, reservation.ErrNotBooked):
		fmt.Fprintf(m.out, "Seat %s is not booked.\n", seat)
	case errors.Is(err, reservation.ErrEmptyName):
		fmt.Fprintln(m.out, "Error: Name cannot be empty.")
	case errors.Is(err, reservation.ErrInvalidSeat):
		fmt.Fprintln(m.out, "Error: Seat label is invalid.")
	case errors.Is(err, reservation.ErrEmptyQuery):
		fmt.Fprintln(m.out, "Error: Search text cannot be empty.")
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}
