// Package reservation holds the seat grid of a single flight and the
// operations on it: booking, cancelling, searching passengers and moving
// the booking set to and from a flat text snapshot.
//
// A Store is not safe for concurrent use.  Callers that share one across
// goroutines (the HTTP server does) serialise access themselves.
package reservation

import (
	"fmt"
	"io"
	"strings"

	"github.com/iliyamo/flight-seat-reservation/internal/model"
)

// Config fixes the shape and identity of the flight.  It never changes
// after New.
type Config struct {
	Rows       int
	Cols       int
	FlightCode string
}

// Option customises a Store.
type Option func(*Store)

// WithRenderer makes the Store print the seat view to w after every
// successful Book, Cancel and Load.
func WithRenderer(w io.Writer) Option {
	return func(s *Store) { s.render = w }
}

// Store is the seat grid.  Seats are kept in a flat slice addressed by
// row*cols+col; a nil entry is a free seat.
type Store struct {
	layout     Layout
	flightCode string
	seats      []*model.Passenger
	render     io.Writer
}

// New builds an all-free grid.
func New(cfg Config, opts ...Option) (*Store, error) {
	layout, err := NewLayout(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	s := &Store{
		layout:     layout,
		flightCode: cfg.FlightCode,
		seats:      make([]*model.Passenger, layout.Size()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Layout returns the grid dimensions.
func (s *Store) Layout() Layout { return s.layout }

// FlightCode returns the configured flight code.
func (s *Store) FlightCode() string { return s.flightCode }

// Book places name on the seat identified by label.  The new passenger
// carries the store's flight code.
func (s *Store) Book(name, label string) (model.Passenger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Passenger{}, ErrEmptyName
	}
	pos, ok := s.layout.Parse(label)
	if !ok {
		return model.Passenger{}, fmt.Errorf("%w: %q", ErrInvalidSeat, label)
	}
	seat := s.layout.Label(pos)
	i := s.layout.index(pos)
	if s.seats[i] != nil {
		return model.Passenger{}, fmt.Errorf("%w: %s", ErrAlreadyBooked, seat)
	}
	p := &model.Passenger{Name: name, SeatNumber: seat, FlightCode: s.flightCode}
	s.seats[i] = p
	s.rendered()
	return *p, nil
}

// Cancel frees the seat identified by label and returns the passenger
// that held it.
func (s *Store) Cancel(label string) (model.Passenger, error) {
	pos, ok := s.layout.Parse(label)
	if !ok {
		return model.Passenger{}, fmt.Errorf("%w: %q", ErrInvalidSeat, label)
	}
	i := s.layout.index(pos)
	p := s.seats[i]
	if p == nil {
		return model.Passenger{}, fmt.Errorf("%w: %s", ErrNotBooked, s.layout.Label(pos))
	}
	s.seats[i] = nil
	s.rendered()
	return *p, nil
}

// Search returns every passenger whose name contains query, ignoring
// case, in scan order.  No match is an empty slice and a nil error.
func (s *Store) Search(query string) ([]model.Passenger, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}
	matches := []model.Passenger{}
	s.each(func(_ Position, p *model.Passenger) {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matches = append(matches, *p)
		}
	})
	return matches, nil
}

// Passenger returns the booking on the seat, if any.
func (s *Store) Passenger(label string) (model.Passenger, bool) {
	pos, ok := s.layout.Parse(label)
	if !ok {
		return model.Passenger{}, false
	}
	p := s.seats[s.layout.index(pos)]
	if p == nil {
		return model.Passenger{}, false
	}
	return *p, true
}

// Passengers lists all bookings in scan order.
func (s *Store) Passengers() []model.Passenger {
	out := []model.Passenger{}
	s.each(func(_ Position, p *model.Passenger) { out = append(out, *p) })
	return out
}

// Booked is the number of occupied seats.
func (s *Store) Booked() int {
	n := 0
	s.each(func(Position, *model.Passenger) { n++ })
	return n
}

// Grid reports occupancy as [row][col].
func (s *Store) Grid() [][]bool {
	grid := make([][]bool, s.layout.Rows)
	for r := range grid {
		grid[r] = make([]bool, s.layout.Cols)
	}
	s.each(func(pos Position, _ *model.Passenger) { grid[pos.Row][pos.Col] = true })
	return grid
}

// SeatMap is Grid plus the metadata the API returns with it.
func (s *Store) SeatMap() model.SeatMap {
	return model.SeatMap{
		FlightCode: s.flightCode,
		Rows:       s.layout.Rows,
		Cols:       s.layout.Cols,
		Columns:    s.layout.Columns(),
		Cells:      s.Grid(),
		Booked:     s.Booked(),
	}
}

// Render writes the seat view: a header of column letters, one line per
// row with the 2-wide row number, 1 for booked and 0 for free, then a
// legend.
func (s *Store) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("    " + strings.Join(s.layout.Columns(), "  ") + "\n")
	b.WriteString("    " + strings.TrimSpace(strings.Repeat("-  ", s.layout.Cols)) + "\n")
	bits := make([]string, s.layout.Cols)
	for r := 0; r < s.layout.Rows; r++ {
		for c := range bits {
			bits[c] = "0"
			if s.seats[s.layout.index(Position{Row: r, Col: c})] != nil {
				bits[c] = "1"
			}
		}
		fmt.Fprintf(&b, "%2d | %s\n", r+1, strings.Join(bits, "  "))
	}
	b.WriteString("\nLegend: 0 = available, 1 = booked\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// clear frees every seat.
func (s *Store) clear() {
	for i := range s.seats {
		s.seats[i] = nil
	}
}

// each visits occupied seats in scan order (row-major).
func (s *Store) each(fn func(Position, *model.Passenger)) {
	for i, p := range s.seats {
		if p != nil {
			fn(s.layout.position(i), p)
		}
	}
}

func (s *Store) rendered() {
	if s.render != nil {
		_ = s.Render(s.render)
	}
}
