// Package service wires the seat store to its snapshot archive and the
// booking event stream.  Both the interactive menu and the HTTP handlers
// go through BookingService.
package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/flight-seat-reservation/internal/model"
	q "github.com/iliyamo/flight-seat-reservation/internal/queue"
	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// publishTimeout bounds how long a booking waits on the broker.
const publishTimeout = 3 * time.Second

// BookingService serialises access to one reservation.Store.  The store
// itself is single-threaded; the mutex lets the HTTP server share it.
type BookingService struct {
	mu      sync.Mutex
	store   *reservation.Store
	archive reservation.Archive
	events  EventPublisher
	log     *logrus.Entry
	now     func() time.Time
}

// NewBookingService panics on a nil store or archive.  A nil publisher
// disables events.
func NewBookingService(store *reservation.Store, archive reservation.Archive, events EventPublisher) *BookingService {
	if store == nil || archive == nil {
		panic("nil store or archive passed to NewBookingService")
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &BookingService{
		store:   store,
		archive: archive,
		events:  events,
		log:     logrus.WithField("component", "booking").WithField("flight", store.FlightCode()),
		now:     time.Now,
	}
}

// FlightCode returns the configured flight.
func (s *BookingService) FlightCode() string { return s.store.FlightCode() }

// Location describes where Save and Load go.
func (s *BookingService) Location() string { return s.archive.Location() }

// Book reserves seat for name.
func (s *BookingService) Book(ctx context.Context, name, seat string) (model.Passenger, error) {
	s.mu.Lock()
	p, err := s.store.Book(name, seat)
	s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).WithField("seat", seat).Info("book rejected")
		return p, err
	}
	s.log.WithFields(logrus.Fields{"seat": p.SeatNumber, "name": p.Name}).Info("seat booked")
	s.publish(ctx, q.BookingEvent{Type: q.EventBooked, Name: p.Name, Seat: p.SeatNumber})
	return p, nil
}

// Cancel frees seat and returns who held it.
func (s *BookingService) Cancel(ctx context.Context, seat string) (model.Passenger, error) {
	s.mu.Lock()
	p, err := s.store.Cancel(seat)
	s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).WithField("seat", seat).Info("cancel rejected")
		return p, err
	}
	s.log.WithFields(logrus.Fields{"seat": p.SeatNumber, "name": p.Name}).Info("booking cancelled")
	s.publish(ctx, q.BookingEvent{Type: q.EventCancelled, Name: p.Name, Seat: p.SeatNumber})
	return p, nil
}

// Search finds passengers by case-insensitive name substring.
func (s *BookingService) Search(query string) ([]model.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Search(query)
}

// SeatMap returns the occupancy grid.
func (s *BookingService) SeatMap() model.SeatMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SeatMap()
}

// Render writes the text seat view to w.
func (s *BookingService) Render(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Render(w)
}

// Save writes the snapshot and returns how many bookings it holds.
func (s *BookingService) Save(ctx context.Context) (int, error) {
	s.mu.Lock()
	n, err := s.store.Save(ctx, s.archive)
	s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("save failed")
		return 0, err
	}
	s.log.WithFields(logrus.Fields{"saved": n, "location": s.archive.Location()}).Info("bookings saved")
	return n, nil
}

// Load replaces the bookings with the snapshot.
func (s *BookingService) Load(ctx context.Context) (reservation.LoadResult, error) {
	s.mu.Lock()
	res, err := s.store.Load(ctx, s.archive)
	s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Warn("load failed")
		return res, err
	}
	s.log.WithFields(logrus.Fields{"loaded": res.Loaded, "skipped": res.Skipped}).Info("bookings loaded")
	s.publish(ctx, q.BookingEvent{Type: q.EventLoaded, Loaded: res.Loaded, Skipped: res.Skipped, Source: s.archive.Location()})
	return res, nil
}

// publish stamps and sends ev; failures are logged only.
func (s *BookingService) publish(ctx context.Context, ev q.BookingEvent) {
	ev.FlightCode = s.store.FlightCode()
	ev.OccurredAt = s.now().UTC().Format(time.RFC3339)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WithError(err).WithField("event", ev.Type).Warn("event not published")
	}
}
