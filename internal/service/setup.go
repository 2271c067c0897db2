package service

import (
	"context"

	"github.com/iliyamo/flight-seat-reservation/internal/config"
	"github.com/iliyamo/flight-seat-reservation/internal/repository"
	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// Setup builds the store, the configured snapshot archive and the event
// publisher.  The returned close function releases the archive backend.
func Setup(ctx context.Context, cfg config.Config, opts ...reservation.Option) (*BookingService, func() error, error) {
	store, err := reservation.New(reservation.Config{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		FlightCode: cfg.FlightCode,
	}, opts...)
	if err != nil {
		return nil, nil, err
	}
	archive, closeArchive, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	var events EventPublisher = NopPublisher{}
	if cfg.EventsEnabled {
		events = NewAMQPPublisher(cfg.AMQPURL, cfg.EventsQueue)
	}
	return NewBookingService(store, archive, events), closeArchive, nil
}
