package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/flight-seat-reservation/internal/config"
	"github.com/iliyamo/flight-seat-reservation/internal/database"
	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// Open builds the archive selected by cfg.SnapshotBackend.  The returned
// close function releases the backend's connections and is never nil.
func Open(ctx context.Context, cfg config.Config) (reservation.Archive, func() error, error) {
	noop := func() error { return nil }
	switch cfg.SnapshotBackend {
	case "", config.BackendFile:
		return NewFileArchive(cfg.BookingsPath), noop, nil

	case config.BackendRedis:
		rdb := config.NewRedisClient()
		if rdb == nil {
			return nil, noop, errors.New("redis snapshot backend: server unreachable")
		}
		a, err := NewRedisArchive(rdb, cfg.SnapshotPrefix, cfg.SnapshotName)
		if err != nil {
			_ = rdb.Close()
			return nil, noop, err
		}
		return a, rdb.Close, nil

	case config.BackendMySQL:
		db, err := database.Open(ctx, cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("mysql snapshot backend: %w", err)
		}
		a, err := NewMySQLArchive(db, cfg.SnapshotName)
		if err == nil {
			err = a.EnsureSchema(ctx)
		}
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return a, db.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
}
