package repository

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
)

// maxMySQLPayload is the MEDIUMTEXT limit of booking_snapshots.payload.
const maxMySQLPayload = 1<<24 - 1

// createSnapshotsTable is applied by EnsureSchema.
const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS booking_snapshots (
	name     VARCHAR(64) NOT NULL PRIMARY KEY,
	payload  MEDIUMTEXT  NOT NULL,
	saved_at DATETIME    NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// MySQLArchive keeps each snapshot as one row of booking_snapshots keyed
// by name.
type MySQLArchive struct {
	db   *sql.DB
	name string
}

// NewMySQLArchive constructs a MySQLArchive for the named snapshot.
func NewMySQLArchive(db *sql.DB, name string) (*MySQLArchive, error) {
	if name == "" {
		return nil, ErrNoSnapshotName
	}
	return &MySQLArchive{db: db, name: name}, nil
}

// EnsureSchema creates booking_snapshots if it does not exist.
func (a *MySQLArchive) EnsureSchema(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, createSnapshotsTable)
	return err
}

// Location returns "mysql:booking_snapshots/<name>".
func (a *MySQLArchive) Location() string { return "mysql:booking_snapshots/" + a.name }

// Open reads the payload of the row.  No row is ErrNoSnapshot.
func (a *MySQLArchive) Open(ctx context.Context) (io.ReadCloser, error) {
	const q = `SELECT payload FROM booking_snapshots WHERE name = ?`
	var payload string
	if err := a.db.QueryRowContext(ctx, q, a.name).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w at %s", reservation.ErrNoSnapshot, a.Location())
		}
		return nil, err
	}
	return io.NopCloser(strings.NewReader(payload)), nil
}

// Write upserts the row with what fn produces.
func (a *MySQLArchive) Write(ctx context.Context, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	if buf.Len() > maxMySQLPayload {
		return ErrPayloadTooLarge
	}
	const q = `INSERT INTO booking_snapshots (name, payload, saved_at)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE payload = VALUES(payload), saved_at = VALUES(saved_at)`
	_, err := a.db.ExecContext(ctx, q, a.name, buf.String(), time.Now().UTC())
	return err
}
