package reservation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iliyamo/flight-seat-reservation/internal/model"
)

// Delimiter separates the fields of a snapshot line.  Names are not
// escaped: a name containing it produces a line Load will skip.
const Delimiter = "|"

// Archive is where a snapshot lives: a file, a Redis key or a MySQL row.
// All implementations hold the same line-oriented text.
type Archive interface {
	// Location describes the archive for messages, e.g. "bookings.txt".
	Location() string
	// Open returns the snapshot text, or ErrNoSnapshot if nothing was saved.
	Open(ctx context.Context) (io.ReadCloser, error)
	// Write replaces the snapshot with whatever fn writes.
	Write(ctx context.Context, fn func(w io.Writer) error) error
}

// LoadResult counts the outcome of Load.  Blank lines are in neither count.
type LoadResult struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

// EncodeLine formats one passenger as a snapshot line without the newline.
func EncodeLine(p model.Passenger) string {
	return strings.Join([]string{p.Name, p.SeatNumber, p.FlightCode}, Delimiter)
}

// Save writes one line per booked seat in scan order and returns how many
// were written.
func (s *Store) Save(ctx context.Context, a Archive) (int, error) {
	count := 0
	err := a.Write(ctx, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		var werr error
		s.each(func(_ Position, p *model.Passenger) {
			if werr != nil {
				return
			}
			if _, werr = bw.WriteString(EncodeLine(*p) + "\n"); werr == nil {
				count++
			}
		})
		if werr != nil {
			return werr
		}
		return bw.Flush()
	})
	if err != nil {
		return 0, fmt.Errorf("%w: save to %s: %v", ErrIO, a.Location(), err)
	}
	return count, nil
}

// Load replaces the grid with the snapshot in a.  When a holds no
// snapshot the grid is left untouched and ErrNoSnapshot is returned.
// Otherwise the grid is cleared before the first line is read, so a read
// error part way leaves the lines read so far.  Lines have no length limit.
//
// Unlike Book, a loaded passenger keeps the flight code from the file.
func (s *Store) Load(ctx context.Context, a Archive) (LoadResult, error) {
	rc, err := a.Open(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return LoadResult{}, err
		}
		return LoadResult{}, fmt.Errorf("%w: open %s: %v", ErrIO, a.Location(), err)
	}
	defer rc.Close()

	s.clear()
	var res LoadResult
	br := bufio.NewReader(rc)
	for {
		raw, err := br.ReadString('\n')
		if line := strings.TrimSpace(raw); line != "" {
			if s.loadLine(line) {
				res.Loaded++
			} else {
				res.Skipped++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("%w: read %s: %v", ErrIO, a.Location(), err)
		}
	}
	s.rendered()
	return res, nil
}

// loadLine applies one non-blank snapshot line and reports whether it
// produced a booking.
func (s *Store) loadLine(line string) bool {
	parts := strings.Split(line, Delimiter)
	if len(parts) != 3 {
		return false
	}
	pos, ok := s.layout.Parse(parts[1])
	if !ok {
		return false
	}
	i := s.layout.index(pos)
	if s.seats[i] != nil {
		return false
	}
	s.seats[i] = &model.Passenger{
		Name:       strings.TrimSpace(parts[0]),
		SeatNumber: s.layout.Label(pos),
		FlightCode: strings.TrimSpace(parts[2]),
	}
	return true
}
