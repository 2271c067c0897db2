package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-seat-reservation/internal/repository"
	"github.com/iliyamo/flight-seat-reservation/internal/reservation"
	"github.com/iliyamo/flight-seat-reservation/internal/service"
)

// runMenu feeds the answers to a fresh menu and returns everything it
// printed together with the snapshot path it used.
func runMenu(t *testing.T, path string, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	view := &ViewBuffer{}
	store, err := reservation.New(reservation.Config{Rows: 5, Cols: 6, FlightCode: "AK123"}, reservation.WithRenderer(view))
	require.NoError(t, err)
	svc := service.NewBookingService(store, repository.NewFileArchive(path), nil)

	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	require.NoError(t, NewMenu(svc, view, in, &out).Run(context.Background()))
	return out.String()
}

func TestMenu_BookSearchCancel(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bookings.txt")

	out := runMenu(t, path,
		"2", "Alice", "1a",
		"2", "Bob", "1A",
		"2", "Alina", "2B",
		"4", "ali",
		"4", "zed",
		"4", "",
		"3", "1A",
		"3", "1A",
		"2", "", "1C",
		"2", "Carl", "9Z",
		"0",
	)

	assert.Contains(t, out, "=== Airline Ticket Reservation System ===")
	assert.Contains(t, out, "Booked: Alice -> 1A")
	assert.Contains(t, out, " 1 | 1  0  0  0  0  0")
	assert.Contains(t, out, "Sorry, seat 1A is already booked.")
	assert.Contains(t, out, "Found 2 match(es):\n - Alice at 1A (AK123)\n - Alina at 2B (AK123)\n")
	assert.Contains(t, out, "No passengers found matching 'zed'.")
	assert.Contains(t, out, "Error: Search text cannot be empty.")
	assert.Contains(t, out, "Cancelled: Alice @ 1A")
	assert.Contains(t, out, "Seat 1A is not booked.")
	assert.Contains(t, out, "Error: Name cannot be empty.")
	assert.Contains(t, out, "Error: Seat label is invalid.")
	assert.NotContains(t, out, "invalid input")
	assert.True(t, strings.HasSuffix(out, "Goodbye.\n"))
}

// assertBefore checks that first is printed and second follows it.
func assertBefore(t *testing.T, out, first, second string) {
	t.Helper()
	i := strings.Index(out, first)
	require.GreaterOrEqual(t, i, 0, "missing %q", first)
	j := strings.Index(out[i:], second)
	require.GreaterOrEqual(t, j, 0, "%q not printed after %q", second, first)
}

func TestMenu_MessageBeforeSeatView(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bookings.txt")
	require.NoError(t, os.WriteFile(path, []byte("Carl|4D|AK123\n"), 0o644))

	out := runMenu(t, path, "2", "Alice", "1A", "0")
	assertBefore(t, out, "Booked: Alice -> 1A", " 1 | 1  0  0  0  0  0")
	assert.NotContains(t, out[:strings.Index(out, "Booked:")], "Legend:")

	out = runMenu(t, path, "2", "Alice", "1A", "3", "1A", "0")
	assertBefore(t, out, "Cancelled: Alice @ 1A", " 1 | 0  0  0  0  0  0")

	out = runMenu(t, path, "6", "0")
	assertBefore(t, out, "Loaded 1 booking(s). Skipped 0 line(s).", " 4 | 0  0  0  1  0  0")
	assert.NotContains(t, out[:strings.Index(out, "Loaded 1")], "Legend:")

	// a rejected booking draws nothing
	out = runMenu(t, path, "2", "Bob", "9Z", "0")
	assert.NotContains(t, out, "Legend:")
}

func TestMenu_SaveLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bookings.txt")

	out := runMenu(t, path, "6", "2", "Alice", "3C", "5", "0")
	assert.Contains(t, out, "No file found at '"+path+"'.")
	assert.Contains(t, out, "Saved 1 booking(s) to '"+path+"'.")

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alice|3C|AK123\n", string(bs))

	require.NoError(t, os.WriteFile(path, []byte("Alice|3C|AK123\nZoe|9Z|AK123\n\nBob|3c|AK123\n"), 0o644))
	out = runMenu(t, path, "6", "1", "0")
	assert.Contains(t, out, "Loaded 1 booking(s). Skipped 2 line(s).")
	assert.Contains(t, out, " 3 | 0  0  1  0  0  0")
}

func TestMenu_InvalidOptionAndEOF(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bookings.txt")

	out := runMenu(t, path, "7", "banana")
	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please try again."))
	assert.Equal(t, 3, strings.Count(out, "=== Airline Ticket Reservation System ==="))
	assert.True(t, strings.HasSuffix(out, "Goodbye.\n"))

	// input ends in the middle of a booking
	out = runMenu(t, path, "2", "Alice")
	assert.NotContains(t, out, "Booked:")
	assert.True(t, strings.HasSuffix(out, "Goodbye.\n"))
}
