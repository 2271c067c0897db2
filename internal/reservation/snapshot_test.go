package reservation

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memArchive keeps the snapshot in memory.  A nil data slice means
// nothing was saved yet.
type memArchive struct {
	data     []byte
	writeErr error
	openErr  error
}

func (m *memArchive) Location() string { return "memory" }

func (m *memArchive) Open(context.Context) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	if m.data == nil {
		return nil, ErrNoSnapshot
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *memArchive) Write(_ context.Context, fn func(io.Writer) error) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	m.data = append([]byte{}, buf.Bytes()...)
	return nil
}

func TestStore_Save(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	_, err := s.Book("Bob", "2A")
	require.NoError(t, err)
	_, err = s.Book("Alice", "1C")
	require.NoError(t, err)

	a := &memArchive{}
	n, err := s.Save(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Alice|1C|AK123\nBob|2A|AK123\n", string(a.data))

	t.Run("empty grid writes empty snapshot", func(t *testing.T) {
		empty := newTestStore(t)
		a := &memArchive{}
		n, err := empty.Save(ctx, a)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NotNil(t, a.data)
		assert.Empty(t, a.data)
	})

	t.Run("write failure wraps ErrIO", func(t *testing.T) {
		a := &memArchive{writeErr: errors.New("disk full")}
		n, err := s.Save(ctx, a)
		require.ErrorIs(t, err, ErrIO)
		assert.Zero(t, n)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing snapshot leaves grid untouched", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.Book("Alice", "1A")
		require.NoError(t, err)

		_, err = s.Load(ctx, &memArchive{})
		require.ErrorIs(t, err, ErrNoSnapshot)
		assert.Equal(t, 1, s.Booked())
	})

	t.Run("open failure wraps ErrIO", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.Load(ctx, &memArchive{openErr: errors.New("permission denied")})
		require.ErrorIs(t, err, ErrIO)
	})

	t.Run("out of bounds seat is skipped", func(t *testing.T) {
		s := newTestStore(t)
		res, err := s.Load(ctx, &memArchive{data: []byte("Zoe|9Z|AK123\n")})
		require.NoError(t, err)
		assert.Equal(t, LoadResult{Loaded: 0, Skipped: 1}, res)
		assert.Zero(t, s.Booked())
	})

	t.Run("duplicate seat keeps the first line", func(t *testing.T) {
		s := newTestStore(t)
		data := "Alice|1A|AK123\nBob|1a|AK123\n"
		res, err := s.Load(ctx, &memArchive{data: []byte(data)})
		require.NoError(t, err)
		assert.Equal(t, LoadResult{Loaded: 1, Skipped: 1}, res)
		p, ok := s.Passenger("1A")
		require.True(t, ok)
		assert.Equal(t, "Alice", p.Name)
	})

	t.Run("clears grid and counts malformed lines", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.Book("Old", "5F")
		require.NoError(t, err)

		data := "\n" +
			"Alice | 1a | XY999 \n" +
			"   \n" +
			"too|few\n" +
			"too|many|fields|here\n" +
			"Carl|1G|AK123\n" +
			"Dora|2B|AK123"
		res, err := s.Load(ctx, &memArchive{data: []byte(data)})
		require.NoError(t, err)
		assert.Equal(t, LoadResult{Loaded: 2, Skipped: 3}, res)

		_, ok := s.Passenger("5F")
		assert.False(t, ok)

		alice, ok := s.Passenger("1A")
		require.True(t, ok)
		assert.Equal(t, "Alice", alice.Name)
		assert.Equal(t, "1A", alice.SeatNumber)
		// the file's flight code wins over the store's
		assert.Equal(t, "XY999", alice.FlightCode)

		dora, ok := s.Passenger("2B")
		require.True(t, ok)
		assert.Equal(t, "AK123", dora.FlightCode)
	})

	t.Run("very long line does not stop the load", func(t *testing.T) {
		s := newTestStore(t)
		long := strings.Repeat("x", 2<<20)
		data := "Alice|1A|AK123\n" + long + "|2A|AK123\nBob|3A|AK123\n"
		res, err := s.Load(ctx, &memArchive{data: []byte(data)})
		require.NoError(t, err)
		assert.Equal(t, LoadResult{Loaded: 3}, res)

		p, ok := s.Passenger("2A")
		require.True(t, ok)
		assert.Len(t, p.Name, 2<<20)
		_, ok = s.Passenger("3A")
		assert.True(t, ok)
	})

	t.Run("renders after load", func(t *testing.T) {
		var buf bytes.Buffer
		s := newTestStore(t, WithRenderer(&buf))
		_, err := s.Load(ctx, &memArchive{data: []byte("Alice|1B|AK123\n")})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), " 1 | 0  1  0  0  0  0")
	})
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src := newTestStore(t)
	for seat, name := range map[string]string{"1A": "Alice", "3D": "Bob", "5F": "Carol"} {
		_, err := src.Book(name, seat)
		require.NoError(t, err)
	}
	a := &memArchive{}
	_, err := src.Save(ctx, a)
	require.NoError(t, err)

	dst, err := New(Config{Rows: 5, Cols: 6, FlightCode: "ZZ000"})
	require.NoError(t, err)
	res, err := dst.Load(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Loaded: 3}, res)

	// flight codes come from the file, not from dst's config
	assert.Equal(t, src.Passengers(), dst.Passengers())
}
