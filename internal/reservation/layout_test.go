package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	_, err := NewLayout(0, 6)
	assert.Error(t, err)
	_, err = NewLayout(5, 0)
	assert.Error(t, err)
	_, err = NewLayout(5, 27)
	assert.Error(t, err)

	l, err := NewLayout(5, 26)
	require.NoError(t, err)
	assert.Equal(t, 130, l.Size())
	assert.Equal(t, "Z", l.Columns()[25])
}

func TestLayout_LabelRoundTrip(t *testing.T) {
	t.Parallel()

	l, err := NewLayout(12, 6)
	require.NoError(t, err)

	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			label := l.Label(Position{Row: r, Col: c})
			pos, ok := l.Parse(label)
			require.True(t, ok, "label %s should parse", label)
			assert.Equal(t, Position{Row: r, Col: c}, pos)
		}
	}
}

func TestLayout_Parse(t *testing.T) {
	t.Parallel()

	l := Layout{Rows: 5, Cols: 6}

	cases := []struct {
		in   string
		want Position
		ok   bool
	}{
		{in: "1A", want: Position{0, 0}, ok: true},
		{in: " 1a ", want: Position{0, 0}, ok: true},
		{in: "5F", want: Position{4, 5}, ok: true},
		{in: "03c", want: Position{2, 2}, ok: true},
		{in: "", ok: false},
		{in: "A", ok: false},
		{in: "1", ok: false},
		{in: "0A", ok: false},
		{in: "6A", ok: false},
		{in: "1G", ok: false},
		{in: "9Z", ok: false},
		{in: "A1", ok: false},
		{in: "1-A", ok: false},
		{in: "-1A", ok: false},
		{in: "1 A", ok: false},
		{in: "99999999999999999999999A", ok: false},
		{in: "1Ä", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			pos, ok := l.Parse(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, pos)
			}
		})
	}
}
