package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCols is the widest cabin a Layout accepts: one column per letter A..Z.
const MaxCols = 26

// Position is a zero-based seat coordinate inside a Layout.
type Position struct {
	Row int
	Col int
}

// Layout describes the seat grid dimensions and translates between seat
// labels ("12C") and grid positions.
type Layout struct {
	Rows int
	Cols int
}

// NewLayout validates the grid dimensions.
func NewLayout(rows, cols int) (Layout, error) {
	if rows < 1 {
		return Layout{}, fmt.Errorf("rows must be at least 1, got %d", rows)
	}
	if cols < 1 || cols > MaxCols {
		return Layout{}, fmt.Errorf("cols must be between 1 and %d, got %d", MaxCols, cols)
	}
	return Layout{Rows: rows, Cols: cols}, nil
}

// Size is the number of seats in the grid.
func (l Layout) Size() int { return l.Rows * l.Cols }

// Columns returns the column letters in order, A first.
func (l Layout) Columns() []string {
	out := make([]string, l.Cols)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

// Parse converts a seat label into a position.  The label is trimmed and
// upper-cased first; it is valid when every character but the last is an
// ASCII digit, the last is one of the layout's column letters and the
// row lies in [1, Rows].  ok is false for anything else.
func (l Layout) Parse(label string) (pos Position, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) < 2 {
		return Position{}, false
	}
	digits, letter := s[:len(s)-1], s[len(s)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Position{}, false
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > l.Rows {
		return Position{}, false
	}
	col := int(letter) - 'A'
	if col < 0 || col >= l.Cols {
		return Position{}, false
	}
	return Position{Row: row - 1, Col: col}, true
}

// Label is the inverse of Parse: Position{0, 0} -> "1A".
func (l Layout) Label(pos Position) string {
	return strconv.Itoa(pos.Row+1) + string(rune('A'+pos.Col))
}

// index addresses the flat grid.
func (l Layout) index(pos Position) int { return pos.Row*l.Cols + pos.Col }

// position is the inverse of index.
func (l Layout) position(i int) Position { return Position{Row: i / l.Cols, Col: i % l.Cols} }
