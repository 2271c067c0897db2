package model

// SeatMap is the read model of the whole cabin returned by the API.
// Cells is indexed [row][col] with zero-based positions; a true cell is
// booked.  Columns holds the column letters in order (A, B, ...).
//
// Fields:
//  FlightCode – flight the map belongs to.
//  Rows       – number of seat rows.
//  Cols       – number of seats per row.
//  Columns    – column letters, len(Columns) == Cols.
//  Cells      – occupancy grid.
//  Booked     – number of occupied seats.
type SeatMap struct {
	FlightCode string   `json:"flight_code"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Columns    []string `json:"columns"`
	Cells      [][]bool `json:"cells"`
	Booked     int      `json:"booked"`
}
