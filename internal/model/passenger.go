package model

// Passenger is the booking held by one seat of the flight.  A passenger
// is never edited in place: booking creates it, cancelling or loading a
// new snapshot discards it.
//
// Fields:
//  Name       – passenger name as entered (trimmed).
//  SeatNumber – canonical seat label, e.g. "12C".
//  FlightCode – flight the booking belongs to.
type Passenger struct {
	Name       string `json:"name"`        // free text, must not be blank
	SeatNumber string `json:"seat_number"` // always matches the grid position
	FlightCode string `json:"flight_code"` // store flight code, or the file's on load
}
