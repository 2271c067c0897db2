// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types carried in BookingEvent.Type.
const (
	EventBooked    = "booked"
	EventCancelled = "cancelled"
	EventLoaded    = "loaded"
)

// BookingEvent is published after a seat is booked or cancelled and after
// a snapshot is loaded.  It carries enough for downstream consumers to
// log or notify without reading the seat grid.
type BookingEvent struct {
	Type       string `json:"type"`
	FlightCode string `json:"flight_code"`
	Name       string `json:"name,omitempty"`
	Seat       string `json:"seat,omitempty"`
	Loaded     int    `json:"loaded,omitempty"`
	Skipped    int    `json:"skipped,omitempty"`
	Source     string `json:"source,omitempty"` // snapshot location for loaded events
	OccurredAt string `json:"occurred_at"`      // RFC 3339, UTC
}
