package kafka

import "time"

const (
	EventReservationCreated = "reservation_created"
	EventReservationUpdated = "reservation_updated"
	EventReservationDeleted = "reservation_deleted"
)

// ReservationEvent is the message published for every reservation write.
// The worker consumes these from the notifications topic.
type ReservationEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	FlightID      int64     `json:"flight_id"`
	PassengerID   int64     `json:"passenger_id"`
	Seat          string    `json:"seat"`
	OccurredAt    time.Time `json:"occurred_at"`
}
