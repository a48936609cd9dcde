// Package email turns reservation events into customer notifications.
// The sender only logs for now; a real mail backend slots in behind it.
package email

import (
	"context"

	"go.uber.org/zap"

	"travelagency/internal/kafka"
)

type Sender struct {
	log *zap.SugaredLogger
}

func NewSender(log *zap.SugaredLogger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	s.log.Infow("send reservation notification",
		"type", event.Type,
		"reservation_id", event.ReservationID,
		"flight_id", event.FlightID,
		"passenger_id", event.PassengerID,
		"seat", event.Seat,
	)
	return nil
}
