package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelagency/internal/apperror"
	"travelagency/internal/domain"
	"travelagency/internal/dto"
	"travelagency/internal/kafka"
	"travelagency/internal/mapper"
	"travelagency/internal/repository"
)

type ReservationUseCase interface {
	GetAll(ctx context.Context) ([]dto.Reservation, error)
	GetByID(ctx context.Context, id int64) (dto.Reservation, error)
	GetByFlightID(ctx context.Context, flightID int64) []dto.Reservation
	GetByPassengerID(ctx context.Context, passengerID int64) []dto.Reservation
	GetByFlightPassengerSeat(ctx context.Context, flightID, passengerID int64, seat string) (dto.Reservation, error)
	Create(ctx context.Context, flightID, passengerID int64, seat string) (dto.Reservation, error)
	Update(ctx context.Context, reservationID, flightID, passengerID int64, seat string) (dto.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Producer publishes reservation events. A nil producer disables
// publication.
type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	flights            repository.FlightRepository
	passengers         repository.PassengerRepository
	mapper             *mapper.ReservationMapper
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	log                *zap.SugaredLogger
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	m *mapper.ReservationMapper,
	producer Producer,
	reservationsTopic string,
	log *zap.SugaredLogger,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:      reservations,
		flights:           flights,
		passengers:        passengers,
		mapper:            m,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		log:               log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) GetAll(ctx context.Context) ([]dto.Reservation, error) {
	reservations, err := s.reservations.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return s.mapper.ToDTOList(reservations), nil
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (dto.Reservation, error) {
	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return dto.Reservation{}, apperror.NewDatabase(err)
	}
	if reservation == nil {
		return dto.Reservation{}, apperror.NewNotFound("reservation", id)
	}
	return s.mapper.ToDTO(*reservation), nil
}

// GetByFlightID returns the reservations referencing the given flight.
// A store failure is reported as an empty list; callers cannot tell it
// apart from no matches.
func (s *ReservationService) GetByFlightID(ctx context.Context, flightID int64) []dto.Reservation {
	return s.filter(ctx, func(r domain.Reservation) bool {
		return r.Flight.ID == flightID
	})
}

// GetByPassengerID returns the reservations referencing the given
// passenger. A store failure is reported as an empty list; callers
// cannot tell it apart from no matches.
func (s *ReservationService) GetByPassengerID(ctx context.Context, passengerID int64) []dto.Reservation {
	return s.filter(ctx, func(r domain.Reservation) bool {
		return r.Passenger.ID == passengerID
	})
}

// filter scans the full reservation set and keeps the matching rows in
// store order. No secondary index exists at this scale.
func (s *ReservationService) filter(ctx context.Context, keep func(domain.Reservation) bool) []dto.Reservation {
	reservations, err := s.reservations.List(ctx)
	if err != nil {
		s.log.Warnw("reservation scan failed, reporting empty result", "error", err)
		return []dto.Reservation{}
	}

	matched := make([]domain.Reservation, 0)
	for _, r := range reservations {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	return s.mapper.ToDTOList(matched)
}

// GetByFlightPassengerSeat finds the reservation for an exact
// flight/passenger/seat triple. Both references must resolve first.
func (s *ReservationService) GetByFlightPassengerSeat(ctx context.Context, flightID, passengerID int64, seat string) (dto.Reservation, error) {
	if _, _, err := s.resolve(ctx, flightID, passengerID); err != nil {
		return dto.Reservation{}, err
	}

	reservations, err := s.reservations.List(ctx)
	if err != nil {
		return dto.Reservation{}, apperror.NewDatabase(err)
	}
	for _, r := range reservations {
		if r.Flight.ID == flightID && r.Passenger.ID == passengerID && r.Seat == seat {
			return s.mapper.ToDTO(r), nil
		}
	}
	return dto.Reservation{}, apperror.NewNotFound("reservation", seat).
		WithDetail("flight_id", flightID).
		WithDetail("passenger_id", passengerID)
}

// Create runs the composition workflow: resolve flight and passenger,
// compose the reservation, persist it. Either lookup missing fails the
// whole call before anything is written. Seat collisions are not
// checked; the same seat may be reserved repeatedly.
func (s *ReservationService) Create(ctx context.Context, flightID, passengerID int64, seat string) (dto.Reservation, error) {
	flight, passenger, err := s.resolve(ctx, flightID, passengerID)
	if err != nil {
		return dto.Reservation{}, err
	}

	reservation := s.mapper.Compose(seat, *flight, *passenger)
	if err := s.reservations.Save(ctx, &reservation); err != nil {
		return dto.Reservation{}, apperror.NewDatabase(err)
	}

	s.publish(ctx, kafka.EventReservationCreated, reservation)
	return s.mapper.ToDTO(reservation), nil
}

// Update repeats resolve+compose for an existing reservation, forcing
// the stored id over whatever the caller composed.
func (s *ReservationService) Update(ctx context.Context, reservationID, flightID, passengerID int64, seat string) (dto.Reservation, error) {
	exists, err := s.reservations.ExistsByID(ctx, reservationID)
	if err != nil {
		return dto.Reservation{}, apperror.NewDatabase(err)
	}
	if !exists {
		return dto.Reservation{}, apperror.NewNotFound("reservation", reservationID)
	}

	flight, passenger, err := s.resolve(ctx, flightID, passengerID)
	if err != nil {
		return dto.Reservation{}, err
	}

	reservation := s.mapper.Compose(seat, *flight, *passenger)
	reservation.ID = reservationID
	if err := s.reservations.Save(ctx, &reservation); err != nil {
		return dto.Reservation{}, apperror.NewDatabase(err)
	}

	s.publish(ctx, kafka.EventReservationUpdated, reservation)
	return s.mapper.ToDTO(reservation), nil
}

// DeleteByID pre-checks existence so a missing row surfaces as NotFound
// instead of a silent no-op from the store.
func (s *ReservationService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.reservations.ExistsByID(ctx, id)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if !exists {
		return apperror.NewNotFound("reservation", id)
	}

	reservation, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if err := s.reservations.DeleteByID(ctx, id); err != nil {
		return apperror.NewDatabase(err)
	}

	if reservation != nil {
		s.publish(ctx, kafka.EventReservationDeleted, *reservation)
	}
	return nil
}

// resolve looks up both referenced entities. Order does not matter; both
// must succeed.
func (s *ReservationService) resolve(ctx context.Context, flightID, passengerID int64) (*domain.Flight, *domain.Passenger, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, nil, apperror.NewDatabase(err)
	}
	if flight == nil {
		return nil, nil, apperror.NewNotFound("flight", flightID)
	}

	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, nil, apperror.NewDatabase(err)
	}
	if passenger == nil {
		return nil, nil, apperror.NewNotFound("passenger", passengerID)
	}
	return flight, passenger, nil
}

// publish is best-effort: a broker failure never fails the request.
func (s *ReservationService) publish(ctx context.Context, eventType string, r domain.Reservation) {
	if s.producer == nil || s.reservationsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: r.ID,
		FlightID:      r.Flight.ID,
		PassengerID:   r.Passenger.ID,
		Seat:          r.Seat,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.reservationsTopic, event.EventID, event); err != nil {
		s.log.Warnw("publish reservation event failed", "type", eventType, "reservation_id", r.ID, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event); err != nil {
			s.log.Warnw("publish notification failed", "type", eventType, "reservation_id", r.ID, "error", err)
		}
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
