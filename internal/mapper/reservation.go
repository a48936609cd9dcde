package mapper

import (
	"travelagency/internal/domain"
	"travelagency/internal/dto"
)

// ReservationMapper converts reservations, delegating the nested flight
// and passenger to their own mappers. Both are required constructor
// dependencies; there is no package-level fallback.
type ReservationMapper struct {
	flights    *FlightMapper
	passengers *PassengerMapper
}

func NewReservationMapper(flights *FlightMapper, passengers *PassengerMapper) *ReservationMapper {
	return &ReservationMapper{flights: flights, passengers: passengers}
}

func (m *ReservationMapper) ToDTO(r domain.Reservation) dto.Reservation {
	return dto.Reservation{
		ID:        formatID(r.ID),
		Seat:      r.Seat,
		Flight:    m.flights.ToDTO(r.Flight),
		Passenger: m.passengers.ToDTO(r.Passenger),
	}
}

func (m *ReservationMapper) ToEntity(d dto.Reservation) (domain.Reservation, error) {
	id, err := parseID("reservation", d.ID)
	if err != nil {
		return domain.Reservation{}, err
	}
	flight, err := m.flights.ToEntity(d.Flight)
	if err != nil {
		return domain.Reservation{}, err
	}
	passenger, err := m.passengers.ToEntity(d.Passenger)
	if err != nil {
		return domain.Reservation{}, err
	}
	return domain.Reservation{
		ID:        id,
		Seat:      d.Seat,
		Flight:    flight,
		Passenger: passenger,
	}, nil
}

// Compose builds an unsaved reservation from already-resolved references
// and the caller-supplied seat designator.
func (m *ReservationMapper) Compose(seat string, flight domain.Flight, passenger domain.Passenger) domain.Reservation {
	return domain.Reservation{
		Seat:      seat,
		Flight:    flight,
		Passenger: passenger,
	}
}

func (m *ReservationMapper) ToDTOList(reservations []domain.Reservation) []dto.Reservation {
	out := make([]dto.Reservation, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, m.ToDTO(r))
	}
	return out
}

func (m *ReservationMapper) ToEntityList(dtos []dto.Reservation) ([]domain.Reservation, error) {
	out := make([]domain.Reservation, 0, len(dtos))
	for _, d := range dtos {
		r, err := m.ToEntity(d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
