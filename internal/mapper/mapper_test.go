package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelagency/internal/apperror"
	"travelagency/internal/domain"
	"travelagency/internal/dto"
)

var (
	flightDate = time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	birthDate  = time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
)

func TestFlightMapper_RoundTrip(t *testing.T) {
	m := NewFlightMapper()
	flight := domain.Flight{ID: 7, Origin: "MAD", Destination: "BCN", Date: flightDate}

	d := m.ToDTO(flight)
	assert.Equal(t, "7", d.ID)
	assert.Equal(t, "MAD", d.Origin)
	assert.Equal(t, "BCN", d.Destination)
	assert.Equal(t, flightDate, d.Date)

	back, err := m.ToEntity(d)
	require.NoError(t, err)
	assert.Equal(t, flight, back)
}

func TestFlightMapper_ToEntity_InvalidID(t *testing.T) {
	m := NewFlightMapper()

	_, err := m.ToEntity(dto.Flight{ID: "abc", Origin: "MAD", Destination: "BCN", Date: flightDate})
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidID(err))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "flight", appErr.Details["entity"])
	assert.Equal(t, "abc", appErr.Details["id"])
}

func TestFlightMapper_FromInput_ZeroID(t *testing.T) {
	m := NewFlightMapper()

	flight := m.FromInput(dto.FlightInput{Origin: "MAD", Destination: "BCN", Date: flightDate})
	assert.Zero(t, flight.ID)
	assert.Equal(t, "MAD", flight.Origin)
	assert.Equal(t, "BCN", flight.Destination)
}

func TestFlightMapper_ToDTOList_PreservesOrder(t *testing.T) {
	m := NewFlightMapper()
	flights := []domain.Flight{
		{ID: 3, Origin: "MAD", Destination: "BCN", Date: flightDate},
		{ID: 1, Origin: "BCN", Destination: "SVQ", Date: flightDate},
		{ID: 2, Origin: "SVQ", Destination: "MAD", Date: flightDate},
	}

	dtos := m.ToDTOList(flights)
	require.Len(t, dtos, 3)
	assert.Equal(t, "3", dtos[0].ID)
	assert.Equal(t, "1", dtos[1].ID)
	assert.Equal(t, "2", dtos[2].ID)
}

func TestFlightMapper_ToEntityList_FailsOnFirstBadID(t *testing.T) {
	m := NewFlightMapper()
	dtos := []dto.Flight{
		{ID: "1", Origin: "MAD", Destination: "BCN", Date: flightDate},
		{ID: "oops", Origin: "BCN", Destination: "SVQ", Date: flightDate},
	}

	out, err := m.ToEntityList(dtos)
	assert.Nil(t, out)
	assert.True(t, apperror.IsInvalidID(err))
}

func TestPassengerMapper_RoundTrip(t *testing.T) {
	m := NewPassengerMapper()
	passenger := domain.Passenger{ID: 42, FirstName: "Juan", LastName: "Perez", BirthDate: birthDate}

	d := m.ToDTO(passenger)
	assert.Equal(t, "42", d.ID)
	assert.Equal(t, "Juan", d.FirstName)
	assert.Equal(t, "Perez", d.LastName)

	back, err := m.ToEntity(d)
	require.NoError(t, err)
	assert.Equal(t, passenger, back)
}

func TestPassengerMapper_ToEntity_InvalidID(t *testing.T) {
	m := NewPassengerMapper()

	_, err := m.ToEntity(dto.Passenger{ID: "", FirstName: "Juan", LastName: "Perez", BirthDate: birthDate})
	assert.True(t, apperror.IsInvalidID(err))
}

func TestReservationMapper_RoundTrip(t *testing.T) {
	m := NewReservationMapper(NewFlightMapper(), NewPassengerMapper())
	reservation := domain.Reservation{
		ID:        5,
		Seat:      "12A",
		Flight:    domain.Flight{ID: 7, Origin: "MAD", Destination: "BCN", Date: flightDate},
		Passenger: domain.Passenger{ID: 42, FirstName: "Juan", LastName: "Perez", BirthDate: birthDate},
	}

	d := m.ToDTO(reservation)
	assert.Equal(t, "5", d.ID)
	assert.Equal(t, "12A", d.Seat)
	assert.Equal(t, "7", d.Flight.ID)
	assert.Equal(t, "42", d.Passenger.ID)

	back, err := m.ToEntity(d)
	require.NoError(t, err)
	assert.Equal(t, reservation, back)
}

func TestReservationMapper_ToEntity_NestedInvalidID(t *testing.T) {
	m := NewReservationMapper(NewFlightMapper(), NewPassengerMapper())
	d := dto.Reservation{
		ID:        "5",
		Seat:      "12A",
		Flight:    dto.Flight{ID: "bad", Origin: "MAD", Destination: "BCN", Date: flightDate},
		Passenger: dto.Passenger{ID: "42", FirstName: "Juan", LastName: "Perez", BirthDate: birthDate},
	}

	_, err := m.ToEntity(d)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidID(err))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "flight", appErr.Details["entity"])
}

func TestReservationMapper_Compose(t *testing.T) {
	m := NewReservationMapper(NewFlightMapper(), NewPassengerMapper())
	flight := domain.Flight{ID: 7, Origin: "MAD", Destination: "BCN", Date: flightDate}
	passenger := domain.Passenger{ID: 42, FirstName: "Juan", LastName: "Perez", BirthDate: birthDate}

	reservation := m.Compose("12A", flight, passenger)
	assert.Zero(t, reservation.ID)
	assert.Equal(t, "12A", reservation.Seat)
	assert.Equal(t, flight, reservation.Flight)
	assert.Equal(t, passenger, reservation.Passenger)
}
