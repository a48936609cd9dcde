package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelagency/internal/apperror"
	"travelagency/internal/domain"
	"travelagency/internal/kafka"
	"travelagency/internal/mapper"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) Save(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, origin, destination string, date *time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, date)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) Save(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPassengerRepository) Save(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var (
	flightDate = time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	birthDate  = time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)

	testFlight    = domain.Flight{ID: 7, Origin: "MAD", Destination: "BCN", Date: flightDate}
	testPassenger = domain.Passenger{ID: 42, FirstName: "Juan", LastName: "Perez", BirthDate: birthDate}
)

type fixture struct {
	reservations *MockReservationRepository
	flights      *MockFlightRepository
	passengers   *MockPassengerRepository
	producer     *MockProducer
	service      *ReservationService
}

func newFixture(opts ...ReservationServiceOption) *fixture {
	f := &fixture{
		reservations: &MockReservationRepository{},
		flights:      &MockFlightRepository{},
		passengers:   &MockPassengerRepository{},
		producer:     &MockProducer{},
	}
	f.service = NewReservationService(
		f.reservations,
		f.flights,
		f.passengers,
		mapper.NewReservationMapper(mapper.NewFlightMapper(), mapper.NewPassengerMapper()),
		f.producer,
		"reservation-events",
		zap.NewNop().Sugar(),
		opts...,
	)
	return f
}

func TestReservationService_Create_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(&testPassenger, nil).Once()
	f.reservations.On("Save", ctx, mock.AnythingOfType("*domain.Reservation")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Reservation)
			assert.Equal(t, "12A", r.Seat)
			assert.Equal(t, testFlight, r.Flight)
			assert.Equal(t, testPassenger, r.Passenger)
			r.ID = 100
		}).
		Return(nil).Once()
	f.producer.On("Publish", ctx, "reservation-events", mock.Anything, mock.Anything).Return(nil).Once()

	created, err := f.service.Create(ctx, 7, 42, "12A")
	require.NoError(t, err)
	assert.Equal(t, "100", created.ID)
	assert.Equal(t, "12A", created.Seat)
	assert.Equal(t, "7", created.Flight.ID)
	assert.Equal(t, "Juan", created.Passenger.FirstName)

	f.flights.AssertExpectations(t)
	f.passengers.AssertExpectations(t)
	f.reservations.AssertExpectations(t)
	f.producer.AssertExpectations(t)
}

func TestReservationService_Create_FlightMissing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(nil, nil).Once()

	_, err := f.service.Create(ctx, 7, 42, "12A")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "flight", appErr.Details["entity"])

	f.reservations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationService_Create_PassengerMissing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(nil, nil).Once()

	_, err := f.service.Create(ctx, 7, 42, "12A")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "passenger", appErr.Details["entity"])

	f.reservations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReservationService_Create_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(&testPassenger, nil).Once()
	f.reservations.On("Save", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
	f.producer.On("Publish", ctx, "reservation-events", mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	_, err := f.service.Create(ctx, 7, 42, "12A")
	assert.NoError(t, err)
}

func TestReservationService_Create_NotificationsTopic(t *testing.T) {
	f := newFixture(WithNotificationsTopic("reservation-notifications"))
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(&testPassenger, nil).Once()
	f.reservations.On("Save", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
	f.producer.On("Publish", ctx, "reservation-events", mock.Anything, mock.Anything).Return(nil).Once()
	f.producer.On("Publish", ctx, "reservation-notifications", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.service.Create(ctx, 7, 42, "12A")
	require.NoError(t, err)
	f.producer.AssertExpectations(t)
}

func TestReservationService_GetByID_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int64(99)).Return(nil, nil).Once()

	_, err := f.service.GetByID(ctx, 99)
	assert.True(t, apperror.IsNotFound(err))
}

func TestReservationService_GetByFlightID_FiltersInStoreOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	otherFlight := domain.Flight{ID: 8, Origin: "BCN", Destination: "SVQ", Date: flightDate}
	f.reservations.On("List", ctx).Return([]domain.Reservation{
		{ID: 1, Seat: "1A", Flight: testFlight, Passenger: testPassenger},
		{ID: 2, Seat: "2B", Flight: otherFlight, Passenger: testPassenger},
		{ID: 3, Seat: "3C", Flight: testFlight, Passenger: testPassenger},
	}, nil).Once()

	matched := f.service.GetByFlightID(ctx, 7)
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "3", matched[1].ID)
}

func TestReservationService_GetByFlightID_StoreErrorYieldsEmptyList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.reservations.On("List", ctx).
		Return([]domain.Reservation(nil), errors.New("connection refused")).Once()

	matched := f.service.GetByFlightID(ctx, 7)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestReservationService_GetByPassengerID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	otherPassenger := domain.Passenger{ID: 43, FirstName: "Ana", LastName: "Lopez", BirthDate: birthDate}
	f.reservations.On("List", ctx).Return([]domain.Reservation{
		{ID: 1, Seat: "1A", Flight: testFlight, Passenger: otherPassenger},
		{ID: 2, Seat: "2B", Flight: testFlight, Passenger: testPassenger},
	}, nil).Once()

	matched := f.service.GetByPassengerID(ctx, 42)
	require.Len(t, matched, 1)
	assert.Equal(t, "2", matched[0].ID)
}

func TestReservationService_GetByFlightPassengerSeat_Found(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(&testPassenger, nil).Once()
	f.reservations.On("List", ctx).Return([]domain.Reservation{
		{ID: 1, Seat: "1A", Flight: testFlight, Passenger: testPassenger},
		{ID: 2, Seat: "12A", Flight: testFlight, Passenger: testPassenger},
	}, nil).Once()

	found, err := f.service.GetByFlightPassengerSeat(ctx, 7, 42, "12A")
	require.NoError(t, err)
	assert.Equal(t, "2", found.ID)
}

func TestReservationService_GetByFlightPassengerSeat_NoMatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(&testPassenger, nil).Once()
	f.reservations.On("List", ctx).Return([]domain.Reservation{}, nil).Once()

	_, err := f.service.GetByFlightPassengerSeat(ctx, 7, 42, "12A")
	assert.True(t, apperror.IsNotFound(err))
}

func TestReservationService_Update_ForcesStoredID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.reservations.On("ExistsByID", ctx, int64(100)).Return(true, nil).Once()
	f.flights.On("GetByID", ctx, int64(7)).Return(&testFlight, nil).Once()
	f.passengers.On("GetByID", ctx, int64(42)).Return(&testPassenger, nil).Once()
	f.reservations.On("Save", ctx, mock.AnythingOfType("*domain.Reservation")).
		Run(func(args mock.Arguments) {
			assert.Equal(t, int64(100), args.Get(1).(*domain.Reservation).ID)
		}).
		Return(nil).Once()
	f.producer.On("Publish", ctx, "reservation-events", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := f.service.Update(ctx, 100, 7, 42, "14C")
	require.NoError(t, err)
	assert.Equal(t, "100", updated.ID)
	assert.Equal(t, "14C", updated.Seat)
	f.reservations.AssertExpectations(t)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.reservations.On("ExistsByID", ctx, int64(100)).Return(false, nil).Once()

	_, err := f.service.Update(ctx, 100, 7, 42, "14C")
	assert.True(t, apperror.IsNotFound(err))
	f.flights.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReservationService_DeleteByID_PublishesDeletedEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	stored := domain.Reservation{ID: 100, Seat: "12A", Flight: testFlight, Passenger: testPassenger}
	f.reservations.On("ExistsByID", ctx, int64(100)).Return(true, nil).Once()
	f.reservations.On("GetByID", ctx, int64(100)).Return(&stored, nil).Once()
	f.reservations.On("DeleteByID", ctx, int64(100)).Return(nil).Once()
	f.producer.On("Publish", ctx, "reservation-events", mock.Anything, mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(kafka.ReservationEvent)
		return ok && event.Type == kafka.EventReservationDeleted && event.ReservationID == 100
	})).Return(nil).Once()

	require.NoError(t, f.service.DeleteByID(ctx, 100))
	f.reservations.AssertExpectations(t)
	f.producer.AssertExpectations(t)
}

func TestReservationService_DeleteByID_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.reservations.On("ExistsByID", ctx, int64(100)).Return(false, nil).Once()

	err := f.service.DeleteByID(ctx, 100)
	assert.True(t, apperror.IsNotFound(err))
	f.reservations.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
