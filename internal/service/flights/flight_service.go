package flights

import (
	"context"
	"strconv"
	"time"

	"travelagency/internal/apperror"
	"travelagency/internal/domain"
	"travelagency/internal/dto"
	"travelagency/internal/mapper"
	"travelagency/internal/repository"
)

type FlightUseCase interface {
	GetAll(ctx context.Context) ([]dto.Flight, error)
	Search(ctx context.Context, origin, destination string, date *time.Time) ([]dto.Flight, error)
	GetByID(ctx context.Context, id int64) (dto.Flight, error)
	Create(ctx context.Context, in dto.FlightInput) (dto.Flight, error)
	UpdateByID(ctx context.Context, id int64, d dto.Flight) (dto.Flight, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Cache is the narrow slice of the flight-list cache the service needs.
// A nil cache disables caching entirely.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo   repository.FlightRepository
	mapper *mapper.FlightMapper
	cache  Cache
}

func NewFlightService(repo repository.FlightRepository, m *mapper.FlightMapper, cache Cache) *FlightService {
	return &FlightService{repo: repo, mapper: m, cache: cache}
}

func (s *FlightService) GetAll(ctx context.Context) ([]dto.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return s.mapper.ToDTOList(cached), nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabase(err)
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return s.mapper.ToDTOList(flights), nil
}

func (s *FlightService) Search(ctx context.Context, origin, destination string, date *time.Time) ([]dto.Flight, error) {
	flights, err := s.repo.Search(ctx, origin, destination, date)
	if err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return s.mapper.ToDTOList(flights), nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (dto.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.Flight{}, apperror.NewDatabase(err)
	}
	if flight == nil {
		return dto.Flight{}, apperror.NewNotFound("flight", id)
	}
	return s.mapper.ToDTO(*flight), nil
}

func (s *FlightService) Create(ctx context.Context, in dto.FlightInput) (dto.Flight, error) {
	flight := s.mapper.FromInput(in)
	if err := s.repo.Save(ctx, &flight); err != nil {
		return dto.Flight{}, apperror.NewDatabase(err)
	}
	s.invalidate(ctx)
	return s.mapper.ToDTO(flight), nil
}

// UpdateByID replaces the stored flight wholesale. The path id always
// wins over whatever id the body carried.
func (s *FlightService) UpdateByID(ctx context.Context, id int64, d dto.Flight) (dto.Flight, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return dto.Flight{}, apperror.NewDatabase(err)
	}
	if !exists {
		return dto.Flight{}, apperror.NewNotFound("flight", id)
	}

	d.ID = strconv.FormatInt(id, 10)
	flight, err := s.mapper.ToEntity(d)
	if err != nil {
		return dto.Flight{}, err
	}
	if err := s.repo.Save(ctx, &flight); err != nil {
		return dto.Flight{}, apperror.NewDatabase(err)
	}
	s.invalidate(ctx)
	return s.mapper.ToDTO(flight), nil
}

// DeleteByID pre-checks existence so a missing row surfaces as NotFound
// instead of a silent no-op from the store.
func (s *FlightService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if !exists {
		return apperror.NewNotFound("flight", id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperror.NewDatabase(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
