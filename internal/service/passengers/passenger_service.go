package passengers

import (
	"context"
	"strconv"

	"travelagency/internal/apperror"
	"travelagency/internal/dto"
	"travelagency/internal/mapper"
	"travelagency/internal/repository"
)

type PassengerUseCase interface {
	GetAll(ctx context.Context) ([]dto.Passenger, error)
	GetByID(ctx context.Context, id int64) (dto.Passenger, error)
	Create(ctx context.Context, in dto.PassengerInput) (dto.Passenger, error)
	UpdateByID(ctx context.Context, id int64, d dto.Passenger) (dto.Passenger, error)
	DeleteByID(ctx context.Context, id int64) error
}

type PassengerService struct {
	repo   repository.PassengerRepository
	mapper *mapper.PassengerMapper
}

func NewPassengerService(repo repository.PassengerRepository, m *mapper.PassengerMapper) *PassengerService {
	return &PassengerService{repo: repo, mapper: m}
}

func (s *PassengerService) GetAll(ctx context.Context) ([]dto.Passenger, error) {
	passengers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return s.mapper.ToDTOList(passengers), nil
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (dto.Passenger, error) {
	passenger, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.Passenger{}, apperror.NewDatabase(err)
	}
	if passenger == nil {
		return dto.Passenger{}, apperror.NewNotFound("passenger", id)
	}
	return s.mapper.ToDTO(*passenger), nil
}

func (s *PassengerService) Create(ctx context.Context, in dto.PassengerInput) (dto.Passenger, error) {
	passenger := s.mapper.FromInput(in)
	if err := s.repo.Save(ctx, &passenger); err != nil {
		return dto.Passenger{}, apperror.NewDatabase(err)
	}
	return s.mapper.ToDTO(passenger), nil
}

// UpdateByID replaces the stored passenger wholesale. The path id always
// wins over whatever id the body carried.
func (s *PassengerService) UpdateByID(ctx context.Context, id int64, d dto.Passenger) (dto.Passenger, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return dto.Passenger{}, apperror.NewDatabase(err)
	}
	if !exists {
		return dto.Passenger{}, apperror.NewNotFound("passenger", id)
	}

	d.ID = strconv.FormatInt(id, 10)
	passenger, err := s.mapper.ToEntity(d)
	if err != nil {
		return dto.Passenger{}, err
	}
	if err := s.repo.Save(ctx, &passenger); err != nil {
		return dto.Passenger{}, apperror.NewDatabase(err)
	}
	return s.mapper.ToDTO(passenger), nil
}

// DeleteByID pre-checks existence so a missing row surfaces as NotFound
// instead of a silent no-op from the store.
func (s *PassengerService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if !exists {
		return apperror.NewNotFound("passenger", id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperror.NewDatabase(err)
	}
	return nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
