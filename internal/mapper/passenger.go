package mapper

import (
	"travelagency/internal/domain"
	"travelagency/internal/dto"
)

type PassengerMapper struct{}

func NewPassengerMapper() *PassengerMapper {
	return &PassengerMapper{}
}

func (m *PassengerMapper) ToDTO(p domain.Passenger) dto.Passenger {
	return dto.Passenger{
		ID:        formatID(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
	}
}

func (m *PassengerMapper) ToEntity(d dto.Passenger) (domain.Passenger, error) {
	id, err := parseID("passenger", d.ID)
	if err != nil {
		return domain.Passenger{}, err
	}
	return domain.Passenger{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BirthDate: d.BirthDate,
	}, nil
}

// FromInput builds an entity with a zero id, to be assigned on insert.
func (m *PassengerMapper) FromInput(in dto.PassengerInput) domain.Passenger {
	return domain.Passenger{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
	}
}

func (m *PassengerMapper) ToDTOList(passengers []domain.Passenger) []dto.Passenger {
	out := make([]dto.Passenger, 0, len(passengers))
	for _, p := range passengers {
		out = append(out, m.ToDTO(p))
	}
	return out
}

func (m *PassengerMapper) ToEntityList(dtos []dto.Passenger) ([]domain.Passenger, error) {
	out := make([]domain.Passenger, 0, len(dtos))
	for _, d := range dtos {
		p, err := m.ToEntity(d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
