package mapper

import (
	"travelagency/internal/domain"
	"travelagency/internal/dto"
)

type FlightMapper struct{}

func NewFlightMapper() *FlightMapper {
	return &FlightMapper{}
}

func (m *FlightMapper) ToDTO(f domain.Flight) dto.Flight {
	return dto.Flight{
		ID:          formatID(f.ID),
		Origin:      f.Origin,
		Destination: f.Destination,
		Date:        f.Date,
	}
}

func (m *FlightMapper) ToEntity(d dto.Flight) (domain.Flight, error) {
	id, err := parseID("flight", d.ID)
	if err != nil {
		return domain.Flight{}, err
	}
	return domain.Flight{
		ID:          id,
		Origin:      d.Origin,
		Destination: d.Destination,
		Date:        d.Date,
	}, nil
}

// FromInput builds an entity with a zero id, to be assigned on insert.
func (m *FlightMapper) FromInput(in dto.FlightInput) domain.Flight {
	return domain.Flight{
		Origin:      in.Origin,
		Destination: in.Destination,
		Date:        in.Date,
	}
}

func (m *FlightMapper) ToDTOList(flights []domain.Flight) []dto.Flight {
	out := make([]dto.Flight, 0, len(flights))
	for _, f := range flights {
		out = append(out, m.ToDTO(f))
	}
	return out
}

func (m *FlightMapper) ToEntityList(dtos []dto.Flight) ([]domain.Flight, error) {
	out := make([]domain.Flight, 0, len(dtos))
	for _, d := range dtos {
		f, err := m.ToEntity(d)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
