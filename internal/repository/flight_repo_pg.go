package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelagency/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, origin, destination string, date *time.Time) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, f *domain.Flight) error
	DeleteByID(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	query, args, err := psql.
		Select("id", "origin", "destination", "date").
		From("flights").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flights: %w", err)
	}

	flights := make([]domain.Flight, 0)
	if err := pgxscan.Select(ctx, r.db, &flights, query, args...); err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	return flights, nil
}

// Search filters flights by any combination of origin, destination and
// date. Empty filters match everything.
func (r *PGFlightRepository) Search(ctx context.Context, origin, destination string, date *time.Time) ([]domain.Flight, error) {
	q := psql.
		Select("id", "origin", "destination", "date").
		From("flights")
	if origin != "" {
		q = q.Where(sq.Eq{"origin": origin})
	}
	if destination != "" {
		q = q.Where(sq.Eq{"destination": destination})
	}
	if date != nil {
		q = q.Where(sq.Eq{"date": *date})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search flights: %w", err)
	}

	flights := make([]domain.Flight, 0)
	if err := pgxscan.Select(ctx, r.db, &flights, query, args...); err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	query, args, err := psql.
		Select("id", "origin", "destination", "date").
		From("flights").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flight: %w", err)
	}

	var f domain.Flight
	if err := pgxscan.Get(ctx, r.db, &f, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return &f, nil
}

func (r *PGFlightRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("flight exists %d: %w", id, err)
	}
	return exists, nil
}

// Save inserts when the id is zero, assigning the new id on the entity,
// and updates otherwise.
func (r *PGFlightRepository) Save(ctx context.Context, f *domain.Flight) error {
	if f.ID == 0 {
		query, args, err := psql.
			Insert("flights").
			Columns("origin", "destination", "date").
			Values(f.Origin, f.Destination, f.Date).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert flight: %w", err)
		}
		if err := r.db.QueryRow(ctx, query, args...).Scan(&f.ID); err != nil {
			return fmt.Errorf("insert flight: %w", err)
		}
		return nil
	}

	query, args, err := psql.
		Update("flights").
		Set("origin", f.Origin).
		Set("destination", f.Destination).
		Set("date", f.Date).
		Where(sq.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update flight: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update flight %d: %w", f.ID, err)
	}
	return nil
}

func (r *PGFlightRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("flights").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete flight: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete flight %d: %w", id, err)
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
