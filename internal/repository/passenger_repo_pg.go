package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelagency/internal/domain"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, p *domain.Passenger) error
	DeleteByID(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	query, args, err := psql.
		Select("id", "first_name", "last_name", "birth_date").
		From("passengers").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list passengers: %w", err)
	}

	passengers := make([]domain.Passenger, 0)
	if err := pgxscan.Select(ctx, r.db, &passengers, query, args...); err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}
	return passengers, nil
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	query, args, err := psql.
		Select("id", "first_name", "last_name", "birth_date").
		From("passengers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get passenger: %w", err)
	}

	var p domain.Passenger
	if err := pgxscan.Get(ctx, r.db, &p, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get passenger %d: %w", id, err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM passengers WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("passenger exists %d: %w", id, err)
	}
	return exists, nil
}

// Save inserts when the id is zero, assigning the new id on the entity,
// and updates otherwise.
func (r *PGPassengerRepository) Save(ctx context.Context, p *domain.Passenger) error {
	if p.ID == 0 {
		query, args, err := psql.
			Insert("passengers").
			Columns("first_name", "last_name", "birth_date").
			Values(p.FirstName, p.LastName, p.BirthDate).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert passenger: %w", err)
		}
		if err := r.db.QueryRow(ctx, query, args...).Scan(&p.ID); err != nil {
			return fmt.Errorf("insert passenger: %w", err)
		}
		return nil
	}

	query, args, err := psql.
		Update("passengers").
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("birth_date", p.BirthDate).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update passenger: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update passenger %d: %w", p.ID, err)
	}
	return nil
}

func (r *PGPassengerRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("passengers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete passenger: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete passenger %d: %w", id, err)
	}
	return nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
