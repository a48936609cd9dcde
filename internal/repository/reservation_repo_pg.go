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

type ReservationRepository interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, r *domain.Reservation) error
	DeleteByID(ctx context.Context, id int64) error
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// reservationRow is the flattened shape of the three-way join; the
// referenced flight and passenger are always loaded with the row.
type reservationRow struct {
	ID                 int64     `db:"id"`
	Seat               string    `db:"seat"`
	FlightID           int64     `db:"flight_id"`
	FlightOrigin       string    `db:"flight_origin"`
	FlightDestination  string    `db:"flight_destination"`
	FlightDate         time.Time `db:"flight_date"`
	PassengerID        int64     `db:"passenger_id"`
	PassengerFirstName string    `db:"passenger_first_name"`
	PassengerLastName  string    `db:"passenger_last_name"`
	PassengerBirthDate time.Time `db:"passenger_birth_date"`
}

func (row reservationRow) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:   row.ID,
		Seat: row.Seat,
		Flight: domain.Flight{
			ID:          row.FlightID,
			Origin:      row.FlightOrigin,
			Destination: row.FlightDestination,
			Date:        row.FlightDate,
		},
		Passenger: domain.Passenger{
			ID:        row.PassengerID,
			FirstName: row.PassengerFirstName,
			LastName:  row.PassengerLastName,
			BirthDate: row.PassengerBirthDate,
		},
	}
}

func reservationSelect() sq.SelectBuilder {
	return psql.
		Select(
			"r.id", "r.seat",
			"f.id AS flight_id", "f.origin AS flight_origin", "f.destination AS flight_destination", "f.date AS flight_date",
			"p.id AS passenger_id", "p.first_name AS passenger_first_name", "p.last_name AS passenger_last_name", "p.birth_date AS passenger_birth_date",
		).
		From("reservations r").
		Join("flights f ON f.id = r.flight_id").
		Join("passengers p ON p.id = r.passenger_id")
}

func (r *PGReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	query, args, err := reservationSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations: %w", err)
	}

	rows := make([]reservationRow, 0)
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, row.toDomain())
	}
	return reservations, nil
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := reservationSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation: %w", err)
	}

	var row reservationRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	res := row.toDomain()
	return &res, nil
}

func (r *PGReservationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("reservation exists %d: %w", id, err)
	}
	return exists, nil
}

// Save inserts when the id is zero, assigning the new id on the entity,
// and updates otherwise. Only the seat and the two foreign keys are
// persisted; the nested records belong to their own stores.
func (r *PGReservationRepository) Save(ctx context.Context, res *domain.Reservation) error {
	if res.ID == 0 {
		query, args, err := psql.
			Insert("reservations").
			Columns("seat", "flight_id", "passenger_id").
			Values(res.Seat, res.Flight.ID, res.Passenger.ID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert reservation: %w", err)
		}
		if err := r.db.QueryRow(ctx, query, args...).Scan(&res.ID); err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
		return nil
	}

	query, args, err := psql.
		Update("reservations").
		Set("seat", res.Seat).
		Set("flight_id", res.Flight.ID).
		Set("passenger_id", res.Passenger.ID).
		Where(sq.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update reservation %d: %w", res.ID, err)
	}
	return nil
}

func (r *PGReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("reservations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	return nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
