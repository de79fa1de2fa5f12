// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cabdesk/internal/types"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, first_name, last_name, email, mobile,
			flight_info, driver_notes, ride_date, ride_time,
			trip_type, adults, children,
			pickup_name, drop_name, vehicle_id, vehicle_name,
			base_fee, total_fee, currency, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, $19, $20, $21
		)`,
		string(b.ID), b.FirstName, b.LastName, b.Email, b.Mobile,
		b.FlightInfo, b.DriverNotes, b.Date, b.Time,
		string(b.TripType), b.Adults, b.Children,
		b.PickupName, b.DropName, string(b.VehicleID), b.VehicleName,
		b.BaseFee, b.TotalFee, b.Currency, string(b.Status), b.CreatedAt,
	)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, mobile,
		       flight_info, driver_notes, ride_date, ride_time,
		       trip_type, adults, children,
		       pickup_name, drop_name, vehicle_id, vehicle_name,
		       base_fee, total_fee, currency, status, created_at
		FROM bookings
		WHERE id = $1`, string(id),
	)

	var b Booking
	err := row.Scan(
		&b.ID, &b.FirstName, &b.LastName, &b.Email, &b.Mobile,
		&b.FlightInfo, &b.DriverNotes, &b.Date, &b.Time,
		&b.TripType, &b.Adults, &b.Children,
		&b.PickupName, &b.DropName, &b.VehicleID, &b.VehicleName,
		&b.BaseFee, &b.TotalFee, &b.Currency, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
