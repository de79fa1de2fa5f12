// README: Catalog store backed by PostgreSQL.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cabdesk/internal/types"
)

var ErrNotFound = errors.New("catalog entry not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListLocations(ctx context.Context) ([]Location, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, lat, lng
		FROM locations
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Position.Lat, &l.Position.Lng); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) CreateLocation(ctx context.Context, l Location) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO locations (id, name, lat, lng, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM locations))`,
		string(l.ID), l.Name, l.Position.Lat, l.Position.Lng,
	)
	return err
}

func (s *Store) UpdateLocation(ctx context.Context, l Location) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE locations SET name = $2, lat = $3, lng = $4 WHERE id = $1`,
		string(l.ID), l.Name, l.Position.Lat, l.Position.Lng,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteLocation(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, initial_charge, per_km_price, max_passenger
		FROM vehicles
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func (s *Store) CreateVehicle(ctx context.Context, v Vehicle) error {
	if v.MaxPassenger <= 0 {
		return fmt.Errorf("vehicle %s: max_passenger must be positive", v.ID)
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicles (id, name, initial_charge, per_km_price, max_passenger, position)
		VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(position), 0) + 1 FROM vehicles))`,
		string(v.ID), v.Name, v.InitialCharge, v.PerKmPrice, v.MaxPassenger,
	)
	return err
}

func (s *Store) UpdateVehicle(ctx context.Context, v Vehicle) error {
	if v.MaxPassenger <= 0 {
		return fmt.Errorf("vehicle %s: max_passenger must be positive", v.ID)
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE vehicles
		SET name = $2, initial_charge = $3, per_km_price = $4, max_passenger = $5
		WHERE id = $1`,
		string(v.ID), v.Name, v.InitialCharge, v.PerKmPrice, v.MaxPassenger,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteVehicle(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFees returns fee entries in catalog order with their vehicle rows
// joined in. Vehicle options shown to the rider preserve this order.
func (s *Store) ListFees(ctx context.Context) ([]FeeEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT f.id, f.location_a, f.location_b, f.fee, f.mapping_key,
		       v.id, v.name, v.initial_charge, v.per_km_price, v.max_passenger
		FROM fee_entries f
		JOIN vehicles v ON v.id = f.vehicle_id
		ORDER BY f.position, f.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FeeEntry
	for rows.Next() {
		var f FeeEntry
		if err := rows.Scan(
			&f.ID, &f.LocationA, &f.LocationB, &f.Fee, &f.MappingKey,
			&f.Vehicle.ID, &f.Vehicle.Name, &f.Vehicle.InitialCharge,
			&f.Vehicle.PerKmPrice, &f.Vehicle.MaxPassenger,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) CreateFee(ctx context.Context, f FeeEntry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO fee_entries (id, location_a, location_b, vehicle_id, fee, mapping_key, position)
		VALUES ($1, $2, $3, $4, $5, $6, (SELECT COALESCE(MAX(position), 0) + 1 FROM fee_entries))`,
		string(f.ID), f.LocationA, f.LocationB, string(f.Vehicle.ID), f.Fee, f.MappingKey,
	)
	return err
}

func (s *Store) UpdateFee(ctx context.Context, f FeeEntry) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE fee_entries
		SET location_a = $2, location_b = $3, vehicle_id = $4, fee = $5, mapping_key = $6
		WHERE id = $1`,
		string(f.ID), f.LocationA, f.LocationB, string(f.Vehicle.ID), f.Fee, f.MappingKey,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteFee(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM fee_entries WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanVehicles(rows pgx.Rows) ([]Vehicle, error) {
	var out []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.InitialCharge, &v.PerKmPrice, &v.MaxPassenger); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
