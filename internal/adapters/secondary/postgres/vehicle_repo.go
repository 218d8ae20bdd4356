package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

type vehicleRepo struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) ports.VehicleRepository {
	return &vehicleRepo{pool: pool}
}

// Upsert inserts or replaces the registry entry for the plate. The
// stored id and creation time win on conflict and are written back.
func (r *vehicleRepo) Upsert(ctx context.Context, v *domain.Vehicle) error {
	query := `
		INSERT INTO vehicle (id, license_plate, vehicle_type, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (license_plate) DO UPDATE SET
			vehicle_type = EXCLUDED.vehicle_type,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, v.ID, v.LicensePlate, string(v.VehicleType)).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert vehicle: %w", mapPgError(err))
	}
	return nil
}

func (r *vehicleRepo) List(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, license_plate, vehicle_type, created_at, updated_at
		FROM vehicle
		ORDER BY license_plate
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", mapPgError(err))
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		v := &domain.Vehicle{}
		var vehicleType string
		if err := rows.Scan(&v.ID, &v.LicensePlate, &vehicleType, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		v.VehicleType = domain.VehicleClass(vehicleType)
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicle rows: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepo) Delete(ctx context.Context, licensePlate string) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM vehicle WHERE license_plate = $1", licensePlate)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", mapPgError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
