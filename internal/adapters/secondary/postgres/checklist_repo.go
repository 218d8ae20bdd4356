package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

const pgInsufficientPrivilege = "42501"

type checklistRepo struct {
	pool *pgxpool.Pool
}

func NewChecklistRepository(pool *pgxpool.Pool) ports.ChecklistRepository {
	return &checklistRepo{pool: pool}
}

// Create upserts by id and stamps the server-assigned creation time
// back onto the record. On conflict the original created_at is kept so
// a resubmission after a partial failure overwrites instead of
// duplicating.
func (r *checklistRepo) Create(ctx context.Context, c *domain.Checklist) error {
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	problemsJSON, err := json.Marshal(c.Problems)
	if err != nil {
		return fmt.Errorf("marshal problems: %w", err)
	}
	productsJSON, err := json.Marshal(c.ProductTypes)
	if err != nil {
		return fmt.Errorf("marshal product types: %w", err)
	}

	query := `
		INSERT INTO checklist
			(id, date, driver_name, vehicle_type, license_plate,
			 initial_temperature, programmed_temperature, product_types,
			 items, problems, general_observations, declaration_accepted,
			 created_at, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW(),$13)
		ON CONFLICT (id) DO UPDATE SET
			date = EXCLUDED.date,
			driver_name = EXCLUDED.driver_name,
			vehicle_type = EXCLUDED.vehicle_type,
			license_plate = EXCLUDED.license_plate,
			initial_temperature = EXCLUDED.initial_temperature,
			programmed_temperature = EXCLUDED.programmed_temperature,
			product_types = EXCLUDED.product_types,
			items = EXCLUDED.items,
			problems = EXCLUDED.problems,
			general_observations = EXCLUDED.general_observations,
			declaration_accepted = EXCLUDED.declaration_accepted,
			completed_at = EXCLUDED.completed_at
		RETURNING created_at
	`
	err = r.pool.QueryRow(ctx, query,
		c.ID, c.Date, c.DriverName, string(c.VehicleType), c.LicensePlate,
		c.InitialTemperature, c.ProgrammedTemperature, productsJSON,
		itemsJSON, problemsJSON, c.GeneralObservations, c.DeclarationAccepted,
		c.CompletedAt,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create checklist: %w", mapPgError(err))
	}
	return nil
}

func (r *checklistRepo) List(ctx context.Context, dr *domain.DateRange) ([]*domain.Checklist, error) {
	query := `
		SELECT id, date, driver_name, vehicle_type, license_plate,
			   initial_temperature, programmed_temperature, product_types,
			   items, problems, general_observations, declaration_accepted,
			   created_at, completed_at
		FROM checklist
	`
	var args []interface{}
	if dr != nil {
		query += " WHERE date BETWEEN $1 AND $2"
		args = append(args, dr.Start, dr.End)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", mapPgError(err))
	}
	defer rows.Close()

	var records []*domain.Checklist
	for rows.Next() {
		c, err := scanChecklist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checklist row: %w", err)
		}
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklist rows: %w", err)
	}
	return records, nil
}

func (r *checklistRepo) Update(ctx context.Context, id uuid.UUID, upd ports.ChecklistUpdate) error {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if upd.DriverName != nil {
		sets = append(sets, fmt.Sprintf("driver_name = $%d", argPos))
		args = append(args, *upd.DriverName)
		argPos++
	}
	if upd.LicensePlate != nil {
		sets = append(sets, fmt.Sprintf("license_plate = $%d", argPos))
		args = append(args, *upd.LicensePlate)
		argPos++
	}
	if upd.GeneralObservations != nil {
		sets = append(sets, fmt.Sprintf("general_observations = $%d", argPos))
		args = append(args, *upd.GeneralObservations)
		argPos++
	}
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE checklist SET %s WHERE id = $%d", strings.Join(sets, ", "), argPos)
	args = append(args, id)

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update checklist: %w", mapPgError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrChecklistNotFound
	}
	return nil
}

func (r *checklistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM checklist WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete checklist: %w", mapPgError(err))
	}
	if result.RowsAffected() == 0 {
		return domain.ErrChecklistNotFound
	}
	return nil
}

func scanChecklist(row pgx.Row) (*domain.Checklist, error) {
	c := &domain.Checklist{}
	var vehicleType string
	var productsJSON, itemsJSON, problemsJSON []byte

	err := row.Scan(
		&c.ID, &c.Date, &c.DriverName, &vehicleType, &c.LicensePlate,
		&c.InitialTemperature, &c.ProgrammedTemperature, &productsJSON,
		&itemsJSON, &problemsJSON, &c.GeneralObservations, &c.DeclarationAccepted,
		&c.CreatedAt, &c.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	c.VehicleType = domain.VehicleClass(vehicleType)
	if len(productsJSON) > 0 {
		if err := json.Unmarshal(productsJSON, &c.ProductTypes); err != nil {
			return nil, fmt.Errorf("unmarshal product types: %w", err)
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &c.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	if len(problemsJSON) > 0 {
		if err := json.Unmarshal(problemsJSON, &c.Problems); err != nil {
			return nil, fmt.Errorf("unmarshal problems: %w", err)
		}
	}
	return c, nil
}

// mapPgError translates permission failures to the domain sentinel so
// callers can decide whether to degrade.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInsufficientPrivilege {
		return domain.ErrPermissionDenied
	}
	return err
}
