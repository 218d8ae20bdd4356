package ports

import (
	"context"

	"github.com/google/uuid"

	"vehicle-checklist-service/internal/core/domain"
)

// ChecklistUpdate carries the administrative partial-update fields.
type ChecklistUpdate struct {
	DriverName          *string
	LicensePlate        *string
	GeneralObservations *string
}

// ChecklistRepository is the persistence gateway for completed
// checklists. Create upserts by record id so a retried submission after
// a partial failure overwrites instead of duplicating, and stamps the
// server-assigned creation time back onto the record.
type ChecklistRepository interface {
	Create(ctx context.Context, c *domain.Checklist) error
	List(ctx context.Context, r *domain.DateRange) ([]*domain.Checklist, error)
	Update(ctx context.Context, id uuid.UUID, upd ChecklistUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository is the persistence gateway for the vehicle
// registry, keyed by license plate for upsert semantics.
type VehicleRepository interface {
	Upsert(ctx context.Context, v *domain.Vehicle) error
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Delete(ctx context.Context, licensePlate string) error
}
