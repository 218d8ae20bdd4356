package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

// VehicleService manages the vehicle registry. Entries are keyed by
// license plate; saving an existing plate updates it in place.
type VehicleService struct {
	repo ports.VehicleRepository
}

func NewVehicleService(repo ports.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// Save upserts a registry entry. Plates are normalized to upper case.
func (s *VehicleService) Save(ctx context.Context, licensePlate string, vehicleType domain.VehicleClass) (*domain.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(licensePlate))
	if plate == "" {
		return nil, domain.ErrInvalidPlate
	}
	if !vehicleType.IsValid() {
		return nil, domain.ErrInvalidVehicleType
	}

	now := time.Now()
	v := &domain.Vehicle{
		ID:           uuid.New(),
		LicensePlate: plate,
		VehicleType:  vehicleType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// List returns the registry. A permission failure degrades to an empty
// list so the inspection form stays usable; any other failure is
// surfaced to the caller.
func (s *VehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			log.WithError(err).Warn("vehicle registry unreadable, degrading to empty list")
			return []*domain.Vehicle{}, nil
		}
		return nil, err
	}
	return vehicles, nil
}

func (s *VehicleService) Delete(ctx context.Context, licensePlate string) error {
	plate := strings.ToUpper(strings.TrimSpace(licensePlate))
	if plate == "" {
		return domain.ErrInvalidPlate
	}
	return s.repo.Delete(ctx, plate)
}
