package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a registry entry keyed by license plate. Checklists copy
// the plate and class at selection time; there is no live relationship.
type Vehicle struct {
	ID           uuid.UUID    `json:"id"`
	LicensePlate string       `json:"license_plate"`
	VehicleType  VehicleClass `json:"vehicle_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
