package dto

import (
	"time"

	"github.com/google/uuid"

	"vehicle-checklist-service/internal/core/domain"
)

type SaveVehicleRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	VehicleType  string `json:"vehicle_type" binding:"required"`
}

type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	LicensePlate string    `json:"license_plate"`
	VehicleType  string    `json:"vehicle_type"`
	VehicleLabel string    `json:"vehicle_label"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		VehicleType:  string(v.VehicleType),
		VehicleLabel: v.VehicleType.Label(),
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}

type ListVehiclesResponse struct {
	Items []VehicleResponse `json:"items"`
	Total int               `json:"total"`
}
