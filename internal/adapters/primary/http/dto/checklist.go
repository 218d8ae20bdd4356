package dto

import (
	"time"

	"github.com/google/uuid"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

type ProblemResponse struct {
	ItemKey     string   `json:"item_key"`
	ItemLabel   string   `json:"item_label"`
	Description string   `json:"description"`
	PhotoURLs   []string `json:"photo_urls,omitempty"`
}

func ToProblemResponse(p domain.Problem) ProblemResponse {
	return ProblemResponse{
		ItemKey:     p.ItemKey,
		ItemLabel:   domain.ItemLabel(p.ItemKey),
		Description: p.Description,
		PhotoURLs:   p.PhotoURLs,
	}
}

type ChecklistResponse struct {
	ID                    uuid.UUID         `json:"id"`
	Date                  string            `json:"date"`
	DriverName            string            `json:"driver_name"`
	VehicleType           string            `json:"vehicle_type"`
	LicensePlate          string            `json:"license_plate"`
	Items                 map[string]bool   `json:"items"`
	ItemStatuses          map[string]string `json:"item_statuses"`
	InitialTemperature    *float64          `json:"initial_temperature"`
	ProgrammedTemperature *float64          `json:"programmed_temperature"`
	ProductTypes          []string          `json:"product_types"`
	Problems              []ProblemResponse `json:"problems"`
	GeneralObservations   string            `json:"general_observations"`
	DeclarationAccepted   bool              `json:"declaration_accepted"`
	CreatedAt             string            `json:"created_at"`
	CompletedAt           string            `json:"completed_at"`
}

func ToChecklistResponse(c *domain.Checklist) ChecklistResponse {
	statuses := make(map[string]string, len(domain.Catalog))
	for _, it := range domain.Catalog {
		statuses[it.Key] = string(c.ItemStatus(it.Key))
	}

	tags := make([]string, 0, len(c.ProductTypes))
	for _, t := range c.ProductTypes {
		tags = append(tags, string(t))
	}

	problems := make([]ProblemResponse, 0, len(c.Problems))
	for _, p := range c.Problems {
		problems = append(problems, ToProblemResponse(p))
	}

	return ChecklistResponse{
		ID:                    c.ID,
		Date:                  c.Date.Format("2006-01-02"),
		DriverName:            c.DriverName,
		VehicleType:           string(c.VehicleType),
		LicensePlate:          c.LicensePlate,
		Items:                 c.Items,
		ItemStatuses:          statuses,
		InitialTemperature:    c.InitialTemperature,
		ProgrammedTemperature: c.ProgrammedTemperature,
		ProductTypes:          tags,
		Problems:              problems,
		GeneralObservations:   c.GeneralObservations,
		DeclarationAccepted:   c.DeclarationAccepted,
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
		CompletedAt:           c.CompletedAt.Format(time.RFC3339),
	}
}

type UpdateChecklistRequest struct {
	DriverName          *string `json:"driver_name"`
	LicensePlate        *string `json:"license_plate"`
	GeneralObservations *string `json:"general_observations"`
}

func (r UpdateChecklistRequest) ToChecklistUpdate() ports.ChecklistUpdate {
	return ports.ChecklistUpdate{
		DriverName:          r.DriverName,
		LicensePlate:        r.LicensePlate,
		GeneralObservations: r.GeneralObservations,
	}
}

type ListChecklistsResponse struct {
	Items []ChecklistResponse `json:"items"`
	Total int                 `json:"total"`
}

// SubmitBlockedResponse reports the first failing submission rule.
type SubmitBlockedResponse struct {
	Reason   string   `json:"reason"`
	ItemKeys []string `json:"item_keys,omitempty"`
}
