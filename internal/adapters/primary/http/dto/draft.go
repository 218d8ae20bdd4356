package dto

import (
	"time"

	"github.com/google/uuid"

	"vehicle-checklist-service/internal/core/domain"
	"vehicle-checklist-service/internal/core/services"
)

type UpdateDraftRequest struct {
	Date                  *string  `json:"date"`
	DriverName            *string  `json:"driver_name"`
	VehicleType           *string  `json:"vehicle_type"`
	LicensePlate          *string  `json:"license_plate"`
	InitialTemperature    *float64 `json:"initial_temperature"`
	ProgrammedTemperature *float64 `json:"programmed_temperature"`
	ClearTemperatures     bool     `json:"clear_temperatures"`
	GeneralObservations   *string  `json:"general_observations"`
	DeclarationAccepted   *bool    `json:"declaration_accepted"`
}

// ToDraftUpdate parses the wire fields; the date uses the 2006-01-02
// layout.
func (r UpdateDraftRequest) ToDraftUpdate() (services.DraftUpdate, error) {
	upd := services.DraftUpdate{
		DriverName:            r.DriverName,
		LicensePlate:          r.LicensePlate,
		InitialTemperature:    r.InitialTemperature,
		ProgrammedTemperature: r.ProgrammedTemperature,
		ClearTemperatures:     r.ClearTemperatures,
		GeneralObservations:   r.GeneralObservations,
		DeclarationAccepted:   r.DeclarationAccepted,
	}
	if r.Date != nil {
		d, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return services.DraftUpdate{}, domain.ErrInvalidDate
		}
		upd.Date = &d
	}
	if r.VehicleType != nil {
		vt := domain.VehicleClass(*r.VehicleType)
		upd.VehicleType = &vt
	}
	return upd, nil
}

type SetItemStatusRequest struct {
	Status      string   `json:"status" binding:"required"`
	Description string   `json:"description"`
	PhotoURLs   []string `json:"photo_urls"`
	Uploading   bool     `json:"uploading"`
}

type SetProductTypesRequest struct {
	ProductTypes []string `json:"product_types"`
}

type AttachPhotosRequest struct {
	Images []string `json:"images" binding:"required,min=1"`
}

type ItemStateResponse struct {
	Status  string           `json:"status"`
	Problem *ProblemResponse `json:"problem,omitempty"`
}

type DraftResponse struct {
	ID                    uuid.UUID                    `json:"id"`
	Date                  string                       `json:"date"`
	DriverName            string                       `json:"driver_name"`
	VehicleType           string                       `json:"vehicle_type"`
	LicensePlate          string                       `json:"license_plate"`
	InitialTemperature    *float64                     `json:"initial_temperature"`
	ProgrammedTemperature *float64                     `json:"programmed_temperature"`
	ProductTypes          []string                     `json:"product_types"`
	GeneralObservations   string                       `json:"general_observations"`
	DeclarationAccepted   bool                         `json:"declaration_accepted"`
	Items                 map[string]ItemStateResponse `json:"items"`
	Uploading             []string                     `json:"uploading,omitempty"`
	Unconfirmed           []string                     `json:"unconfirmed,omitempty"`
	CreatedAt             string                       `json:"created_at"`
}

func ToDraftResponse(d *domain.Draft) DraftResponse {
	items := make(map[string]ItemStateResponse, len(domain.Catalog))
	for _, it := range domain.Catalog {
		state := ItemStateResponse{Status: string(d.ItemStatus(it.Key))}
		if p := d.ProblemFor(it.Key); p != nil {
			resp := ToProblemResponse(*p)
			state.Problem = &resp
		}
		items[it.Key] = state
	}

	tags := make([]string, 0, len(d.ProductTypes()))
	for _, t := range d.ProductTypes() {
		tags = append(tags, string(t))
	}

	return DraftResponse{
		ID:                    d.ID,
		Date:                  d.Date.Format("2006-01-02"),
		DriverName:            d.DriverName,
		VehicleType:           string(d.VehicleType),
		LicensePlate:          d.LicensePlate,
		InitialTemperature:    d.InitialTemperature,
		ProgrammedTemperature: d.ProgrammedTemperature,
		ProductTypes:          tags,
		GeneralObservations:   d.GeneralObservations,
		DeclarationAccepted:   d.DeclarationAccepted,
		Items:                 items,
		Uploading:             d.UploadingKeys(),
		Unconfirmed:           d.UnconfirmedKeys(),
		CreatedAt:             d.CreatedAt.Format(time.RFC3339),
	}
}
