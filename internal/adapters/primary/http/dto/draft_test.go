package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vehicle-checklist-service/internal/core/domain"
)

func TestUpdateDraftRequest_ToDraftUpdate(t *testing.T) {
	date := "2026-03-15"
	name := "João da Silva"
	vt := "truck"
	req := UpdateDraftRequest{
		Date:        &date,
		DriverName:  &name,
		VehicleType: &vt,
	}

	upd, err := req.ToDraftUpdate()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *upd.Date)
	assert.Equal(t, "João da Silva", *upd.DriverName)
	assert.Equal(t, domain.VehicleTruck, *upd.VehicleType)
}

func TestUpdateDraftRequest_ToDraftUpdate_BadDate(t *testing.T) {
	date := "15/03/2026"
	_, err := UpdateDraftRequest{Date: &date}.ToDraftUpdate()
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestToDraftResponse(t *testing.T) {
	d := domain.NewDraft(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	d.DriverName = "Maria"
	assert.NoError(t, d.SetItemStatus("lightsWorking", domain.StatusProblem, &domain.ProblemDetails{Description: "broken"}))
	assert.NoError(t, d.SetProductTypes([]domain.ProductType{domain.ProductDry}))

	resp := ToDraftResponse(d)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, "Maria", resp.DriverName)
	assert.Equal(t, []string{"dry"}, resp.ProductTypes)
	assert.Len(t, resp.Items, len(domain.Catalog))
	assert.Equal(t, "problem", resp.Items["lightsWorking"].Status)
	assert.Equal(t, "broken", resp.Items["lightsWorking"].Problem.Description)
	assert.Equal(t, "not_evaluated", resp.Items["tiresCalibrated"].Status)
	assert.Nil(t, resp.Items["tiresCalibrated"].Problem)
}

func TestToCatalogResponse(t *testing.T) {
	resp := ToCatalogResponse()

	assert.Len(t, resp.Groups, 4)
	assert.Equal(t, "exterior", resp.Groups[0].Group)
	assert.Equal(t, "Verificação Externa", resp.Groups[0].Label)
	assert.Len(t, resp.Groups[0].Items, 6)
	assert.Equal(t, "Truck", resp.VehicleClasses["truck"])
	assert.Equal(t, "Carreta", resp.VehicleClasses["trailer"])
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2026-01-10", "2026-01-20")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), r.End)

	_, err = ParseDateRange("Jan 10", "2026-01-20")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
