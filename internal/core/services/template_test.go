package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"vehicle-checklist-service/internal/core/domain"
)

func templateFixture() *domain.Checklist {
	initial, programmed := -2.0, -5.5
	items := make(map[string]bool, len(domain.Catalog))
	for _, it := range domain.Catalog {
		items[it.Key] = true
	}
	items["lightsWorking"] = false

	return &domain.Checklist{
		ID:                    uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),
		Date:                  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		DriverName:            "João da Silva",
		VehicleType:           domain.VehicleTruck,
		LicensePlate:          "ABC1D23",
		Items:                 items,
		InitialTemperature:    &initial,
		ProgrammedTemperature: &programmed,
		ProductTypes:          []domain.ProductType{domain.ProductChilled, domain.ProductFrozen},
		Problems: []domain.Problem{
			{ItemKey: "lightsWorking", Description: "lanterna direita quebrada",
				PhotoURLs: []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}},
		},
		DeclarationAccepted: true,
		CompletedAt:         time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC),
	}
}

func TestRenderTemplateFields_Header(t *testing.T) {
	fields := RenderTemplateFields(templateFixture())

	assert.Equal(t, "João da Silva", fields["driver_name"])
	assert.Equal(t, "ABC1D23", fields["license_plate"])
	assert.Equal(t, "Truck", fields["vehicle_type"])
	assert.Equal(t, "15/03/2026", fields["checklist_date"])
	assert.Equal(t, "15/03/2026 08:30", fields["completion_date"])
	assert.Equal(t, "-2", fields["initial_temperature"])
	assert.Equal(t, "-5.5", fields["programmed_temperature"])
	assert.Equal(t, "chilled, frozen", fields["product_types"])
	assert.Equal(t, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", fields["checklist_id"])
}

func TestRenderTemplateFields_PerItemStatus(t *testing.T) {
	fields := RenderTemplateFields(templateFixture())

	assert.Equal(t, "OK", fields["tiresCalibrated_status"])
	assert.Equal(t, "ANOMALIA", fields["lightsWorking_status"])
	assert.Equal(t, " - https://img.example/a.jpg | https://img.example/b.jpg", fields["lightsWorking_photo_link"])
	assert.Equal(t, "", fields["tiresCalibrated_photo_link"])
}

func TestRenderTemplateFields_ProblemSections(t *testing.T) {
	fields := RenderTemplateFields(templateFixture())

	assert.Equal(t, "1", fields["problems_count"])
	assert.Equal(t, "2", fields["photos_count"])
	assert.Equal(t, "show", fields["has_problems"])
	assert.Equal(t, "", fields["no_problems"])
	assert.Equal(t, "1. Lanternas e Faróis: lanterna direita quebrada", fields["problems_list"])
	assert.Contains(t, fields["problem_photos"], "   Foto 1: https://img.example/a.jpg")
	assert.Contains(t, fields["problem_photos"], "   Foto 2: https://img.example/b.jpg")
}

func TestRenderTemplateFields_NoProblems(t *testing.T) {
	c := templateFixture()
	c.Items["lightsWorking"] = true
	c.Problems = nil

	fields := RenderTemplateFields(c)
	assert.Equal(t, "Nenhum problema encontrado", fields["problems_list"])
	assert.Equal(t, "Nenhuma foto anexada", fields["problem_photos"])
	assert.Equal(t, "", fields["has_problems"])
	assert.Equal(t, "show", fields["no_problems"])
	assert.Equal(t, "Nenhuma observação", fields["general_observations"])
}

func TestRenderTemplateFields_MissingTemperatures(t *testing.T) {
	c := templateFixture()
	c.InitialTemperature = nil
	c.ProgrammedTemperature = nil

	fields := RenderTemplateFields(c)
	assert.Equal(t, "N/A", fields["initial_temperature"])
	assert.Equal(t, "N/A", fields["programmed_temperature"])
}

func TestRenderTemplateFields_Summary(t *testing.T) {
	summary := RenderTemplateFields(templateFixture())["checklist_summary"]

	assert.True(t, strings.HasPrefix(summary, "CHECKLIST DE VEÍCULO REFRIGERADO"))
	assert.Contains(t, summary, "VERIFICAÇÃO EXTERNA:")
	assert.Contains(t, summary, "SISTEMA DE REFRIGERAÇÃO:")
	assert.Contains(t, summary, "- Temperatura Inicial: -2°C")
	assert.Contains(t, summary, "- Lanternas e Faróis: ANOMALIA - https://img.example/a.jpg | https://img.example/b.jpg")
	assert.Contains(t, summary, "PROBLEMAS ENCONTRADOS: 1")
	assert.Contains(t, summary, "ID: aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
}
