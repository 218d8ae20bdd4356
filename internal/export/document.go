package export

import (
	"fmt"

	"vehicle-checklist-service/internal/core/domain"
)

// Document is the paginated narrative representation: a title block
// followed by one section per checklist.
type Document struct {
	Title      string
	Period     string
	FilterLine string
	Sections   []Section
}

// Section groups one checklist: header lines, numbered problem
// descriptions, the photo links they reference, and the observations.
type Section struct {
	Heading      string
	InfoLines    []string
	ProblemLines []string
	PhotoLinks   []string
	Observations string
}

// BuildDocument renders the filtered collection into the layout the PDF
// encoder paginates.
func BuildDocument(records []*domain.Checklist, r domain.DateRange, f domain.AnomalyFilter) Document {
	doc := Document{
		Title:      "Relatório de Checklists de Veículos",
		Period:     fmt.Sprintf("Período: %s a %s", r.Start.Format(dateLayoutBR), r.End.Format(dateLayoutBR)),
		FilterLine: filterLine(f),
	}

	for i, c := range records {
		sec := Section{
			Heading: fmt.Sprintf("Checklist %d", i+1),
			InfoLines: []string{
				fmt.Sprintf("Data: %s   Motorista: %s   Placa: %s", c.Date.Format(dateLayoutBR), c.DriverName, c.LicensePlate),
				fmt.Sprintf("Tipo: %s   Temperatura: %s°C   Programada: %s°C", c.VehicleType.Label(), temperatureCell(c.InitialTemperature), temperatureCell(c.ProgrammedTemperature)),
			},
			Observations: c.GeneralObservations,
		}
		for idx, p := range c.Problems {
			sec.ProblemLines = append(sec.ProblemLines,
				fmt.Sprintf("%d. %s: %s", idx+1, domain.ItemLabel(p.ItemKey), p.Description))
			for _, url := range p.PhotoURLs {
				sec.PhotoLinks = append(sec.PhotoLinks, fmt.Sprintf("Foto (%s): %s", domain.ItemLabel(p.ItemKey), url))
			}
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc
}

func filterLine(f domain.AnomalyFilter) string {
	switch f {
	case domain.AnomalyWith:
		return "Filtro: Apenas com Anomalias"
	case domain.AnomalyWithout:
		return "Filtro: Apenas sem Anomalias"
	default:
		return "Filtro: Todos os Checklists"
	}
}
