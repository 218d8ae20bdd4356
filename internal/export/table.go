// Package export transforms filtered checklist collections into
// spreadsheet tables and paginated documents. Building the tabular and
// narrative representations is pure; file-byte encoding is delegated to
// excelize and fpdf.
package export

import (
	"strconv"
	"strings"

	"vehicle-checklist-service/internal/core/domain"
)

const dateLayoutBR = "02/01/2006"

// Table is a header row plus data rows, ready for encoding.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReportTables bundles the main checklist sheet with the per-problem
// detail sheet. Problems has no rows when the collection is clean.
type ReportTables struct {
	Checklists Table
	Problems   Table
}

// BuildTable renders one row per checklist: header fields, one
// OK/PROBLEMA column per catalog item, problem count, observations,
// photo count, and the record id.
func BuildTable(records []*domain.Checklist) ReportTables {
	header := []string{
		"Data", "Motorista", "Placa", "Tipo de Veículo",
		"Temperatura Inicial", "Temperatura Programada", "Produtos",
	}
	for _, it := range domain.Catalog {
		header = append(header, it.Label)
	}
	header = append(header, "Problemas Encontrados", "Observações", "Fotos dos Problemas", "ID")

	rows := make([][]string, 0, len(records))
	for _, c := range records {
		row := []string{
			c.Date.Format(dateLayoutBR),
			c.DriverName,
			c.LicensePlate,
			c.VehicleType.Label(),
			temperatureCell(c.InitialTemperature),
			temperatureCell(c.ProgrammedTemperature),
			productCell(c.ProductTypes),
		}
		for _, it := range domain.Catalog {
			if c.Items[it.Key] {
				row = append(row, "OK")
			} else {
				row = append(row, "PROBLEMA")
			}
		}
		row = append(row,
			strconv.Itoa(len(c.Problems)),
			observationsCell(c.GeneralObservations),
			strconv.Itoa(c.PhotoCount()),
			c.ID.String(),
		)
		rows = append(rows, row)
	}

	return ReportTables{
		Checklists: Table{Header: header, Rows: rows},
		Problems:   buildProblemsTable(records),
	}
}

func buildProblemsTable(records []*domain.Checklist) Table {
	header := []string{
		"Data", "Motorista", "Placa", "Item",
		"Descrição do Problema", "Links das Fotos", "ID Checklist",
	}
	var rows [][]string
	for _, c := range records {
		for _, p := range c.Problems {
			rows = append(rows, []string{
				c.Date.Format(dateLayoutBR),
				c.DriverName,
				c.LicensePlate,
				domain.ItemLabel(p.ItemKey),
				p.Description,
				photoCell(p.PhotoURLs),
				c.ID.String(),
			})
		}
	}
	return Table{Header: header, Rows: rows}
}

func temperatureCell(t *float64) string {
	if t == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*t, 'f', -1, 64)
}

func productCell(tags []domain.ProductType) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

func observationsCell(obs string) string {
	if strings.TrimSpace(obs) == "" {
		return "Nenhuma"
	}
	return obs
}

func photoCell(urls []string) string {
	if len(urls) == 0 {
		return "Sem foto"
	}
	return strings.Join(urls, " | ")
}
