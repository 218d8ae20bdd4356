package services

import (
	"fmt"
	"strconv"
	"strings"

	"vehicle-checklist-service/internal/core/domain"
)

const dateLayoutBR = "02/01/2006"

// RenderTemplateFields flattens a completed checklist into the template
// mapping consumed by the notification gateway: one status and one
// photo-link field per catalog item, counts, the concatenated problem
// and photo lists, and the full rendered text summary.
func RenderTemplateFields(c *domain.Checklist) map[string]string {
	fields := map[string]string{
		"driver_name":            c.DriverName,
		"license_plate":          c.LicensePlate,
		"vehicle_type":           c.VehicleType.Label(),
		"checklist_date":         c.Date.Format(dateLayoutBR),
		"completion_date":        c.CompletedAt.Format("02/01/2006 15:04"),
		"initial_temperature":    formatTemperature(c.InitialTemperature),
		"programmed_temperature": formatTemperature(c.ProgrammedTemperature),
		"product_types":          formatProductTypes(c.ProductTypes),
		"problems_count":         strconv.Itoa(len(c.Problems)),
		"photos_count":           strconv.Itoa(c.PhotoCount()),
		"problems_list":          problemsList(c),
		"problem_photos":         photosList(c),
		"general_observations":   observationsOrDefault(c.GeneralObservations),
		"checklist_id":           c.ID.String(),
	}

	if c.HasProblems() {
		fields["has_problems"] = "show"
		fields["no_problems"] = ""
	} else {
		fields["has_problems"] = ""
		fields["no_problems"] = "show"
	}

	for _, it := range domain.Catalog {
		fields[it.Key+"_status"] = statusText(c, it.Key)
		fields[it.Key+"_photo_link"] = photoLink(c, it.Key)
	}

	fields["checklist_summary"] = renderSummary(c)
	return fields
}

func statusText(c *domain.Checklist, key string) string {
	if c.Items[key] {
		return "OK"
	}
	return "ANOMALIA"
}

func photoLink(c *domain.Checklist, key string) string {
	p := c.ProblemFor(key)
	if p == nil || len(p.PhotoURLs) == 0 {
		return ""
	}
	return " - " + strings.Join(p.PhotoURLs, " | ")
}

func problemsList(c *domain.Checklist) string {
	if !c.HasProblems() {
		return "Nenhum problema encontrado"
	}
	lines := make([]string, 0, len(c.Problems))
	for i, p := range c.Problems {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, domain.ItemLabel(p.ItemKey), p.Description))
	}
	return strings.Join(lines, "\n")
}

func photosList(c *domain.Checklist) string {
	var blocks []string
	n := 0
	for _, p := range c.Problems {
		if len(p.PhotoURLs) == 0 {
			continue
		}
		n++
		links := make([]string, 0, len(p.PhotoURLs))
		for i, url := range p.PhotoURLs {
			links = append(links, fmt.Sprintf("   Foto %d: %s", i+1, url))
		}
		blocks = append(blocks, fmt.Sprintf("%d. %s:\n%s", n, p.Description, strings.Join(links, "\n")))
	}
	if len(blocks) == 0 {
		return "Nenhuma foto anexada"
	}
	return strings.Join(blocks, "\n\n")
}

func observationsOrDefault(obs string) string {
	if strings.TrimSpace(obs) == "" {
		return "Nenhuma observação"
	}
	return obs
}

func formatTemperature(t *float64) string {
	if t == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*t, 'f', -1, 64)
}

func formatProductTypes(tags []domain.ProductType) string {
	if len(tags) == 0 {
		return "N/A"
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

func renderSummary(c *domain.Checklist) string {
	var b strings.Builder
	b.WriteString("CHECKLIST DE VEÍCULO REFRIGERADO\n")
	b.WriteString("================================\n\n")

	b.WriteString("DADOS GERAIS:\n")
	fmt.Fprintf(&b, "- Data: %s\n", c.Date.Format(dateLayoutBR))
	fmt.Fprintf(&b, "- Finalizado em: %s\n", c.CompletedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "- Motorista: %s\n", c.DriverName)
	fmt.Fprintf(&b, "- Tipo: %s\n", c.VehicleType.Label())
	fmt.Fprintf(&b, "- Placa: %s\n", c.LicensePlate)

	for _, g := range []domain.ItemGroup{
		domain.GroupExterior,
		domain.GroupInterior,
		domain.GroupRefrigeration,
		domain.GroupDocumentation,
	} {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(domain.GroupLabels[g]))
		if g == domain.GroupRefrigeration {
			fmt.Fprintf(&b, "- Temperatura Inicial: %s°C\n", formatTemperature(c.InitialTemperature))
			fmt.Fprintf(&b, "- Temperatura Programada: %s°C\n", formatTemperature(c.ProgrammedTemperature))
		}
		for _, it := range domain.ItemsInGroup(g) {
			fmt.Fprintf(&b, "- %s: %s%s\n", it.Label, statusText(c, it.Key), photoLink(c, it.Key))
		}
	}

	fmt.Fprintf(&b, "\nPROBLEMAS ENCONTRADOS: %d\n", len(c.Problems))
	b.WriteString(problemsList(c))
	b.WriteString("\n\nOBSERVAÇÕES:\n")
	b.WriteString(observationsOrDefault(c.GeneralObservations))
	fmt.Fprintf(&b, "\n\nID: %s\n", c.ID.String())
	return b.String()
}
