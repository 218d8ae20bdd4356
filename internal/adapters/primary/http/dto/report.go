package dto

import (
	"time"

	"vehicle-checklist-service/internal/core/domain"
	"vehicle-checklist-service/internal/core/services"
)

// ParseDateRange reads the start/end query values, both in the
// 2006-01-02 layout.
func ParseDateRange(start, end string) (domain.DateRange, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return domain.DateRange{}, domain.ErrInvalidDate
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return domain.DateRange{}, domain.ErrInvalidDate
	}
	return domain.DateRange{Start: s, End: e}, nil
}

type ReportResponse struct {
	Start  string              `json:"start"`
	End    string              `json:"end"`
	Filter string              `json:"filter"`
	Counts domain.ReportCounts `json:"counts"`
	Items  []ChecklistResponse `json:"items"`
}

func ToReportResponse(r *services.ReportResult) ReportResponse {
	items := make([]ChecklistResponse, 0, len(r.Checklists))
	for _, c := range r.Checklists {
		items = append(items, ToChecklistResponse(c))
	}
	return ReportResponse{
		Start:  r.Range.Start.Format("2006-01-02"),
		End:    r.Range.End.Format("2006-01-02"),
		Filter: string(r.Filter),
		Counts: r.Counts,
		Items:  items,
	}
}
