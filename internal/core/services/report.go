package services

import (
	"context"
	"fmt"

	"vehicle-checklist-service/internal/core/domain"
	"vehicle-checklist-service/internal/export"
)

// ReportResult is a filtered checklist collection plus its interval
// summary.
type ReportResult struct {
	Checklists []*domain.Checklist  `json:"checklists"`
	Counts     domain.ReportCounts  `json:"counts"`
	Range      domain.DateRange     `json:"range"`
	Filter     domain.AnomalyFilter `json:"filter"`
}

// ReportService produces date-bounded reports and their spreadsheet and
// PDF exports. The interval is validated before anything is fetched or
// formatted.
type ReportService struct {
	checklists *ChecklistService
}

func NewReportService(checklists *ChecklistService) *ReportService {
	return &ReportService{checklists: checklists}
}

// Report filters the collection to the interval and anomaly predicate.
func (s *ReportService) Report(ctx context.Context, r domain.DateRange, f domain.AnomalyFilter) (*ReportResult, error) {
	if f == "" {
		f = domain.AnomalyAll
	}
	if !f.IsValid() {
		return nil, fmt.Errorf("unknown anomaly filter %q", f)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	records, err := s.checklists.List(ctx, &r)
	if err != nil {
		return nil, err
	}

	return &ReportResult{
		Checklists: domain.FilterChecklists(records, r, f),
		Counts:     domain.Summarize(records, r),
		Range:      r,
		Filter:     f,
	}, nil
}

// ExportXLSX renders the report as a workbook and suggests a file name.
func (s *ReportService) ExportXLSX(ctx context.Context, r domain.DateRange, f domain.AnomalyFilter) ([]byte, string, error) {
	report, err := s.Report(ctx, r, f)
	if err != nil {
		return nil, "", err
	}
	data, err := export.EncodeXLSX(export.BuildTable(report.Checklists))
	if err != nil {
		return nil, "", err
	}
	return data, exportFileName(report, "xlsx"), nil
}

// ExportPDF renders the report as a paginated document.
func (s *ReportService) ExportPDF(ctx context.Context, r domain.DateRange, f domain.AnomalyFilter) ([]byte, string, error) {
	report, err := s.Report(ctx, r, f)
	if err != nil {
		return nil, "", err
	}
	data, err := export.EncodePDF(export.BuildDocument(report.Checklists, report.Range, report.Filter))
	if err != nil {
		return nil, "", err
	}
	return data, exportFileName(report, "pdf"), nil
}

func exportFileName(report *ReportResult, ext string) string {
	suffix := ""
	switch report.Filter {
	case domain.AnomalyWith:
		suffix = "-com-anomalias"
	case domain.AnomalyWithout:
		suffix = "-sem-anomalias"
	}
	return fmt.Sprintf("relatorio-checklists-%s-%s%s.%s",
		report.Range.Start.Format("2006-01-02"),
		report.Range.End.Format("2006-01-02"),
		suffix, ext)
}
