package domain

import "time"

// MaxReportRangeDays caps a report interval, counted in inclusive
// calendar days.
const MaxReportRangeDays = 90

// AnomalyFilter restricts a report to checklists with or without
// recorded problems.
type AnomalyFilter string

const (
	AnomalyAll     AnomalyFilter = "all"
	AnomalyWith    AnomalyFilter = "with_anomalies"
	AnomalyWithout AnomalyFilter = "without_anomalies"
)

func (f AnomalyFilter) IsValid() bool {
	switch f {
	case AnomalyAll, AnomalyWith, AnomalyWithout:
		return true
	}
	return false
}

// DateRange is a closed calendar-date interval. End is inclusive of the
// entire end day; time of day on either bound is ignored.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate rejects empty or over-wide intervals before any filtering or
// export runs.
func (r DateRange) Validate() error {
	start, end := dateOnly(r.Start), dateOnly(r.End)
	if start.After(end) {
		return ErrEmptyDateRange
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxReportRangeDays {
		return ErrRangeTooWide
	}
	return nil
}

// Contains reports whether d's calendar date falls within the interval.
func (r DateRange) Contains(d time.Time) bool {
	day := dateOnly(d)
	return !day.Before(dateOnly(r.Start)) && !day.After(dateOnly(r.End))
}

// FilterChecklists returns the records dated within r, restricted by
// the anomaly predicate. Input order is preserved.
func FilterChecklists(records []*Checklist, r DateRange, f AnomalyFilter) []*Checklist {
	filtered := make([]*Checklist, 0, len(records))
	for _, c := range records {
		if !r.Contains(c.Date) {
			continue
		}
		switch f {
		case AnomalyWith:
			if !c.HasProblems() {
				continue
			}
		case AnomalyWithout:
			if c.HasProblems() {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// ReportCounts summarizes an interval.
type ReportCounts struct {
	Total            int `json:"total"`
	WithAnomalies    int `json:"with_anomalies"`
	WithoutAnomalies int `json:"without_anomalies"`
}

// Summarize counts the in-range records and their anomaly split.
func Summarize(records []*Checklist, r DateRange) ReportCounts {
	var counts ReportCounts
	for _, c := range records {
		if !r.Contains(c.Date) {
			continue
		}
		counts.Total++
		if c.HasProblems() {
			counts.WithAnomalies++
		}
	}
	counts.WithoutAnomalies = counts.Total - counts.WithAnomalies
	return counts
}
