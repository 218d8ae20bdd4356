package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func TestDateRange_Validate(t *testing.T) {
	assert.NoError(t, DateRange{Start: day(2026, 1, 10), End: day(2026, 1, 20)}.Validate())
	assert.NoError(t, DateRange{Start: day(2026, 1, 10), End: day(2026, 1, 10)}.Validate())
}

func TestDateRange_Validate_StartAfterEnd(t *testing.T) {
	err := DateRange{Start: day(2026, 1, 20), End: day(2026, 1, 10)}.Validate()
	assert.ErrorIs(t, err, ErrEmptyDateRange)
}

func TestDateRange_Validate_NinetyDayCap(t *testing.T) {
	start := day(2026, 1, 1)

	// 90 inclusive days ends on day 90.
	assert.NoError(t, DateRange{Start: start, End: start.AddDate(0, 0, 89)}.Validate())

	err := DateRange{Start: start, End: start.AddDate(0, 0, 90)}.Validate()
	assert.ErrorIs(t, err, ErrRangeTooWide)
}

func TestDateRange_Contains_EndDayInclusive(t *testing.T) {
	r := DateRange{Start: day(2026, 1, 10), End: day(2026, 1, 20)}

	assert.True(t, r.Contains(day(2026, 1, 10)))
	assert.True(t, r.Contains(day(2026, 1, 20)))
	assert.True(t, r.Contains(time.Date(2026, 1, 20, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(day(2026, 1, 21)))
	assert.False(t, r.Contains(day(2026, 1, 9)))
}

func reportFixture() []*Checklist {
	return []*Checklist{
		{ID: mustUUID("11111111-1111-1111-1111-111111111111"), Date: day(2026, 1, 12)},
		{ID: mustUUID("22222222-2222-2222-2222-222222222222"), Date: day(2026, 1, 15),
			Problems: []Problem{{ItemKey: "lightsWorking", Description: "broken"}}},
		{ID: mustUUID("33333333-3333-3333-3333-333333333333"), Date: day(2026, 1, 20)},
		{ID: mustUUID("44444444-4444-4444-4444-444444444444"), Date: day(2026, 2, 1)},
	}
}

func TestFilterChecklists_ByRange(t *testing.T) {
	r := DateRange{Start: day(2026, 1, 10), End: day(2026, 1, 20)}

	got := FilterChecklists(reportFixture(), r, AnomalyAll)
	assert.Len(t, got, 3)
}

func TestFilterChecklists_ByAnomaly(t *testing.T) {
	r := DateRange{Start: day(2026, 1, 10), End: day(2026, 1, 20)}
	records := reportFixture()

	with := FilterChecklists(records, r, AnomalyWith)
	assert.Len(t, with, 1)
	assert.True(t, with[0].HasProblems())

	without := FilterChecklists(records, r, AnomalyWithout)
	assert.Len(t, without, 2)
}

func TestSummarize(t *testing.T) {
	r := DateRange{Start: day(2026, 1, 10), End: day(2026, 1, 20)}

	counts := Summarize(reportFixture(), r)
	assert.Equal(t, ReportCounts{Total: 3, WithAnomalies: 1, WithoutAnomalies: 2}, counts)
}
