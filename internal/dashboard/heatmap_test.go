package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoimob/desocupacao/internal/models"
)

func inspectionsOn(day time.Time, count int) []models.Process {
	processes := make([]models.Process, count)
	for i := range processes {
		processes[i] = newProcess("p", "Vistoria Agendada", models.Contract{
			InspectionDate: day,
		})
	}
	return processes
}

func TestBuildHeatmapCoversWholeMonth(t *testing.T) {
	month := date(2026, time.March, 15, 10, 0)

	days := BuildHeatmap(nil, nil, month)
	require.Len(t, days, 31)
	assert.Equal(t, date(2026, time.March, 1, 0, 0), days[0].Day)
	assert.Equal(t, date(2026, time.March, 31, 0, 0), days[30].Day)

	for _, day := range days {
		assert.Equal(t, 0, day.Intensity)
	}
}

func TestBuildHeatmapCountsByDay(t *testing.T) {
	month := date(2026, time.March, 1, 0, 0)
	eventDate := date(2026, time.March, 10, 9, 0)
	outsideDate := date(2026, time.April, 2, 9, 0)

	processes := append(
		inspectionsOn(date(2026, time.March, 10, 14, 0), 2),
		inspectionsOn(outsideDate, 1)...,
	)
	events := []models.CalendarEvent{
		{ID: "ev-1", Title: "Reunião", Date: &eventDate},
	}

	days := BuildHeatmap(processes, events, month)
	require.Len(t, days, 31)

	march10 := days[9]
	assert.Equal(t, date(2026, time.March, 10, 0, 0), march10.Day)
	assert.Equal(t, 2, march10.Inspections)
	assert.Equal(t, 1, march10.Events)
	assert.Equal(t, 2, march10.Intensity)
}

func TestBuildHeatmapIntensityLevels(t *testing.T) {
	month := date(2026, time.March, 1, 0, 0)

	tests := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 3},
		{7, 4},
		{9, 5},
		{20, 5},
	}
	for _, tt := range tests {
		processes := inspectionsOn(date(2026, time.March, 10, 0, 0), tt.total)
		days := BuildHeatmap(processes, nil, month)
		assert.Equal(t, tt.want, days[9].Intensity, "total %d", tt.total)
	}
}

func TestBuildHeatmapMixedLocations(t *testing.T) {
	// The month reference parses in the server location while
	// inspection dates scan as UTC; counts must still line up.
	zone := time.FixedZone("-03", -3*60*60)
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, zone)

	processes := inspectionsOn(date(2026, time.March, 10, 0, 0), 3)
	days := BuildHeatmap(processes, nil, month)
	require.Len(t, days, 31)
	assert.Equal(t, 3, days[9].Inspections)
	assert.Equal(t, 2, days[9].Intensity)
}

func TestComputeMonthStats(t *testing.T) {
	month := date(2026, time.March, 1, 0, 0)
	processes := append(
		inspectionsOn(date(2026, time.March, 10, 0, 0), 3),
		inspectionsOn(date(2026, time.March, 20, 0, 0), 1)...,
	)

	stats := ComputeMonthStats(BuildHeatmap(processes, nil, month))
	assert.Equal(t, 4, stats.TotalInspections)
	assert.Equal(t, 2, stats.DaysWithInspections)
	assert.Equal(t, 3, stats.MaxPerDay)
}
