package dashboard

import (
	"time"

	"github.com/gestaoimob/desocupacao/internal/models"
)

type HeatmapDay struct {
	Day         time.Time
	Inspections int
	Events      int
	Intensity   int
}

type MonthStats struct {
	TotalInspections    int
	DaysWithInspections int
	MaxPerDay           int
}

// BuildHeatmap returns one entry per day of the month containing the
// reference date, with the inspection and generic-event counts for that
// day and an intensity level derived from their sum. Week padding for
// the rendering grid is left to the view.
func BuildHeatmap(processes []models.Process, events []models.CalendarEvent, month time.Time) []HeatmapDay {
	// Anchored at UTC like DayStart so the cursor hits the same map
	// keys regardless of the location the month arrived in.
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	inspections := make(map[time.Time]int)
	for _, process := range processes {
		if process.Contract.InspectionDate.IsZero() {
			continue
		}
		inspections[DayStart(process.Contract.InspectionDate)]++
	}

	generic := make(map[time.Time]int)
	for _, event := range events {
		if event.Date == nil {
			continue
		}
		generic[DayStart(*event.Date)]++
	}

	var days []HeatmapDay
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		dayInspections := inspections[day]
		dayEvents := generic[day]
		days = append(days, HeatmapDay{
			Day:         day,
			Inspections: dayInspections,
			Events:      dayEvents,
			Intensity:   intensity(dayInspections + dayEvents),
		})
	}
	return days
}

func ComputeMonthStats(days []HeatmapDay) MonthStats {
	var stats MonthStats
	for _, day := range days {
		stats.TotalInspections += day.Inspections
		if day.Inspections > 0 {
			stats.DaysWithInspections++
		}
		if day.Inspections > stats.MaxPerDay {
			stats.MaxPerDay = day.Inspections
		}
	}
	return stats
}

func intensity(total int) int {
	switch {
	case total > 8:
		return 5
	case total > 6:
		return 4
	case total > 4:
		return 3
	case total > 2:
		return 2
	case total > 0:
		return 1
	default:
		return 0
	}
}
