package dashboard

import (
	"time"

	"github.com/gestaoimob/desocupacao/internal/models"
)

// dueSoonDays is the look-ahead window for contracts approaching their
// final vacate deadline.
const dueSoonDays = 7

type Metrics struct {
	Total     int
	DueToday  int
	DueSoon   int
	Overdue   int
	PerStatus map[StatusCategory]int
}

// ComputeMetrics reduces the current process snapshot into dashboard
// counters; nothing is cached between calls. Date comparisons are done
// at day granularity: a deadline equal to today is not overdue, and
// zero dates never match any date-based counter.
func ComputeMetrics(processes []models.Process, now time.Time) Metrics {
	today := DayStart(now)
	soon := today.AddDate(0, 0, dueSoonDays)

	metrics := Metrics{PerStatus: make(map[StatusCategory]int)}
	for _, process := range processes {
		metrics.Total++

		if category := ClassifyStatus(process.Status.Name); category != CategoryOther {
			metrics.PerStatus[category]++
		}

		if !process.Contract.InspectionDate.IsZero() &&
			DayStart(process.Contract.InspectionDate).Equal(today) {
			metrics.DueToday++
		}

		if process.Contract.FinalDeadline.IsZero() {
			continue
		}
		deadline := DayStart(process.Contract.FinalDeadline)
		if deadline.Before(today) {
			metrics.Overdue++
		} else if !deadline.After(soon) {
			metrics.DueSoon++
		}
	}
	return metrics
}
