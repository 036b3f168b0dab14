package dashboard

import (
	"slices"
	"strings"
	"time"

	"github.com/gestaoimob/desocupacao/internal/models"
)

type TimelineMode string

const (
	TimelineAll       TimelineMode = "all"
	TimelinePending   TimelineMode = "pending"
	TimelineCompleted TimelineMode = "completed"
)

type TimelineGroup struct {
	Day       time.Time
	Processes []models.Process
}

type TimelineStats struct {
	Total     int
	Pending   int
	Completed int
}

func isPending(category StatusCategory) bool {
	return category == CategoryNotification || category == CategoryScheduled
}

func isCompleted(category StatusCategory) bool {
	return category == CategoryApproved || category == CategoryRejected
}

// BuildTimeline groups processes by inspection day, ascending, with the
// processes of each day ordered by inspection time. The pending and
// completed modes keep only the matching status categories. Missing
// inspection dates fall under now, same as the calendar.
func BuildTimeline(processes []models.Process, mode TimelineMode, now time.Time) []TimelineGroup {
	buckets := make(map[time.Time][]models.Process)
	for _, process := range processes {
		category := ClassifyStatus(process.Status.Name)
		if mode == TimelinePending && !isPending(category) {
			continue
		}
		if mode == TimelineCompleted && !isCompleted(category) {
			continue
		}

		inspectionDate := process.Contract.InspectionDate
		if inspectionDate.IsZero() {
			inspectionDate = now
		}

		day := DayStart(inspectionDate)
		buckets[day] = append(buckets[day], process)
	}

	groups := make([]TimelineGroup, 0, len(buckets))
	for day, bucket := range buckets {
		slices.SortStableFunc(bucket, func(a, b models.Process) int {
			return strings.Compare(a.Contract.InspectionTime, b.Contract.InspectionTime)
		})
		groups = append(groups, TimelineGroup{Day: day, Processes: bucket})
	}
	slices.SortFunc(groups, func(a, b TimelineGroup) int {
		return a.Day.Compare(b.Day)
	})
	return groups
}

func ComputeTimelineStats(processes []models.Process) TimelineStats {
	stats := TimelineStats{Total: len(processes)}
	for _, process := range processes {
		category := ClassifyStatus(process.Status.Name)
		if isPending(category) {
			stats.Pending++
		} else if isCompleted(category) {
			stats.Completed++
		}
	}
	return stats
}
