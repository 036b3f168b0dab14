package dashboard

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gestaoimob/desocupacao/internal/models"
)

const (
	EventTypeInspection = "vistoria"
	EventTypeCalendar   = "evento_calendario"
)

const (
	untitledEventName = "Evento sem título"
	defaultEventTime  = "00:00"
)

// The hosted backend still carries legacy calendar rows that duplicate
// process-derived vistoria events. They are recognized by title: any of
// the keywords below, or an embedded "HH:MM" time pattern, marks a row
// as inspection-related so it is dropped before the merge.
var (
	inspectionKeywords = []string{"vistoria", "contrato", "desocupa", "inquilino"}
	timePattern        = regexp.MustCompile(`\d{2}:\d{2}`)
)

type Event struct {
	ID       string
	Name     string
	Time     string
	Datetime string
	Type     string
	Process  *models.Process
}

type CalendarDay struct {
	Day    time.Time
	Events []Event
}

// DayStart maps t to its calendar day, anchored at UTC midnight. The
// wall-clock date is kept as-is rather than converting the instant:
// DATE columns scan as UTC midnights while request clocks run in the
// server location, and both must land on the same day key.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsInspectionRelated reports whether a calendar title looks like a
// legacy duplicate of a vistoria event.
func IsInspectionRelated(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range inspectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return timePattern.MatchString(lower)
}

// BuildCalendar merges generic calendar rows with the vistoria events
// derived from processes into day buckets. Generic rows without a date
// are skipped and inspection-related ones are dropped; vistoria events
// are always included. A process with a missing inspection date is
// bucketed under now rather than failing aggregation. Each output day
// appears exactly once, ascending.
func BuildCalendar(processes []models.Process, events []models.CalendarEvent, now time.Time) []CalendarDay {
	buckets := make(map[time.Time][]Event)

	for _, event := range events {
		if event.Date == nil {
			continue
		}
		if IsInspectionRelated(event.Title) {
			continue
		}

		name := event.Title
		if name == "" {
			name = untitledEventName
		}
		eventTime := event.Time
		if eventTime == "" {
			eventTime = defaultEventTime
		}

		day := DayStart(*event.Date)
		buckets[day] = append(buckets[day], Event{
			ID:       eventID(event.ID),
			Name:     name,
			Time:     eventTime,
			Datetime: day.Format(time.DateOnly) + "T" + eventTime,
			Type:     EventTypeCalendar,
		})
	}

	for i := range processes {
		process := &processes[i]

		inspectionDate := process.Contract.InspectionDate
		if inspectionDate.IsZero() {
			inspectionDate = now
		}

		day := DayStart(inspectionDate)
		buckets[day] = append(buckets[day], Event{
			ID:       eventID(process.ID),
			Name:     "Vistoria - " + process.Contract.TenantName,
			Time:     process.Contract.InspectionTime,
			Datetime: day.Format(time.DateOnly) + "T" + process.Contract.InspectionTime,
			Type:     EventTypeInspection,
			Process:  process,
		})
	}

	days := make([]CalendarDay, 0, len(buckets))
	for day, bucket := range buckets {
		days = append(days, CalendarDay{Day: day, Events: bucket})
	}
	sortDays(days)
	return days
}

// eventID keeps the source id as the event identity; a fresh uuid only
// fills in for rows that arrive without one.
func eventID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func sortDays(days []CalendarDay) {
	slices.SortFunc(days, func(a, b CalendarDay) int {
		return a.Day.Compare(b.Day)
	})
}
