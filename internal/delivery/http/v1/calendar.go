package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/gestaoimob/desocupacao/internal/dashboard"
	"github.com/gestaoimob/desocupacao/internal/models"
)

type calendarEventResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Time     string           `json:"time"`
	Datetime string           `json:"datetime"`
	Type     string           `json:"tipo"`
	Process  *processResponse `json:"processo,omitempty"`
}

type calendarDayResponse struct {
	Day    string                  `json:"day"`
	Events []calendarEventResponse `json:"events"`
}

func newCalendarDayResponse(day dashboard.CalendarDay) calendarDayResponse {
	response := calendarDayResponse{
		Day:    day.Day.Format(time.DateOnly),
		Events: make([]calendarEventResponse, len(day.Events)),
	}
	for i, event := range day.Events {
		eventResponse := calendarEventResponse{
			ID:       event.ID,
			Name:     event.Name,
			Time:     event.Time,
			Datetime: event.Datetime,
			Type:     event.Type,
		}
		if event.Process != nil {
			process := newProcessResponse(event.Process)
			eventResponse.Process = &process
		}
		response.Events[i] = eventResponse
	}
	return response
}

// loadCalendarData fetches processes and calendar rows in parallel;
// the two collections are independent until the merge.
func (h *handlerImpl) loadCalendarData(c *gin.Context) ([]models.Process, []models.CalendarEvent, error) {
	var (
		processes []models.Process
		events    []models.CalendarEvent
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		processes, err = h.processes.GetProcesses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = h.calendar.GetEvents(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return processes, events, nil
}

func (h *handlerImpl) HandleGetCalendar(c *gin.Context) {
	processes, events, err := h.loadCalendarData(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to load calendar data")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	days := dashboard.BuildCalendar(processes, events, time.Now())
	h.logger.Debug().
		Int("days", len(days)).
		Msg("built calendar")

	response := make([]calendarDayResponse, len(days))
	for i, day := range days {
		response[i] = newCalendarDayResponse(day)
	}

	h.logger.Info().Msg("fetched calendar")
	c.JSON(http.StatusOK, response)
}

type heatmapDayResponse struct {
	Day         string `json:"day"`
	Inspections int    `json:"vistorias"`
	Events      int    `json:"eventos"`
	Intensity   int    `json:"intensity"`
}

type heatmapResponse struct {
	Month               string               `json:"mes"`
	Days                []heatmapDayResponse `json:"days"`
	TotalInspections    int                  `json:"total_vistorias"`
	DaysWithInspections int                  `json:"dias_com_vistorias"`
	MaxPerDay           int                  `json:"max_vistorias_dia"`
}

func (h *handlerImpl) HandleGetHeatmap(c *gin.Context) {
	// A malformed or missing mes parameter degrades to the current
	// month.
	month := time.Now()
	if value := c.Query("mes"); value != "" {
		parsed, err := time.ParseInLocation("2006-01", value, time.Local)
		if err == nil {
			month = parsed
		} else {
			h.logger.Warn().
				Str("mes", value).
				Msg("invalid month, using current")
		}
	}

	processes, events, err := h.loadCalendarData(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to load calendar data")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	days := dashboard.BuildHeatmap(processes, events, month)
	stats := dashboard.ComputeMonthStats(days)

	response := heatmapResponse{
		Month:               month.Format("2006-01"),
		Days:                make([]heatmapDayResponse, len(days)),
		TotalInspections:    stats.TotalInspections,
		DaysWithInspections: stats.DaysWithInspections,
		MaxPerDay:           stats.MaxPerDay,
	}
	for i, day := range days {
		response.Days[i] = heatmapDayResponse{
			Day:         day.Day.Format(time.DateOnly),
			Inspections: day.Inspections,
			Events:      day.Events,
			Intensity:   day.Intensity,
		}
	}

	c.JSON(http.StatusOK, response)
}
