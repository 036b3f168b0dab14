package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoimob/desocupacao/internal/models"
)

func TestHandleGetMetrics(t *testing.T) {
	today := time.Now()
	overdue := fixtureProcess("p1", "Vistoria Aprovada", "Maria Souza")
	overdue.Contract.FinalDeadline = today.AddDate(0, 0, -1)
	overdue.Contract.InspectionDate = today.AddDate(0, 0, -8)

	scheduled := fixtureProcess("p2", "Vistoria Agendada", "João Lima")
	scheduled.Contract.FinalDeadline = today.AddDate(0, 0, 3)
	scheduled.Contract.InspectionDate = today

	router := newTestRouter(testDeps{
		processes: &stubProcessService{processes: []models.Process{overdue, scheduled}},
	})

	rec := perform(router, http.MethodGet, "/api/v1/dashboard/metricas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response metricsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 1, response.DueToday)
	assert.Equal(t, 1, response.DueSoon)
	assert.Equal(t, 1, response.Overdue)
	assert.Equal(t, map[string]int{"aprovada": 1, "agendada": 1}, response.PerStatus)
}

func TestHandleGetTimeline(t *testing.T) {
	router := newTestRouter(testDeps{
		processes: &stubProcessService{processes: []models.Process{
			fixtureProcess("p1", "Vistoria Agendada", "Maria Souza"),
			fixtureProcess("p2", "Vistoria Aprovada", "João Lima"),
		}},
	})

	rec := perform(router, http.MethodGet, "/api/v1/timeline?filtro=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response timelineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total, "stats cover the whole collection, not the filtered view")
	assert.Equal(t, 1, response.Pending)
	assert.Equal(t, 1, response.Completed)
	require.Len(t, response.Groups, 1)
	require.Len(t, response.Groups[0].Processes, 1)
	assert.Equal(t, "p1", response.Groups[0].Processes[0].ID)
}

func TestHandleGetTimelineUnknownFilterFallsBackToAll(t *testing.T) {
	router := newTestRouter(testDeps{
		processes: &stubProcessService{processes: []models.Process{
			fixtureProcess("p1", "Vistoria Agendada", "Maria Souza"),
		}},
	})

	rec := perform(router, http.MethodGet, "/api/v1/timeline?filtro=bogus", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response timelineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Groups, 1)
	assert.Len(t, response.Groups[0].Processes, 1)
}

func TestHandleGetCalendar(t *testing.T) {
	eventDate := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.Local)
	router := newTestRouter(testDeps{
		processes: &stubProcessService{processes: []models.Process{
			fixtureProcess("p1", "Vistoria Agendada", "Maria Souza"),
		}},
		calendar: &stubCalendarService{events: []models.CalendarEvent{
			{ID: "ev-1", Title: "Reunião de equipe", Date: &eventDate, Time: "09:00"},
		}},
	})

	rec := perform(router, http.MethodGet, "/api/v1/calendario", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response []calendarDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "2026-03-12", response[0].Day)
	require.Len(t, response[0].Events, 2)

	types := map[string]bool{}
	for _, event := range response[0].Events {
		types[event.Type] = true
	}
	assert.True(t, types["vistoria"])
	assert.True(t, types["evento_calendario"])
}

func TestHandleGetCalendarServiceError(t *testing.T) {
	router := newTestRouter(testDeps{
		calendar: &stubCalendarService{err: assert.AnError},
	})

	rec := perform(router, http.MethodGet, "/api/v1/calendario", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleGetHeatmap(t *testing.T) {
	router := newTestRouter(testDeps{
		processes: &stubProcessService{processes: []models.Process{
			fixtureProcess("p1", "Vistoria Agendada", "Maria Souza"),
			fixtureProcess("p2", "Vistoria Agendada", "João Lima"),
		}},
	})

	rec := perform(router, http.MethodGet, "/api/v1/calendario/heatmap?mes=2026-03", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response heatmapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "2026-03", response.Month)
	require.Len(t, response.Days, 31)
	assert.Equal(t, 2, response.TotalInspections)
	assert.Equal(t, 1, response.DaysWithInspections)
	assert.Equal(t, 2, response.MaxPerDay)

	march12 := response.Days[11]
	assert.Equal(t, "2026-03-12", march12.Day)
	assert.Equal(t, 2, march12.Inspections)
	assert.Equal(t, 1, march12.Intensity)
}

func TestHandleGetHeatmapInvalidMonth(t *testing.T) {
	router := newTestRouter(testDeps{})

	rec := perform(router, http.MethodGet, "/api/v1/calendario/heatmap?mes=banana", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response heatmapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, time.Now().Format("2006-01"), response.Month)
}

func TestHandleGetStatuses(t *testing.T) {
	router := newTestRouter(testDeps{
		references: &stubReferenceService{statuses: []models.Status{
			{ID: "st-1", Name: "Notificação Extrajudicial", Color: "#ff0000", OrderIndex: 1},
			{ID: "st-2", Name: "Vistoria Agendada", Color: "#00ff00", OrderIndex: 2},
		}},
	})

	rec := perform(router, http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response []statusListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "Notificação Extrajudicial", response[0].Name)
	assert.Equal(t, 2, response[1].OrderIndex)
}
