package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestaoimob/desocupacao/internal/dashboard"
)

type metricsResponse struct {
	Total     int            `json:"total_processos"`
	DueToday  int            `json:"vistorias_hoje"`
	DueSoon   int            `json:"vencendo_em_7_dias"`
	Overdue   int            `json:"prazo_vencido"`
	PerStatus map[string]int `json:"por_status"`
}

func (h *handlerImpl) HandleGetMetrics(c *gin.Context) {
	processes, err := h.processes.GetProcesses(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch processes")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	metrics := dashboard.ComputeMetrics(processes, time.Now())

	response := metricsResponse{
		Total:     metrics.Total,
		DueToday:  metrics.DueToday,
		DueSoon:   metrics.DueSoon,
		Overdue:   metrics.Overdue,
		PerStatus: make(map[string]int, len(metrics.PerStatus)),
	}
	for category, count := range metrics.PerStatus {
		response.PerStatus[string(category)] = count
	}

	h.logger.Info().Msg("computed dashboard metrics")
	c.JSON(http.StatusOK, response)
}

type timelineGroupResponse struct {
	Day       string            `json:"day"`
	Processes []processResponse `json:"processos"`
}

type timelineResponse struct {
	Total     int                     `json:"total"`
	Pending   int                     `json:"pendentes"`
	Completed int                     `json:"concluidas"`
	Groups    []timelineGroupResponse `json:"groups"`
}

func (h *handlerImpl) HandleGetTimeline(c *gin.Context) {
	mode := dashboard.TimelineMode(c.DefaultQuery("filtro", string(dashboard.TimelineAll)))
	switch mode {
	case dashboard.TimelineAll, dashboard.TimelinePending, dashboard.TimelineCompleted:
	default:
		h.logger.Warn().
			Str("filtro", string(mode)).
			Msg("unknown timeline filter, using all")
		mode = dashboard.TimelineAll
	}

	processes, err := h.processes.GetProcesses(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch processes")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	groups := dashboard.BuildTimeline(processes, mode, time.Now())
	stats := dashboard.ComputeTimelineStats(processes)

	response := timelineResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Completed: stats.Completed,
		Groups:    make([]timelineGroupResponse, len(groups)),
	}
	for i, group := range groups {
		groupResponse := timelineGroupResponse{
			Day:       group.Day.Format(time.DateOnly),
			Processes: make([]processResponse, len(group.Processes)),
		}
		for j := range group.Processes {
			groupResponse.Processes[j] = newProcessResponse(&group.Processes[j])
		}
		response.Groups[i] = groupResponse
	}

	c.JSON(http.StatusOK, response)
}
