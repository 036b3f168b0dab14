package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestaoimob/desocupacao/internal/dashboard"
	"github.com/gestaoimob/desocupacao/internal/models"
	"github.com/gestaoimob/desocupacao/internal/services"
)

type statusResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type contractResponse struct {
	TenantName       string `json:"nome_inquilino"`
	Address          string `json:"endereco"`
	Guarantee        string `json:"garantia"`
	NotificationDate string `json:"data_notificacao"`
	FinalDeadline    string `json:"data_final_desocupacao"`
	InspectionDate   string `json:"data_vistoria"`
	InspectionTime   string `json:"horario_vistoria"`
}

type assigneeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

type processResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	StartAt         time.Time         `json:"start_at"`
	EndAt           time.Time         `json:"end_at"`
	Status          statusResponse    `json:"status"`
	Contract        contractResponse  `json:"contrato"`
	Assignee        *assigneeResponse `json:"responsavel,omitempty"`
	Notes           string            `json:"observacoes,omitempty"`
	InspectionNotes string            `json:"notas_vistoria,omitempty"`
	CourtCaseNumber string            `json:"numero_processo_judicial,omitempty"`
	CreatedBy       string            `json:"created_by"`
	UpdatedBy       string            `json:"updated_by,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

func newProcessResponse(process *models.Process) processResponse {
	response := processResponse{
		ID:      process.ID,
		Name:    process.Name,
		StartAt: process.StartAt,
		EndAt:   process.EndAt,
		Status: statusResponse{
			ID:    process.Status.ID,
			Name:  process.Status.Name,
			Color: process.Status.Color,
		},
		Contract: contractResponse{
			TenantName:       process.Contract.TenantName,
			Address:          process.Contract.Address,
			Guarantee:        process.Contract.Guarantee,
			NotificationDate: formatDate(process.Contract.NotificationDate),
			FinalDeadline:    formatDate(process.Contract.FinalDeadline),
			InspectionDate:   formatDate(process.Contract.InspectionDate),
			InspectionTime:   process.Contract.InspectionTime,
		},
		Notes:           process.Notes,
		InspectionNotes: process.InspectionNotes,
		CourtCaseNumber: process.CourtCaseNumber,
		CreatedBy:       process.CreatedBy,
		UpdatedBy:       process.UpdatedBy,
		CreatedAt:       process.CreatedAt,
	}
	if process.Assignee != nil {
		response.Assignee = &assigneeResponse{
			ID:       process.Assignee.ID,
			Name:     process.Assignee.Name,
			ImageURL: process.Assignee.ImageURL,
		}
	}
	if !process.UpdatedAt.IsZero() {
		updatedAt := process.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

// parseDateSafe turns a "YYYY-MM-DD" value into a local day-start.
// Malformed dates degrade to today instead of failing, since
// date-bucketing downstream must never fail.
func parseDateSafe(value string) time.Time {
	parsed, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return dashboard.DayStart(time.Now())
	}
	return parsed
}

type getProcessesResponse struct {
	Total     int               `json:"total"`
	Count     int               `json:"count"`
	Processes []processResponse `json:"processos"`
}

func (h *handlerImpl) HandleGetProcesses(c *gin.Context) {
	filter := dashboard.Filter{
		Search:     c.Query("busca"),
		Statuses:   c.QueryArray("status"),
		Guarantees: c.QueryArray("garantia"),
		Assignees:  c.QueryArray("responsavel"),
	}

	processes, err := h.processes.GetProcesses(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch processes")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	filtered := processes
	if !filter.IsEmpty() {
		filtered = dashboard.Apply(processes, filter)
	}
	h.logger.Debug().
		Int("total", len(processes)).
		Int("filtered", len(filtered)).
		Msg("filtered processes")

	response := getProcessesResponse{
		Total:     len(processes),
		Count:     len(filtered),
		Processes: make([]processResponse, len(filtered)),
	}
	for i := range filtered {
		response.Processes[i] = newProcessResponse(&filtered[i])
	}

	h.logger.Info().Msg("fetched processes")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetProcess(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	process, err := h.processes.GetProcessByID(c, processID)
	if err != nil {
		if errors.Is(err, services.ErrProcessNotFound) {
			abort(c, newNotFoundError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to fetch process")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newProcessResponse(process))
}

type createProcessRequest struct {
	Name             string     `json:"name" binding:"required,max=255"`
	TenantName       string     `json:"nome_inquilino" binding:"required"`
	Address          string     `json:"endereco" binding:"required"`
	GuaranteeTypeID  string     `json:"garantia_type_id" binding:"required"`
	StatusID         string     `json:"status_id" binding:"required"`
	AssigneeID       string     `json:"responsavel_id"`
	CreatedByID      string     `json:"created_by_id" binding:"required"`
	NotificationDate string     `json:"data_notificacao" binding:"required"`
	FinalDeadline    string     `json:"data_final_desocupacao" binding:"required"`
	InspectionDate   string     `json:"data_vistoria" binding:"required"`
	InspectionTime   string     `json:"horario_vistoria" binding:"required"`
	StartAt          *time.Time `json:"start_at,omitempty"`
	EndAt            *time.Time `json:"end_at,omitempty"`
	Notes            string     `json:"observacoes"`
}

func (h *handlerImpl) HandleCreateProcess(c *gin.Context) {
	var req createProcessRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	now := time.Now()
	params := services.CreateProcessParams{
		Name:             req.Name,
		TenantName:       req.TenantName,
		Address:          req.Address,
		GuaranteeTypeID:  req.GuaranteeTypeID,
		StatusID:         req.StatusID,
		AssigneeID:       req.AssigneeID,
		CreatedByID:      req.CreatedByID,
		NotificationDate: parseDateSafe(req.NotificationDate),
		FinalDeadline:    parseDateSafe(req.FinalDeadline),
		InspectionDate:   parseDateSafe(req.InspectionDate),
		InspectionTime:   req.InspectionTime,
		StartAt:          now,
		EndAt:            now.AddDate(0, 2, 0),
		Notes:            req.Notes,
	}
	if req.StartAt != nil {
		params.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		params.EndAt = *req.EndAt
	}

	process, err := h.processes.CreateProcess(c, params)
	if err != nil {
		if errors.Is(err, services.ErrReferenceNotFound) {
			abort(c, newUnprocessableError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to create process")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newProcessResponse(process))
}

type updateProcessRequest struct {
	Name             *string `json:"name,omitempty"`
	TenantName       *string `json:"nome_inquilino,omitempty"`
	Address          *string `json:"endereco,omitempty"`
	GuaranteeTypeID  *string `json:"garantia_type_id,omitempty"`
	AssigneeID       *string `json:"responsavel_id,omitempty"`
	UpdatedByID      string  `json:"updated_by_id"`
	NotificationDate *string `json:"data_notificacao,omitempty"`
	FinalDeadline    *string `json:"data_final_desocupacao,omitempty"`
	InspectionDate   *string `json:"data_vistoria,omitempty"`
	InspectionTime   *string `json:"horario_vistoria,omitempty"`
	Notes            *string `json:"observacoes,omitempty"`
	InspectionNotes  *string `json:"notas_vistoria,omitempty"`
}

func (h *handlerImpl) HandleUpdateProcess(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var req updateProcessRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.UpdateProcessParams{
		ID:              processID,
		UpdatedByID:     req.UpdatedByID,
		Name:            req.Name,
		TenantName:      req.TenantName,
		Address:         req.Address,
		GuaranteeTypeID: req.GuaranteeTypeID,
		AssigneeID:      req.AssigneeID,
		InspectionTime:  req.InspectionTime,
		Notes:           req.Notes,
		InspectionNotes: req.InspectionNotes,
	}
	if req.NotificationDate != nil {
		date := parseDateSafe(*req.NotificationDate)
		params.NotificationDate = &date
	}
	if req.FinalDeadline != nil {
		date := parseDateSafe(*req.FinalDeadline)
		params.FinalDeadline = &date
	}
	if req.InspectionDate != nil {
		date := parseDateSafe(*req.InspectionDate)
		params.InspectionDate = &date
	}

	process, err := h.processes.UpdateProcess(c, params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProcessNotFound):
			abort(c, newNotFoundError(err.Error()))
		case errors.Is(err, services.ErrReferenceNotFound):
			abort(c, newUnprocessableError(err.Error()))
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to update process")
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, newProcessResponse(process))
}

func (h *handlerImpl) HandleSetProcessStatus(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	statusID := c.Query("status_id")
	if statusID == "" {
		h.logger.Error().Msg("no status id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	process, err := h.processes.UpdateProcessStatus(c, services.UpdateProcessStatusParams{
		ID:          processID,
		StatusID:    statusID,
		UpdatedByID: c.Query("user_id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProcessNotFound):
			abort(c, newNotFoundError(err.Error()))
		case errors.Is(err, services.ErrReferenceNotFound):
			abort(c, newUnprocessableError(err.Error()))
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to update process status")
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info().Msg("updated process status")
	c.JSON(http.StatusOK, newProcessResponse(process))
}

func (h *handlerImpl) HandleDeleteProcess(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	err := h.processes.DeleteProcess(c, processID)
	if err != nil {
		if errors.Is(err, services.ErrProcessNotFound) {
			abort(c, newNotFoundError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to delete process")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().Msg("deleted process")
	c.Status(http.StatusNoContent)
}

type historyEntryResponse struct {
	ID          string    `json:"id"`
	ProcessID   string    `json:"processo_id"`
	Action      string    `json:"acao"`
	OldStatusID string    `json:"status_anterior_id,omitempty"`
	NewStatusID string    `json:"status_novo_id,omitempty"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *handlerImpl) HandleGetProcessHistory(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	entries, err := h.history.GetProcessHistory(c, processID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch process history")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	response := make([]historyEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = historyEntryResponse{
			ID:          entry.ID,
			ProcessID:   entry.ProcessID,
			Action:      entry.Action,
			OldStatusID: entry.OldStatusID,
			NewStatusID: entry.NewStatusID,
			UserID:      entry.UserID,
			CreatedAt:   entry.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, response)
}
