package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestaoimob/desocupacao/internal/documents"
)

type documentsResponse struct {
	ProcessID string              `json:"processo_id"`
	Status    documents.Checklist `json:"status"`
}

func (h *handlerImpl) HandleGetDocuments(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	checklist, err := h.documents.Get(c, processID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to read document checklist")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, documentsResponse{
		ProcessID: processID,
		Status:    checklist,
	})
}

type setDocumentsRequest struct {
	Status    documents.Checklist `json:"status"`
	UpdatedBy string              `json:"updated_by"`
}

func (h *handlerImpl) HandleSetDocuments(c *gin.Context) {
	processID := c.Param("id")
	if processID == "" {
		h.logger.Error().Msg("no process id provided")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var req setDocumentsRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	err = h.documents.Set(c, processID, req.Status, req.UpdatedBy)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to write document checklist")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().Msg("updated document checklist")
	c.JSON(http.StatusOK, documentsResponse{
		ProcessID: processID,
		Status:    req.Status,
	})
}

type documentStatsResponse struct {
	Total           int     `json:"total_processos"`
	AllDelivered    int     `json:"processos_com_todos_documentos"`
	SomeDelivered   int     `json:"processos_com_alguns_documentos"`
	NoneDelivered   int     `json:"processos_sem_documentos"`
	PercentComplete float64 `json:"percentual_completo"`
}

func (h *handlerImpl) HandleGetDocumentStats(c *gin.Context) {
	stats, err := h.documents.Stats(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to compute document statistics")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, documentStatsResponse{
		Total:           stats.Total,
		AllDelivered:    stats.AllDelivered,
		SomeDelivered:   stats.SomeDelivered,
		NoneDelivered:   stats.NoneDelivered,
		PercentComplete: stats.PercentComplete,
	})
}
