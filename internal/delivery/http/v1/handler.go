package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gestaoimob/desocupacao/internal/documents"
	"github.com/gestaoimob/desocupacao/internal/services"
)

type Handler interface {
	HandleGetProcesses(c *gin.Context)
	HandleGetProcess(c *gin.Context)
	HandleCreateProcess(c *gin.Context)
	HandleUpdateProcess(c *gin.Context)
	HandleSetProcessStatus(c *gin.Context)
	HandleDeleteProcess(c *gin.Context)
	HandleGetProcessHistory(c *gin.Context)

	HandleGetStatuses(c *gin.Context)
	HandleGetGuaranteeTypes(c *gin.Context)
	HandleGetUsers(c *gin.Context)

	HandleGetCalendar(c *gin.Context)
	HandleGetHeatmap(c *gin.Context)
	HandleGetMetrics(c *gin.Context)
	HandleGetTimeline(c *gin.Context)

	HandleGetDocuments(c *gin.Context)
	HandleSetDocuments(c *gin.Context)
	HandleGetDocumentStats(c *gin.Context)
}

type handlerImpl struct {
	logger     zerolog.Logger
	processes  services.ProcessService
	references services.ReferenceService
	calendar   services.CalendarService
	history    services.HistoryService
	documents  documents.Store
}

func New(
	logger zerolog.Logger,
	processService services.ProcessService,
	referenceService services.ReferenceService,
	calendarService services.CalendarService,
	historyService services.HistoryService,
	documentStore documents.Store,
) Handler {
	return &handlerImpl{
		logger:     logger,
		processes:  processService,
		references: referenceService,
		calendar:   calendarService,
		history:    historyService,
		documents:  documentStore,
	}
}
