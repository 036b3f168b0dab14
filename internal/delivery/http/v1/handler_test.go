package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gestaoimob/desocupacao/internal/documents"
	"github.com/gestaoimob/desocupacao/internal/models"
	"github.com/gestaoimob/desocupacao/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProcessService struct {
	processes []models.Process
	process   *models.Process
	err       error
}

func (s *stubProcessService) GetProcesses(context.Context) ([]models.Process, error) {
	return s.processes, s.err
}

func (s *stubProcessService) GetProcessByID(context.Context, string) (*models.Process, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.process == nil {
		return nil, services.ErrProcessNotFound
	}
	return s.process, nil
}

func (s *stubProcessService) CreateProcess(context.Context, services.CreateProcessParams) (*models.Process, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.process, nil
}

func (s *stubProcessService) UpdateProcess(context.Context, services.UpdateProcessParams) (*models.Process, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.process == nil {
		return nil, services.ErrProcessNotFound
	}
	return s.process, nil
}

func (s *stubProcessService) UpdateProcessStatus(context.Context, services.UpdateProcessStatusParams) (*models.Process, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.process == nil {
		return nil, services.ErrProcessNotFound
	}
	return s.process, nil
}

func (s *stubProcessService) DeleteProcess(context.Context, string) error {
	return s.err
}

type stubReferenceService struct {
	statuses   []models.Status
	guarantees []models.GuaranteeType
	users      []models.User
	err        error
}

func (s *stubReferenceService) GetStatuses(context.Context) ([]models.Status, error) {
	return s.statuses, s.err
}

func (s *stubReferenceService) GetGuaranteeTypes(context.Context) ([]models.GuaranteeType, error) {
	return s.guarantees, s.err
}

func (s *stubReferenceService) GetUsers(context.Context) ([]models.User, error) {
	return s.users, s.err
}

type stubCalendarService struct {
	events []models.CalendarEvent
	err    error
}

func (s *stubCalendarService) GetEvents(context.Context) ([]models.CalendarEvent, error) {
	return s.events, s.err
}

type stubHistoryService struct {
	entries []models.HistoryEntry
	err     error
}

func (s *stubHistoryService) GetProcessHistory(context.Context, string) ([]models.HistoryEntry, error) {
	return s.entries, s.err
}

type stubDocumentStore struct {
	checklists map[string]documents.Checklist
	err        error
}

func (s *stubDocumentStore) Get(_ context.Context, processID string) (documents.Checklist, error) {
	if s.err != nil {
		return documents.Checklist{}, s.err
	}
	return s.checklists[processID], nil
}

func (s *stubDocumentStore) Set(_ context.Context, processID string, checklist documents.Checklist, _ string) error {
	if s.err != nil {
		return s.err
	}
	if s.checklists == nil {
		s.checklists = make(map[string]documents.Checklist)
	}
	s.checklists[processID] = checklist
	return nil
}

func (s *stubDocumentStore) All(context.Context) ([]documents.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	records := make([]documents.Record, 0, len(s.checklists))
	for processID, checklist := range s.checklists {
		records = append(records, documents.Record{ProcessID: processID, Checklist: checklist})
	}
	return records, nil
}

func (s *stubDocumentStore) Stats(ctx context.Context) (documents.Stats, error) {
	if s.err != nil {
		return documents.Stats{}, s.err
	}
	records, _ := s.All(ctx)
	stats := documents.Stats{Total: len(records)}
	for _, record := range records {
		switch record.Checklist.Delivered() {
		case 4:
			stats.AllDelivered++
		case 0:
			stats.NoneDelivered++
		default:
			stats.SomeDelivered++
		}
	}
	if stats.Total > 0 {
		stats.PercentComplete = float64(stats.AllDelivered) / float64(stats.Total) * 100
	}
	return stats, nil
}

type testDeps struct {
	processes  *stubProcessService
	references *stubReferenceService
	calendar   *stubCalendarService
	history    *stubHistoryService
	documents  *stubDocumentStore
}

func newTestRouter(deps testDeps) *gin.Engine {
	if deps.processes == nil {
		deps.processes = &stubProcessService{}
	}
	if deps.references == nil {
		deps.references = &stubReferenceService{}
	}
	if deps.calendar == nil {
		deps.calendar = &stubCalendarService{}
	}
	if deps.history == nil {
		deps.history = &stubHistoryService{}
	}
	if deps.documents == nil {
		deps.documents = &stubDocumentStore{}
	}

	handler := New(
		zerolog.Nop(),
		deps.processes,
		deps.references,
		deps.calendar,
		deps.history,
		deps.documents,
	)

	router := gin.New()
	group := router.Group("/api/v1")

	processesGroup := group.Group("/processos")
	processesGroup.GET("", handler.HandleGetProcesses)
	processesGroup.POST("", handler.HandleCreateProcess)
	processesGroup.GET("/:id", handler.HandleGetProcess)
	processesGroup.PATCH("/:id", handler.HandleUpdateProcess)
	processesGroup.DELETE("/:id", handler.HandleDeleteProcess)
	processesGroup.PATCH("/:id/status", handler.HandleSetProcessStatus)
	processesGroup.GET("/:id/historico", handler.HandleGetProcessHistory)
	processesGroup.GET("/:id/documentos", handler.HandleGetDocuments)
	processesGroup.PUT("/:id/documentos", handler.HandleSetDocuments)

	group.GET("/status", handler.HandleGetStatuses)
	group.GET("/garantias", handler.HandleGetGuaranteeTypes)
	group.GET("/users", handler.HandleGetUsers)

	group.GET("/calendario", handler.HandleGetCalendar)
	group.GET("/calendario/heatmap", handler.HandleGetHeatmap)
	group.GET("/dashboard/metricas", handler.HandleGetMetrics)
	group.GET("/timeline", handler.HandleGetTimeline)
	group.GET("/documentos/estatisticas", handler.HandleGetDocumentStats)

	return router
}
