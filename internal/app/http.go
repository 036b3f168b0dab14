package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/gestaoimob/desocupacao/internal/config"
	v1 "github.com/gestaoimob/desocupacao/internal/delivery/http/v1"
	"github.com/gestaoimob/desocupacao/internal/documents"
	"github.com/gestaoimob/desocupacao/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	v1Handler := v1.New(
		globalLogger,
		services.NewProcessService(globalLogger, globalPostgresPool),
		services.NewReferenceService(globalLogger, globalPostgresPool),
		services.NewCalendarService(globalLogger, globalPostgresPool),
		services.NewHistoryService(globalLogger, globalPostgresPool),
		documents.NewBadgerStore(globalLogger, globalBadgerDB),
	)
	router = router.Group("/api/v1")

	processesRouter := router.Group("/processos")
	processesRouter.GET("", v1Handler.HandleGetProcesses)
	processesRouter.POST("", v1Handler.HandleCreateProcess)
	processesRouter.GET("/:id", v1Handler.HandleGetProcess)
	processesRouter.PATCH("/:id", v1Handler.HandleUpdateProcess)
	processesRouter.DELETE("/:id", v1Handler.HandleDeleteProcess)
	processesRouter.PATCH("/:id/status", v1Handler.HandleSetProcessStatus)
	processesRouter.GET("/:id/historico", v1Handler.HandleGetProcessHistory)
	processesRouter.GET("/:id/documentos", v1Handler.HandleGetDocuments)
	processesRouter.PUT("/:id/documentos", v1Handler.HandleSetDocuments)

	router.GET("/status", v1Handler.HandleGetStatuses)
	router.GET("/garantias", v1Handler.HandleGetGuaranteeTypes)
	router.GET("/users", v1Handler.HandleGetUsers)

	router.GET("/calendario", v1Handler.HandleGetCalendar)
	router.GET("/calendario/heatmap", v1Handler.HandleGetHeatmap)
	router.GET("/dashboard/metricas", v1Handler.HandleGetMetrics)
	router.GET("/timeline", v1Handler.HandleGetTimeline)
	router.GET("/documentos/estatisticas", v1Handler.HandleGetDocumentStats)
}
