package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/application/analysis"
	authservice "github.com/tuncanbit/pairscope/internal/application/auth"
	"github.com/tuncanbit/pairscope/internal/server/handlers"
	"github.com/tuncanbit/pairscope/pkg/config"
)

//go:embed web/templates/*.html
var webFS embed.FS

type Server struct {
	AnalysisSvc analysis.IAnalysisService
	AuthSvc     authservice.IAuthService
	Cfg         *config.Config
	Logger      zerolog.Logger
	Router      *gin.Engine
	httpServer  *http.Server
}

func New(cfg *config.Config, analysisSvc analysis.IAnalysisService, authSvc authservice.IAuthService, logger zerolog.Logger) (*Server, error) {
	if cfg.Server.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	pages, err := template.ParseFS(webFS, "web/templates/*.html")
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(pages)

	s := &Server{
		Cfg:         cfg,
		AnalysisSvc: analysisSvc,
		AuthSvc:     authSvc,
		Logger:      logger,
		Router:      router,
	}
	s.SetupRouter()

	return s, nil
}

func (s *Server) SetupRouter() {
	handler := handlers.New(
		s.AnalysisSvc,
		s.AuthSvc,
		s.Logger,
		s.Cfg,
	)
	handler.SetupHandlers(s.Router)
}

// Handler exposes the router for hosts that own the listener.
func (s *Server) Handler() http.Handler {
	return s.Router
}

func (s *Server) Start() {
	s.httpServer = &http.Server{
		Addr:         s.Cfg.Server.Host + ":" + s.Cfg.Server.Port,
		Handler:      s.Router,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	s.Logger.Info().Msgf("Starting server on %s", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-stopChan
	s.Logger.Info().Msg("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.Logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	s.Logger.Info().Msg("Server exited gracefully")
}
