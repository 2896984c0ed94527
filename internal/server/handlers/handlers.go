package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/application/analysis"
	authservice "github.com/tuncanbit/pairscope/internal/application/auth"
	"github.com/tuncanbit/pairscope/internal/server/middleware"
	"github.com/tuncanbit/pairscope/pkg/config"
)

type Handlers struct {
	AnalysisSvc analysis.IAnalysisService
	AuthSvc     authservice.IAuthService
	Logger      zerolog.Logger
	Config      *config.Config
}

func New(analysisSvc analysis.IAnalysisService, authSvc authservice.IAuthService, logger zerolog.Logger, config *config.Config) *Handlers {
	return &Handlers{
		AnalysisSvc: analysisSvc,
		AuthSvc:     authSvc,
		Logger:      logger,
		Config:      config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	mw := middleware.NewMiddleware(h.AuthSvc, h.Config.Auth.CookieName, h.Logger)
	mw.SetupMiddleware(router)

	healthHandler := NewHealthHandler()
	sessionHandler := NewSessionHandler(h.AuthSvc, h.Config.Auth, h.Logger)
	dashboardHandler := NewDashboardHandler(h.AnalysisSvc, h.Logger)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	app := router.Group("/", mw.SessionMiddleware())
	{
		app.GET("/login", sessionHandler.LoginPage)
		app.POST("/login", sessionHandler.Login)
		app.GET("/logout", sessionHandler.Logout)

		app.GET("/", mw.RequireLogin(), dashboardHandler.Index)
		app.POST("/fetch", dashboardHandler.Fetch)
	}
}
