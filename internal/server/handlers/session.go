package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authservice "github.com/tuncanbit/pairscope/internal/application/auth"
	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/server/middleware"
	"github.com/tuncanbit/pairscope/pkg/config"
)

type SessionHandler struct {
	authSvc authservice.IAuthService
	cfg     config.AuthConfig
	logger  zerolog.Logger
}

func NewSessionHandler(authSvc authservice.IAuthService, cfg config.AuthConfig, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		authSvc: authSvc,
		cfg:     cfg,
		logger:  logger,
	}
}

func (h *SessionHandler) LoginPage(c *gin.Context) {
	if c.GetBool(middleware.ContextAuthenticated) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *SessionHandler) Login(c *gin.Context) {
	if c.GetBool(middleware.ContextAuthenticated) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, expiresAt, err := h.authSvc.Login(c.Request.Context(), c.PostForm("password"))
	if err != nil {
		status := http.StatusInternalServerError
		message := "Login is unavailable"
		if errors.Is(err, domain.ErrInvalidPassword) {
			status = http.StatusUnauthorized
			message = "Invalid password"
		}
		c.HTML(status, "login.html", gin.H{"error": message})
		return
	}

	h.setSessionCookie(c, token, int(time.Until(expiresAt).Seconds()))
	c.Redirect(http.StatusFound, "/")
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/login")
}

func (h *SessionHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, value, maxAge, "/", "", h.cfg.SecureCookie, true)
}
