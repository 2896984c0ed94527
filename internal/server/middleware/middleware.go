package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authservice "github.com/tuncanbit/pairscope/internal/application/auth"
)

// ContextAuthenticated is the gin context key holding the session flag.
const ContextAuthenticated = "authenticated"

type Middleware struct {
	AuthSvc    authservice.IAuthService
	cookieName string
	logger     zerolog.Logger
}

func NewMiddleware(AuthSvc authservice.IAuthService, cookieName string, logger zerolog.Logger) *Middleware {
	return &Middleware{
		AuthSvc:    AuthSvc,
		cookieName: cookieName,
		logger:     logger,
	}
}

func (m *Middleware) SetupMiddleware(router *gin.Engine) {
	router.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		m.logger.Info().
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status", param.StatusCode).
			Dur("latency", param.Latency).
			Str("client_ip", param.ClientIP).
			Str("user_agent", param.Request.UserAgent()).
			Msg("HTTP Request")
		return ""
	}))

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "same-origin")
		c.Next()
	})
}

// SessionMiddleware resolves the session token from the cookie or a bearer
// header and records the outcome. It never aborts the request.
func (m *Middleware) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated := false

		if tokenString := m.sessionToken(c); tokenString != "" {
			if _, err := m.AuthSvc.VerifyToken(c.Request.Context(), tokenString); err != nil {
				m.logger.Debug().Err(err).Msg("Rejected session token")
			} else {
				authenticated = true
			}
		}

		c.Set(ContextAuthenticated, authenticated)
		c.Next()
	}
}

// RequireLogin redirects browsers without a valid session to the login page.
func (m *Middleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextAuthenticated) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Middleware) sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
