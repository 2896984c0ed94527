package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/application/analysis"
	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/domain/models"
	"github.com/tuncanbit/pairscope/internal/server/middleware"
)

type DashboardHandler struct {
	analysisSvc analysis.IAnalysisService
	logger      zerolog.Logger
}

func NewDashboardHandler(analysisSvc analysis.IAnalysisService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		analysisSvc: analysisSvc,
		logger:      logger,
	}
}

func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Fetch analyses the pair named by the tokenAddress form field.
func (h *DashboardHandler) Fetch(c *gin.Context) {
	req := &models.AnalysisRequest{
		PairAddress:   c.PostForm("tokenAddress"),
		Authenticated: c.GetBool(middleware.ContextAuthenticated),
	}

	resp, err := h.analysisSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		status, message := classifyError(err)
		h.logger.Error().Err(err).Str("pair_address", req.PairAddress).Msg(message)
		c.JSON(status, domain.ErrorResponse{Error: message})
		return
	}

	c.JSON(http.StatusOK, domain.FetchResponse{Response: resp.HTML})
}

// classifyError maps pipeline failures to a status and client-facing message.
// Upstream and input failures are both reported as 400.
func classifyError(err error) (int, string) {
	var reqErr *domain.RequestError

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrMissingAddress):
		return http.StatusBadRequest, "Token address is missing"
	case errors.As(err, &reqErr):
		return http.StatusBadRequest, "API Request Error: " + reqErr.Error()
	default:
		return http.StatusBadRequest, "Processing Error: " + err.Error()
	}
}
