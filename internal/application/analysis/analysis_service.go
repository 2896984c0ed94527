package analysis

import (
	"context"

	"github.com/tuncanbit/pairscope/internal/domain/models"
)

type IAnalysisService interface {
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResponse, error)
}
