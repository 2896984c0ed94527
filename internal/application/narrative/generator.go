package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/domain/interfaces"
	"github.com/tuncanbit/pairscope/internal/domain/models"
	"github.com/tuncanbit/pairscope/pkg/currency"
)

// SystemPrompt is the fixed scoring rubric sent with every analysis.
const SystemPrompt = `Analyze these crypto metrics and provide:
1. Key observations about the token's performance
2. Potential risks and red flags
3. Opportunities and positive indicators
4. A score from 1-100 (1 being very risky, 100 being very safe)

Important Note: The Market Cap values shown are derived from the Fully Diluted Value (FDV)
as direct market cap data is not available. This represents a theoretical maximum market cap
assuming all tokens are in circulation.

Use emojis for better readability.

Scoring Guidelines:
- Start with a base score of 50.
- Add 10-20 points for positive metrics (e.g., healthy ratios, strong volume).
- Subtract 5-15 points for negative metrics (e.g., poor ratios, low liquidity).
End your analysis with 'Overall Score: X/100' on a new line.`

const (
	lineBreak      = "<br>"
	paragraphBreak = "<br><br>"
	scoreMarker    = "Overall Score:"
)

var analysisReplacer = strings.NewReplacer(
	"1.", paragraphBreak+"1.",
	"2.", paragraphBreak+"2.",
	"3.", paragraphBreak+"3.",
	"4.", paragraphBreak+"4.",
	"5.", paragraphBreak+"5.",
	scoreMarker, paragraphBreak+scoreMarker,
	"\n", lineBreak,
)

type Generator struct {
	client   interfaces.NarrativeClient
	currency *currency.CurrencyUtils
	logger   zerolog.Logger
}

func NewGenerator(client interfaces.NarrativeClient, logger zerolog.Logger) *Generator {
	return &Generator{
		client:   client,
		currency: currency.NewCurrencyUtils(),
		logger:   logger,
	}
}

// Generate asks the narrative service to comment on the report and returns
// the answer as HTML-safe markup. Any failure is a *domain.ProcessingError.
func (g *Generator) Generate(ctx context.Context, report *models.Report) (string, error) {
	userPrompt, err := g.BuildUserPrompt(report)
	if err != nil {
		return "", &domain.ProcessingError{Stage: "narrative prompt", Err: err}
	}

	text, err := g.client.Complete(ctx, SystemPrompt, userPrompt)
	if err != nil {
		return "", &domain.ProcessingError{Stage: "narrative generation", Err: err}
	}

	return FormatAnalysis(text), nil
}

// BuildUserPrompt serialises the token name, metrics and ratios for the model.
func (g *Generator) BuildUserPrompt(report *models.Report) (string, error) {
	metrics := make(map[string]string, len(report.Metrics))
	for _, m := range report.Metrics {
		metrics[m.Key] = m.Value
	}

	ratios := make(map[string]interface{}, len(report.Ratios))
	for _, r := range report.Ratios {
		if !r.Available {
			ratios[r.Name] = models.NotAvailable
			continue
		}
		ratios[r.Name] = json.RawMessage(g.currency.FormatRatio(r.Value))
	}

	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metrics: %w", err)
	}
	ratiosJSON, err := json.Marshal(ratios)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ratios: %w", err)
	}

	name := report.TokenName
	if name == "" {
		name = models.NotAvailable
	}

	return fmt.Sprintf("Token: %s\nMetrics: %s\nRatios: %s", name, metricsJSON, ratiosJSON), nil
}

// FormatAnalysis escapes model output and breaks it up before numbered points
// and the closing score.
func FormatAnalysis(text string) string {
	return analysisReplacer.Replace(html.EscapeString(text))
}
