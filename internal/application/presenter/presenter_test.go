package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncanbit/pairscope/internal/domain/models"
)

func TestPresenter_Render(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	report := &models.Report{
		TokenName: "Pair Token",
		Metrics: []models.Metric{
			{Key: "name", Label: "Name", Value: "<b>Pair</b> Token"},
			{Key: "price", Label: "Price", Value: "$0.0001234"},
		},
		Ratios: []models.Ratio{
			{Name: "Liquidity to Market Cap", Value: 17, Available: true, Healthy: true},
			{Name: "Buy/Sell Ratio", Value: 2, Available: true, Healthy: false},
			{Name: "Volume vs Liquidity", Available: false},
		},
		Analysis: "Fine.<br><br>Overall Score: 55/100",
	}

	out, err := p.Render(report)
	require.NoError(t, err)

	assert.Contains(t, out, "📈 Basic Metrics")
	assert.Contains(t, out, "🔍 Key Ratios")
	assert.Contains(t, out, "🤖 AI Analysis")
	assert.Contains(t, out, "Market Cap is derived from Fully Diluted Value (FDV)")

	assert.Contains(t, out, "&lt;b&gt;Pair&lt;/b&gt; Token")
	assert.Contains(t, out, "$0.0001234")

	assert.Contains(t, out, `<span class="flag green">✅</span>`)
	assert.Contains(t, out, `<span class="flag red">❌</span>`)
	assert.Contains(t, out, "17.0")
	assert.Contains(t, out, "2.0")
	assert.Equal(t, 2, strings.Count(out, `class="flag red"`))

	assert.Contains(t, out, `<div class="ai-response">Fine.<br><br>Overall Score: 55/100</div>`)

	metricsAt := strings.Index(out, "Basic Metrics")
	ratiosAt := strings.Index(out, "Key Ratios")
	analysisAt := strings.Index(out, "AI Analysis")
	assert.True(t, metricsAt < ratiosAt && ratiosAt < analysisAt)
}

func TestPresenter_RenderEmptyReport(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	out, err := p.Render(&models.Report{})
	require.NoError(t, err)
	assert.Contains(t, out, "metric-grid")
}
