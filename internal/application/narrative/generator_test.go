package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/domain/models"
)

type stubClient struct {
	text   string
	err    error
	system string
	user   string
}

func (s *stubClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.system = systemPrompt
	s.user = userPrompt
	return s.text, s.err
}

func testReport() *models.Report {
	return &models.Report{
		TokenName: "Pair Token",
		Metrics: []models.Metric{
			{Key: "name", Label: "Name", Value: "Pair Token"},
			{Key: "price", Label: "Price", Value: "$0.0001234"},
		},
		Ratios: []models.Ratio{
			{Name: "Buy/Sell Ratio", Value: 2, Available: true},
			{Name: "Liquidity to Market Cap", Available: false},
		},
	}
}

func TestFormatAnalysis(t *testing.T) {
	in := "Summary\n1. Volume is strong\n2. Liquidity is thin\nOverall Score: 62/100"
	want := "Summary<br><br><br>1. Volume is strong<br><br><br>2. Liquidity is thin<br><br><br>Overall Score: 62/100"
	assert.Equal(t, want, FormatAnalysis(in))
}

func TestFormatAnalysis_EscapesMarkup(t *testing.T) {
	out := FormatAnalysis(`<script>alert("x")</script>`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestFormatAnalysis_AllMarkers(t *testing.T) {
	out := FormatAnalysis("3. a 4. b 5. c")
	assert.Equal(t, "<br><br>3. a <br><br>4. b <br><br>5. c", out)
}

func TestGenerator_BuildUserPrompt(t *testing.T) {
	g := NewGenerator(&stubClient{}, zerolog.Nop())

	prompt, err := g.BuildUserPrompt(testReport())
	require.NoError(t, err)

	lines := strings.Split(prompt, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Token: Pair Token", lines[0])

	var metrics map[string]string
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[1], "Metrics: ")), &metrics))
	assert.Equal(t, "$0.0001234", metrics["price"])

	var ratios map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[2], "Ratios: ")), &ratios))
	assert.Equal(t, 2.0, ratios["Buy/Sell Ratio"])
	assert.Equal(t, models.NotAvailable, ratios["Liquidity to Market Cap"])
}

func TestGenerator_Generate(t *testing.T) {
	client := &stubClient{text: "Fine.\nOverall Score: 55/100"}
	g := NewGenerator(client, zerolog.Nop())

	out, err := g.Generate(context.Background(), testReport())
	require.NoError(t, err)
	assert.Equal(t, "Fine.<br><br><br>Overall Score: 55/100", out)
	assert.Equal(t, SystemPrompt, client.system)
	assert.True(t, strings.HasPrefix(client.user, "Token: Pair Token\n"))
}

func TestGenerator_FailureIsProcessingError(t *testing.T) {
	cause := errors.New("rate limited")
	g := NewGenerator(&stubClient{err: cause}, zerolog.Nop())

	_, err := g.Generate(context.Background(), testReport())
	require.Error(t, err)

	var procErr *domain.ProcessingError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "narrative generation", procErr.Stage)
	assert.ErrorIs(t, err, cause)

	var reqErr *domain.RequestError
	assert.False(t, errors.As(err, &reqErr))
}
