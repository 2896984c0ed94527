package presenter

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/tuncanbit/pairscope/internal/domain"
	"github.com/tuncanbit/pairscope/internal/domain/models"
	"github.com/tuncanbit/pairscope/pkg/currency"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	flagHealthy   = "✅"
	flagUnhealthy = "❌"
)

type ratioView struct {
	Name    string
	Display string
	Class   string
	Flag    string
}

type reportView struct {
	Metrics  []models.Metric
	Ratios   []ratioView
	Analysis template.HTML
}

type Presenter struct {
	tmpl     *template.Template
	currency *currency.CurrencyUtils
}

func New() (*Presenter, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Presenter{
		tmpl:     tmpl,
		currency: currency.NewCurrencyUtils(),
	}, nil
}

// Render assembles the metrics, ratios and analysis fragments. Report.Analysis
// must already be HTML-safe.
func (p *Presenter) Render(report *models.Report) (string, error) {
	view := reportView{
		Metrics:  report.Metrics,
		Ratios:   make([]ratioView, 0, len(report.Ratios)),
		Analysis: template.HTML(report.Analysis),
	}

	for _, r := range report.Ratios {
		rv := ratioView{
			Name:    r.Name,
			Display: models.NotAvailable,
			Class:   "red",
			Flag:    flagUnhealthy,
		}
		if r.Available {
			rv.Display = p.currency.FormatRatio(r.Value)
		}
		if r.Healthy {
			rv.Class = "green"
			rv.Flag = flagHealthy
		}
		view.Ratios = append(view.Ratios, rv)
	}

	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, "report", view); err != nil {
		return "", &domain.ProcessingError{Stage: "render", Err: err}
	}

	return buf.String(), nil
}
