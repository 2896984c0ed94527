package models

import "time"

type Metric struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Ratio is a derived diagnostic. Value is meaningful only when Available.
type Ratio struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Available bool    `json:"available"`
	Healthy   bool    `json:"healthy"`
}

type Report struct {
	TokenName string   `json:"token_name"`
	Metrics   []Metric `json:"metrics"`
	Ratios    []Ratio  `json:"ratios"`
	Analysis  string   `json:"analysis"`
}

// MetricValue looks up a metric by key.
func (r *Report) MetricValue(key string) (string, bool) {
	for _, m := range r.Metrics {
		if m.Key == key {
			return m.Value, true
		}
	}
	return "", false
}

func (r *Report) Ratio(name string) (Ratio, bool) {
	for _, ratio := range r.Ratios {
		if ratio.Name == name {
			return ratio, true
		}
	}
	return Ratio{}, false
}

type AnalysisRequest struct {
	PairAddress   string
	Authenticated bool
}

type AnalysisResponse struct {
	RequestID      string        `json:"request_id"`
	HTML           string        `json:"html"`
	Report         *Report       `json:"report"`
	ProcessingTime time.Duration `json:"processing_time"`
}
