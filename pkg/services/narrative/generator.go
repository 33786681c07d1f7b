package narrative

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
)

// Generator produces free narrative text for a structured report. The call
// is best-effort: the compiler persists the report with or without its
// output and never retries.
type Generator interface {
	GenerateNarrative(ctx context.Context, req Request) (string, error)
	// SourceName returns a short provider label for logs (e.g. "ChatGPT").
	SourceName() string
}

// Request is the single prompt payload sent to the text-generation
// collaborator: brand context plus the report's metrics and prior-period
// deltas, serialized as JSON.
type Request struct {
	BrandContext string
	Cadence      domain.Cadence
	Metrics      map[string]float64
	Deltas       map[string]domain.Delta
}

// BuildPrompt compiles the request into the user prompt string.
func BuildPrompt(req Request) (string, error) {
	metricsJSON, err := json.Marshal(req.Metrics)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}
	deltasJSON, err := json.Marshal(req.Deltas)
	if err != nil {
		return "", fmt.Errorf("marshal deltas: %w", err)
	}
	return fmt.Sprintf(
		"Brand context:\n%s\n\nCadence: %s\n\nPeriod metrics (JSON):\n%s\n\nPrior-period deltas (JSON):\n%s\n",
		req.BrandContext, req.Cadence, metricsJSON, deltasJSON,
	), nil
}
