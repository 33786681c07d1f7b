package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"github.com/mk-tools/brand-atlas/pkg/services/compare"
	"github.com/mk-tools/brand-atlas/pkg/services/goal"
	"github.com/mk-tools/brand-atlas/pkg/services/metrics"
	"github.com/mk-tools/brand-atlas/pkg/services/narrative"
	"github.com/mk-tools/brand-atlas/pkg/services/period"
	"github.com/mk-tools/brand-atlas/pkg/services/section"
)

// Store persists compiled reports and serves the previous snapshot of the
// same cadence for comparison. GetLatest returns (nil, nil) when the entity
// has no prior report at that cadence.
type Store interface {
	Save(ctx context.Context, r *domain.Report) error
	GetLatest(ctx context.Context, entityID string, cadence domain.Cadence) (*domain.Report, error)
}

// ContractSource resolves the set of metric domains an entity has access to.
type ContractSource interface {
	GetContractedDomains(ctx context.Context, entityID string) ([]domain.Domain, error)
}

// CompileRequest describes one compile invocation.
type CompileRequest struct {
	EntityID    string
	Cadence     domain.Cadence
	CustomStart *time.Time
	CustomEnd   *time.Time

	// BrandContext is free text about the brand, forwarded to the narrative
	// collaborator when enrichment is requested.
	BrandContext string
	// WithNarrative opts a structured-cadence report into AI enrichment.
	// The weekly check-in digest is always rendered, regardless of this flag.
	WithNarrative bool
}

// Compiler turns raw activity into a persisted, comparable report.
type Compiler struct {
	metrics   metrics.Controller
	reports   Store
	contracts ContractSource
	generator narrative.Generator

	narrativeTimeout time.Duration
	now              func() time.Time
}

type Option func(*Compiler)

// WithGenerator attaches the optional narrative collaborator.
func WithGenerator(g narrative.Generator, timeout time.Duration) Option {
	return func(c *Compiler) {
		c.generator = g
		c.narrativeTimeout = timeout
	}
}

// WithClock overrides the compiler's clock; tests use this.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.now = now
	}
}

func NewCompiler(m metrics.Controller, reports Store, contracts ContractSource, opts ...Option) *Compiler {
	c := &Compiler{
		metrics:          m,
		reports:          reports,
		contracts:        contracts,
		narrativeTimeout: 30 * time.Second,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile runs the full pipeline: resolve period, aggregate contracted
// domains, diff against the last snapshot of the same cadence, build
// sections, classify health, render or request narrative, persist. Only a
// ConfigurationError (or a store failure) aborts; data absence and
// collaborator failures degrade into the output.
func (c *Compiler) Compile(ctx context.Context, req CompileRequest) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	if req.EntityID == "" {
		return nil, domain.NewConfigurationError("entity_id", "missing entity identifier")
	}

	p, err := period.Resolve(req.Cadence, req.CustomStart, req.CustomEnd, c.now())
	if err != nil {
		return nil, err
	}

	contracted, err := c.contracts.GetContractedDomains(ctx, req.EntityID)
	if err != nil {
		return nil, fmt.Errorf("contracted domains for %s: %w", req.EntityID, err)
	}
	if len(contracted) == 0 {
		return nil, domain.NewConfigurationError("contracted_domains", "entity %s has no active domains", req.EntityID)
	}

	snapshots, err := c.metrics.AggregateAll(ctx, req.EntityID, p, contracted)
	if err != nil {
		return nil, err
	}
	bigNumbers := metrics.MergeBigNumbers(snapshots)

	previous, err := c.reports.GetLatest(ctx, req.EntityID, req.Cadence)
	if err != nil {
		return nil, fmt.Errorf("previous report for %s/%s: %w", req.EntityID, req.Cadence, err)
	}
	var previousNumbers map[string]float64
	if previous != nil {
		previousNumbers = previous.BigNumbers
	}
	cmp := compare.Snapshots(bigNumbers, previousNumbers)

	r := &domain.Report{
		ID:          uuid.NewString(),
		EntityID:    req.EntityID,
		Cadence:     req.Cadence,
		Period:      p,
		Sections:    section.Build(snapshots, cmp, bigNumbers),
		BigNumbers:  bigNumbers,
		StatusColor: goal.Health(bigNumbers[metrics.MetricEngagementRate], anyHasData(snapshots)),
		CreatedAt:   c.now().UTC(),
	}

	if req.Cadence == domain.CadenceWeeklyCheckin {
		digest := narrative.Digest(p, snapshots, cmp)
		r.Narrative = &digest
	} else if req.WithNarrative {
		r.Narrative = c.generateNarrative(ctx, req, bigNumbers, cmp)
	}

	if err := c.reports.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("persist report %s: %w", r.ID, err)
	}

	logger.Info().
		Str("entity", req.EntityID).
		Str("cadence", string(req.Cadence)).
		Str("report_id", r.ID).
		Str("status_color", string(r.StatusColor)).
		Msg("report compiled")
	return r, nil
}

// Checkin renders a weekly check-in digest without persisting anything.
func (c *Compiler) Checkin(ctx context.Context, entityID string) (domain.Period, string, error) {
	if entityID == "" {
		return domain.Period{}, "", domain.NewConfigurationError("entity_id", "missing entity identifier")
	}

	p, err := period.Resolve(domain.CadenceWeeklyCheckin, nil, nil, c.now())
	if err != nil {
		return domain.Period{}, "", err
	}
	contracted, err := c.contracts.GetContractedDomains(ctx, entityID)
	if err != nil {
		return domain.Period{}, "", fmt.Errorf("contracted domains for %s: %w", entityID, err)
	}
	if len(contracted) == 0 {
		return domain.Period{}, "", domain.NewConfigurationError("contracted_domains", "entity %s has no active domains", entityID)
	}
	snapshots, err := c.metrics.AggregateAll(ctx, entityID, p, contracted)
	if err != nil {
		return domain.Period{}, "", err
	}

	bigNumbers := metrics.MergeBigNumbers(snapshots)
	previous, err := c.reports.GetLatest(ctx, entityID, domain.CadenceWeeklyCheckin)
	if err != nil {
		return domain.Period{}, "", fmt.Errorf("previous report for %s: %w", entityID, err)
	}
	var previousNumbers map[string]float64
	if previous != nil {
		previousNumbers = previous.BigNumbers
	}

	return p, narrative.Digest(p, snapshots, compare.Snapshots(bigNumbers, previousNumbers)), nil
}

// generateNarrative calls the collaborator with a hard timeout. On any
// failure the report ships without narrative text; there is no retry.
func (c *Compiler) generateNarrative(
	ctx context.Context,
	req CompileRequest,
	bigNumbers map[string]float64,
	cmp domain.Comparison,
) *string {
	logger := zerolog.Ctx(ctx)
	if c.generator == nil {
		return nil
	}

	nctx, cancel := context.WithTimeout(ctx, c.narrativeTimeout)
	defer cancel()

	text, err := c.generator.GenerateNarrative(nctx, narrative.Request{
		BrandContext: req.BrandContext,
		Cadence:      req.Cadence,
		Metrics:      bigNumbers,
		Deltas:       cmp.Deltas,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("entity", req.EntityID).
			Str("provider", c.generator.SourceName()).
			Msg("narrative generation failed, report will be persisted without narrative")
		return nil
	}
	return &text
}

func anyHasData(snapshots map[domain.Domain]metrics.Snapshot) bool {
	for _, snap := range snapshots {
		if snap.Aggregate.HasData {
			return true
		}
	}
	return false
}
