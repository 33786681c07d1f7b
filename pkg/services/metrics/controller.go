package metrics

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	"golang.org/x/sync/errgroup"
)

// Controller routes aggregation requests to domain analyzers. The contracted
// set is an explicit parameter on every call: a domain the caller has no
// contract for is rejected, never silently aggregated.
type Controller interface {
	// Aggregate runs a single domain's analyzer, gated by the contracted set.
	Aggregate(ctx context.Context, entityID string, period domain.Period,
		dom domain.Domain, contracted []domain.Domain) (Snapshot, error)
	// AggregateAll runs every contracted domain concurrently.
	AggregateAll(ctx context.Context, entityID string, period domain.Period,
		contracted []domain.Domain) (map[domain.Domain]Snapshot, error)
	SupportedDomains() []domain.Domain
}

type controller struct {
	analyzers map[domain.Domain]Analyzer
}

func NewController(analyzers ...Analyzer) (Controller, error) {
	c := &controller{analyzers: make(map[domain.Domain]Analyzer)}
	for _, a := range analyzers {
		d := a.Domain()
		if _, exists := c.analyzers[d]; exists {
			return nil, fmt.Errorf("duplicate analyzer for domain: %s", d)
		}
		c.analyzers[d] = a
	}
	if len(c.analyzers) == 0 {
		return nil, fmt.Errorf("at least one analyzer must be provided")
	}
	return c, nil
}

func (c *controller) Aggregate(
	ctx context.Context,
	entityID string,
	period domain.Period,
	dom domain.Domain,
	contracted []domain.Domain,
) (Snapshot, error) {
	if entityID == "" {
		return Snapshot{}, domain.NewConfigurationError("entity_id", "missing entity identifier")
	}
	if !slices.Contains(contracted, dom) {
		return Snapshot{}, domain.NewConfigurationError("domain", "domain %q is not contracted for entity %s", dom, entityID)
	}
	an, ok := c.analyzers[dom]
	if !ok {
		return Snapshot{}, domain.NewConfigurationError("domain", "unsupported domain %q", dom)
	}
	return an.Aggregate(ctx, entityID, period)
}

func (c *controller) AggregateAll(
	ctx context.Context,
	entityID string,
	period domain.Period,
	contracted []domain.Domain,
) (map[domain.Domain]Snapshot, error) {
	results := make(map[domain.Domain]Snapshot, len(contracted))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, dom := range contracted {
		g.Go(func() error {
			snap, err := c.Aggregate(gctx, entityID, period, dom, contracted)
			if err != nil {
				return err
			}
			mu.Lock()
			results[dom] = snap
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *controller) SupportedDomains() []domain.Domain {
	domains := make([]domain.Domain, 0, len(c.analyzers))
	for d := range c.analyzers {
		domains = append(domains, d)
	}
	return domains
}
