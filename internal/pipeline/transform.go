package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/feregion-service/internal/domain"
	"github.com/couchcryptid/feregion-service/internal/observability"
)

// RegionTransformer implements Transformer by parsing bulletin rows and
// tagging them with their Flinn-Engdahl region.
type RegionTransformer struct {
	locator domain.RegionLocator
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a RegionTransformer. Pass a nil locator to disable
// region enrichment.
func NewTransformer(locator domain.RegionLocator, logger *slog.Logger, metrics *observability.Metrics) *RegionTransformer {
	return &RegionTransformer{
		locator: locator,
		logger:  logger,
		metrics: metrics,
	}
}

func (t *RegionTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	event, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	event = domain.EnrichQuakeEvent(event)
	event = domain.EnrichWithRegion(event, t.locator, t.logger)
	t.recordEnrichment(event)

	return domain.SerializeEvent(event)
}

func (t *RegionTransformer) recordEnrichment(event domain.QuakeEvent) {
	if t.metrics == nil || event.RegionSource == "" {
		return
	}
	outcome := "classified"
	if event.RegionSource != domain.RegionSourceFE {
		outcome = domain.RegionSourceFailed
	}
	t.metrics.Enrichment.WithLabelValues(outcome).Inc()
}
