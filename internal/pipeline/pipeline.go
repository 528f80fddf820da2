package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/feregion-service/internal/domain"
	"github.com/couchcryptid/feregion-service/internal/observability"
	"github.com/couchcryptid/storm-data-shared/retry"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw event into an output event.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes multiple output events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// Pipeline consumes bulletin rows, tags each with its Flinn-Engdahl region
// and publishes the result. Offsets are committed only once the sink has
// accepted the batch; rows that cannot be parsed at all are committed and
// skipped.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	batchSize   int

	ready   atomic.Bool
	backoff time.Duration // touched only by the Run goroutine
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
		backoff:     initialBackoff,
	}
}

// CheckReadiness returns nil once a batch has reached the sink.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no batch has reached the sink yet")
	}
	return nil
}

// Run classifies batches until the context is cancelled. Extract and load
// failures back off exponentially and never end the loop.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	for ctx.Err() == nil {
		if !p.runBatch(ctx) {
			break
		}
	}

	p.logger.Info("pipeline stopping", "reason", context.Cause(ctx))
	return nil
}

// batchStats summarises one pass through the loop.
type batchStats struct {
	extracted    int
	skipped      int
	loaded       int
	unclassified int // loaded, but not tagged with an F-E region
}

func (s batchStats) attrs() []any {
	return []any{
		"extracted", s.extracted,
		"skipped", s.skipped,
		"loaded", s.loaded,
		"unclassified", s.unclassified,
	}
}

// runBatch handles one extract-classify-load cycle. It returns false when the
// context ended while waiting.
func (p *Pipeline) runBatch(ctx context.Context) bool {
	start := time.Now()

	raws, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return p.wait(ctx)
	}
	if len(raws) == 0 {
		return true
	}

	p.metrics.MessagesConsumed.Add(float64(len(raws)))
	p.metrics.BatchSize.Observe(float64(len(raws)))
	p.backoff = initialBackoff

	outs, accepted, stats := p.classify(ctx, raws)
	if len(outs) == 0 {
		p.logger.Warn("batch had nothing to load", stats.attrs()...)
		return true
	}

	if err := p.loader.LoadBatch(ctx, outs); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(outs))
		return p.wait(ctx)
	}
	for _, raw := range accepted {
		p.commit(ctx, raw)
	}

	stats.loaded = len(outs)
	p.metrics.MessagesProduced.Add(float64(stats.loaded))
	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("batch loaded", stats.attrs()...)
	return true
}

// classify transforms every event of the batch. Events the transformer
// rejects are committed immediately so they are not redelivered.
func (p *Pipeline) classify(ctx context.Context, raws []domain.RawEvent) ([]domain.OutputEvent, []domain.RawEvent, batchStats) {
	stats := batchStats{extracted: len(raws)}
	outs := make([]domain.OutputEvent, 0, len(raws))
	accepted := make([]domain.RawEvent, 0, len(raws))

	for _, raw := range raws {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			stats.skipped++
			p.metrics.TransformErrors.Inc()
			p.logger.Warn("transform failed, skipping message",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.commit(ctx, raw)
			continue
		}
		if out.Headers["region_source"] != domain.RegionSourceFE {
			stats.unclassified++
		}
		outs = append(outs, out)
		accepted = append(accepted, raw)
	}
	return outs, accepted, stats
}

// wait sleeps for the current backoff and doubles it, up to maxBackoff.
func (p *Pipeline) wait(ctx context.Context) bool {
	if !retry.SleepWithContext(ctx, p.backoff) {
		return false
	}
	p.backoff = retry.NextBackoff(p.backoff, maxBackoff)
	return true
}

func (p *Pipeline) commit(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}
