package scan

import (
	"context"
	"sync"

	"github.com/google/uuid"
	ferrors "github.com/sidechain-audio/triggerscan/internal/errors"
	"github.com/sidechain-audio/triggerscan/internal/fingerprint"
	"github.com/sidechain-audio/triggerscan/internal/logger"
	"github.com/sidechain-audio/triggerscan/internal/metrics"
	"go.uber.org/zap"
)

// Config holds the tuning knobs threaded explicitly through the
// driver; no global singleton config.
type Config struct {
	DeltaMs int  // probe stride; also the 5-neighbor spacing WindowCollector uses
	Workers int  // >1 enables the worker-pool window-collection mode
	Debug   bool // enables verbose per-offset logging of localized failures
}

// DefaultConfig returns a 100ms probe stride, sequential collection,
// and debug logging off.
func DefaultConfig() Config {
	return Config{DeltaMs: 100, Workers: 1, Debug: false}
}

// Driver orchestrates the sweep over time and returns the final tag
// list.
type Driver struct {
	cfg       Config
	collector *WindowCollector
	payload   *PayloadExtractor
}

// NewDriver wires the extractor/comparer capability pair into a
// WindowCollector and PayloadExtractor and returns a ready Driver.
func NewDriver(cfg Config, extractor fingerprint.Extractor, comparer fingerprint.Comparer) *Driver {
	return &Driver{
		cfg:       cfg,
		collector: NewWindowCollector(extractor, comparer),
		payload:   NewPayloadExtractor(extractor),
	}
}

// offsetResult is the map-phase output for one scan offset.
type offsetResult struct {
	elapseMs int
	group    WindowGroup
	ok       bool
	err      error
}

// Run validates the input, sweeps the buffer, votes, prunes, and
// attaches payloads, returning the final tag list.
func (d *Driver) Run(ctx context.Context, input Input) (Output, error) {
	if err := validate(input); err != nil {
		return Output{}, err
	}

	scanID := uuid.NewString()
	if d.cfg.Debug {
		logger.InfoWithFields("starting scan", logger.WithScanID(scanID), logger.WithOffset(input.DataOffsetMs))
	}

	sb := input.Samples
	referenceFR := input.Reference.FR()

	counts := int(muldiv(1000, int64(sb.Duration), 100))
	maxDurationMs := 1000 * int(sb.Duration)
	durationLimit := input.DataOffsetMs + 1000*(int(sb.Duration)-5)

	offsets := make([]int, 0, counts)
	for k := 0; k < counts; k++ {
		elapseMs := d.cfg.DeltaMs * k
		if elapseMs >= maxDurationMs {
			break
		}
		offsets = append(offsets, elapseMs)
	}

	results := d.collectAll(ctx, sb, referenceFR, offsets)

	var candidates []Tag
	for _, r := range results {
		if r.err != nil {
			if ferrors.IsFatal(r.err) {
				return Output{}, r.err
			}
			metrics.Get().ExtractionErrorsTotal.Inc()
			if d.cfg.Debug {
				logger.Warn("probe failed, skipping offset", logger.WithScanID(scanID), logger.WithOffset(r.elapseMs), zap.Error(r.err))
			}
			continue
		}
		if !r.ok {
			continue
		}

		pattern, hitIndex := Vote(r.group.FCRs)
		if pattern == NoMatch {
			continue
		}

		fcr := r.group.FCRs[hitIndex]
		tag := Tag{
			DataPosition:             input.DataOffsetMs + r.elapseMs + 1000,
			MostSimilarFramePosition: fcr.MostSimilarFramePosition,
			Score:                    fcr.Score,
			Similarity:               fcr.Similarity,
		}

		if tag.DataPosition > durationLimit {
			break
		}
		candidates = append(candidates, tag)
	}

	pruned := Prune(candidates)
	tagged := d.payload.Extract(ctx, sb, input.DataOffsetMs, pruned)

	metrics.Get().ScansTotal.Inc()
	metrics.Get().TagsEmittedTotal.Add(float64(len(tagged)))

	if d.cfg.Debug {
		logger.InfoWithFields("scan complete", logger.WithScanID(scanID), zap.Int("tags_emitted", len(tagged)))
	}

	return Output{
		TuneURLCounts: uint64(len(tagged)),
		TagCounts:     uint64(len(tagged)),
		LiveTags:      tagged,
	}, nil
}

// collectAll runs WindowCollector over every offset, either
// sequentially or through a bounded worker pool, always returning
// results ordered ascending by elapseMs.
func (d *Driver) collectAll(ctx context.Context, sb SampleBuffer, referenceFR fingerprint.FR, offsets []int) []offsetResult {
	results := make([]offsetResult, len(offsets))

	if d.cfg.Workers <= 1 {
		for i, elapseMs := range offsets {
			group, ok, err := d.collector.Collect(ctx, sb, elapseMs, referenceFR, d.cfg.DeltaMs, false)
			results[i] = offsetResult{elapseMs: elapseMs, group: group, ok: ok, err: err}
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			elapseMs := offsets[i]
			group, ok, err := d.collector.Collect(ctx, sb, elapseMs, referenceFR, d.cfg.DeltaMs, false)
			results[i] = offsetResult{elapseMs: elapseMs, group: group, ok: ok, err: err}
		}
	}

	workers := d.cfg.Workers
	if workers > len(offsets) {
		workers = len(offsets)
	}
	if workers < 1 {
		workers = 1
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}
	for i := range offsets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func validate(input Input) error {
	sb := input.Samples
	if sb.Duration < 6 || sb.Duration > 17 {
		return ferrors.InvalidInput("duration must be between 6 and 17 seconds inclusive")
	}
	if uint32(len(sb.Data)) != sb.Size {
		return ferrors.InvalidInput("sample buffer length does not match declared size")
	}
	if uint32(len(input.Reference.Data)) != input.Reference.Size {
		return ferrors.InvalidInput("reference fingerprint length does not match declared size")
	}
	return nil
}
