package scan

import (
	"context"
	"sync"

	"github.com/sidechain-audio/triggerscan/internal/fingerprint"
)

// neighborOffsets is the fixed pattern of small deltas around elapse
// that WindowCollector probes, expressed as multiples of delta. The
// resulting 5 probes line up with the same stride ScanDriver sweeps
// at, so the neighbor group is simply the two ticks before and after
// elapse, plus elapse itself.
var neighborOffsets = [5]int{-2, -1, 0, 1, 2}

// WindowGroup is the 5 (fingerprint, comparison) pairs WindowCollector
// produces for one scan offset.
type WindowGroup struct {
	FRs  [5]fingerprint.FR
	FCRs [5]fingerprint.FCR
}

// WindowCollector probes the buffer around a base time elapseMs,
// producing an ordered group of 5 (FR, FCR) pairs compared against the
// reference fingerprint.
type WindowCollector struct {
	extractor fingerprint.Extractor
	comparer  fingerprint.Comparer
}

// NewWindowCollector wires in the extractor/comparer capability pair.
func NewWindowCollector(extractor fingerprint.Extractor, comparer fingerprint.Comparer) *WindowCollector {
	return &WindowCollector{extractor: extractor, comparer: comparer}
}

// Collect probes the 5 neighbor windows around elapseMs. It returns
// ok=false (no error) when any probed window would extend past the
// buffer, and that offset is then simply skipped by the caller.
// Probe-level extraction/comparison failures are returned as err and
// are localized by the caller: this offset contributes no candidate,
// but the scan continues.
func (c *WindowCollector) Collect(ctx context.Context, sb SampleBuffer, elapseMs int, reference fingerprint.FR, deltaMs int, parallel bool) (WindowGroup, bool, error) {
	var starts [5]int
	for i, mul := range neighborOffsets {
		starts[i] = elapseMs + mul*deltaMs
	}

	windows := make([][]int16, 5)
	for i, startMs := range starts {
		if startMs < 0 {
			return WindowGroup{}, false, nil
		}
		startIdx := muldiv(int64(startMs), int64(sb.FingerprintRate), 1000)
		endIdx := startIdx + int64(sb.FingerprintRate) // one second window
		if startIdx < 0 || endIdx > int64(len(sb.Data)) {
			return WindowGroup{}, false, nil
		}
		windows[i] = sb.Data[startIdx:endIdx]
	}

	if !parallel {
		var group WindowGroup
		for i, w := range windows {
			fr, fcr, err := c.probe(ctx, w, reference)
			if err != nil {
				return WindowGroup{}, false, err
			}
			group.FRs[i] = fr
			group.FCRs[i] = fcr
		}
		return group, true, nil
	}

	type probeResult struct {
		fr  fingerprint.FR
		fcr fingerprint.FCR
		err error
	}
	results := make([]probeResult, 5)
	var wg sync.WaitGroup
	for i, w := range windows {
		wg.Add(1)
		go func(i int, w []int16) {
			defer wg.Done()
			fr, fcr, err := c.probe(ctx, w, reference)
			results[i] = probeResult{fr: fr, fcr: fcr, err: err}
		}(i, w)
	}
	wg.Wait()

	var group WindowGroup
	for i, r := range results {
		if r.err != nil {
			return WindowGroup{}, false, r.err
		}
		group.FRs[i] = r.fr
		group.FCRs[i] = r.fcr
	}
	return group, true, nil
}

func (c *WindowCollector) probe(ctx context.Context, window []int16, reference fingerprint.FR) (fingerprint.FR, fingerprint.FCR, error) {
	fr, err := c.extractor.Extract(ctx, window)
	if err != nil {
		return fingerprint.FR{}, fingerprint.FCR{}, err
	}
	fcr, err := c.comparer.Compare(ctx, fr, reference)
	if err != nil {
		return fingerprint.FR{}, fingerprint.FCR{}, err
	}
	return fr, fcr, nil
}
