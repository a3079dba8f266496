// Package scan implements the sliding-window fingerprint scan that
// locates a trigger sound inside a PCM buffer: WindowCollector probes
// the buffer around each 100ms tick, PatternVoter decides whether the
// 5-neighbor group is a hit, TagPruner collapses clustered hits, and
// PayloadExtractor fingerprints the 5 seconds that follow each
// surviving tag. ScanDriver orchestrates the sweep end to end.
package scan

import "github.com/sidechain-audio/triggerscan/internal/fingerprint"

// SampleBuffer is the fully materialized in-memory PCM buffer the scan
// consumes. Duration must be 6..17 inclusive.
type SampleBuffer struct {
	Data            []int16
	Size            uint32
	SampleRate      uint32
	Duration        uint32 // seconds, 6..17
	FingerprintRate uint32 // Hz; rate used for ms <-> sample-index conversion
}

// ReferenceFingerprint is the opaque binary descriptor of the trigger
// sound the scan is looking for.
type ReferenceFingerprint struct {
	Data []byte
	Size uint32
}

// FR converts the reference into a fingerprint.FR so it can be passed
// to a Comparer alongside the probed descriptors.
func (r ReferenceFingerprint) FR() fingerprint.FR {
	return fingerprint.FR{Data: r.Data, Size: int(r.Size)}
}

// Tag is a located occurrence of the trigger sound, plus an optional
// payload fingerprint of the 5-second region that follows it.
type Tag struct {
	DataPosition             int     `json:"data_position_ms"` // ms offset from start of the stream (includes DataOffsetMs)
	MostSimilarFramePosition int     `json:"most_similar_frame_position"`
	Score                    float64 `json:"score"`
	Similarity               float64 `json:"similarity"`
	Description              string  `json:"description,omitempty"` // payload fingerprint, set by PayloadExtractor
}

// Input bundles everything one scan invocation needs.
type Input struct {
	DataOffsetMs int // absolute stream offset corresponding to sample index 0
	Samples      SampleBuffer
	Reference    ReferenceFingerprint
}

// Output is the result of a completed scan.
type Output struct {
	TuneURLCounts uint64 `json:"tune_url_counts"`
	TagCounts     uint64 `json:"tag_counts"`
	LiveTags      []Tag  `json:"live_tags"`
}

// muldiv computes a*b/c as a 64-bit integer with truncation. Callers
// rely on truncation semantics for sample-index math.
func muldiv(a, b, c int64) int64 {
	return a * b / c
}
