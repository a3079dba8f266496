package scan

import (
	"context"
	"errors"

	"github.com/sidechain-audio/triggerscan/internal/fingerprint"
)

// mockExtractor is a deterministic fingerprint.Extractor for tests:
// it never shells out to a real tool. extractFn lets a test override
// behavior per call; nil uses a fixed descriptor derived from the
// window's length so distinct windows produce distinct data.
type mockExtractor struct {
	extractFn func(ctx context.Context, samples []int16) (fingerprint.FR, error)
	calls     int
}

func (m *mockExtractor) Extract(ctx context.Context, samples []int16) (fingerprint.FR, error) {
	m.calls++
	if m.extractFn != nil {
		return m.extractFn(ctx, samples)
	}
	return fingerprint.FR{Data: []byte{byte(len(samples) % 256)}, Size: 1}, nil
}

// mockComparer returns a fixed sequence of FCRs, one per call, cycling
// if exhausted. Tests drive the 5-neighbor sign layout directly through
// this sequence.
type mockComparer struct {
	sequence []fingerprint.FCR
	idx      int
	err      error
}

func (m *mockComparer) Compare(ctx context.Context, a, b fingerprint.FR) (fingerprint.FCR, error) {
	if m.err != nil {
		return fingerprint.FCR{}, m.err
	}
	if len(m.sequence) == 0 {
		return fingerprint.FCR{}, nil
	}
	fcr := m.sequence[m.idx%len(m.sequence)]
	m.idx++
	return fcr, nil
}

var errMockCompareFailed = errors.New("mock compare failed")
