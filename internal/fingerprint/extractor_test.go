package fingerprint

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePCMRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "probe.pcm")
	samples := []int16{0, 1, -1, 32767, -32768, 42}

	require.NoError(t, writePCM(path, samples))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, len(samples)*2)

	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		require.Equal(t, want, got)
	}
}

func TestNewToolExtractorCreatesScratchDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")
	_, err := NewToolExtractor("/bin/true", dir, false, NewNamerStub())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestNewToolExtractorDebugDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")
	_, err := NewToolExtractor("/bin/true", dir, true, NewNamerStub())
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "debug"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

// namerStub is a trivial deterministic Namer for tests that only care
// about scratch-directory setup, not collision-safe naming.
type namerStub struct{ n int }

func NewNamerStub() *namerStub { return &namerStub{} }

func (s *namerStub) Next() string {
	s.n++
	return string(rune('a' + s.n))
}
