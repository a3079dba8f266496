package fingerprint

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ferrors "github.com/sidechain-audio/triggerscan/internal/errors"
)

// Namer hands out unique scratch-filename suffixes. The cmd/scan entry
// point creates one wall-clock-seeded namer per scan and passes it to
// both the ToolExtractor and the ToolComparer it constructs, so
// concurrent probes never collide on a scratch filename. The scan
// Driver holds no RNG of its own.
type Namer interface {
	Next() string
}

// ToolExtractor invokes the external fingerprinting binary via a
// scratch directory with a random-suffixed temp file: a raw
// little-endian signed-16-bit PCM file in, a descriptor +
// frame-metrics JSON out, exit code 0 on success.
type ToolExtractor struct {
	toolPath string
	rootDir  string
	debug    bool
	namer    Namer
}

// NewToolExtractor validates the scratch directory is writable (and
// creates rootDir/debug when debug is enabled) before returning.
func NewToolExtractor(toolPath, rootDir string, debug bool, namer Namer) (*ToolExtractor, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, ferrors.ScratchIO("scratch directory not writable", err)
	}
	if debug {
		if err := os.MkdirAll(filepath.Join(rootDir, "debug"), 0o755); err != nil {
			return nil, ferrors.ScratchIO("debug scratch directory not writable", err)
		}
	}
	return &ToolExtractor{toolPath: toolPath, rootDir: rootDir, debug: debug, namer: namer}, nil
}

// toolDescriptor is the on-disk JSON descriptor shape: the descriptor
// bytes hex-encoded plus frame metrics. The external tool writes it on
// extract, and ToolComparer writes it for the tool's compare inputs.
type toolDescriptor struct {
	DataHex      string  `json:"data_hex"`
	Size         int     `json:"size"`
	FrameCount   int     `json:"frame_count"`
	FrameRate    float64 `json:"frame_rate"`
}

// Extract writes samples to a scratch PCM file, invokes the external
// tool, and parses its descriptor output.
func (e *ToolExtractor) Extract(ctx context.Context, samples []int16) (FR, error) {
	suffix := e.namer.Next()
	if suffix == "" {
		return FR{}, ferrors.InvalidInput("scratch filename suffix must not be empty")
	}

	pcmPath := filepath.Join(e.rootDir, fmt.Sprintf("probe_%s.pcm", suffix))
	descPath := filepath.Join(e.rootDir, fmt.Sprintf("probe_%s.json", suffix))
	defer os.Remove(pcmPath)
	defer os.Remove(descPath)

	if err := writePCM(pcmPath, samples); err != nil {
		return FR{}, ferrors.ScratchIO("failed to write scratch PCM file", err)
	}

	args := []string{"extract", "--in", pcmPath, "--out", descPath, "--samples", fmt.Sprintf("%d", len(samples))}
	if e.debug {
		args = append(args, "--debug-dir", filepath.Join(e.rootDir, "debug"))
	}

	cmd := exec.CommandContext(ctx, e.toolPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return FR{}, fmt.Errorf("fingerprint tool extract failed: %w (stderr: %s)", err, stderr.String())
	}

	raw, err := os.ReadFile(descPath)
	if err != nil {
		return FR{}, fmt.Errorf("failed to read fingerprint descriptor: %w", err)
	}

	var td toolDescriptor
	if err := json.Unmarshal(raw, &td); err != nil {
		return FR{}, fmt.Errorf("failed to parse fingerprint descriptor: %w", err)
	}

	data, err := hex.DecodeString(td.DataHex)
	if err != nil {
		return FR{}, fmt.Errorf("failed to decode fingerprint descriptor bytes: %w", err)
	}

	return FR{
		Data: data,
		Size: td.Size,
		FrameMetrics: FrameMetrics{
			FrameCount: td.FrameCount,
			FrameRate:  td.FrameRate,
		},
	}, nil
}

func writePCM(path string, samples []int16) error {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return os.WriteFile(path, buf, 0o644)
}
