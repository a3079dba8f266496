package fingerprint

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ferrors "github.com/sidechain-audio/triggerscan/internal/errors"
)

// toolComparison is the on-disk JSON shape the external tool writes
// for a compare invocation.
type toolComparison struct {
	Score                    float64 `json:"score"`
	Similarity               float64 `json:"similarity"`
	FrameStartTime           float64 `json:"frame_start_time"`
	MostSimilarFramePosition int     `json:"most_similar_frame_position"`
}

// ToolComparer compares two fingerprint descriptors via the same
// external tool binary used by ToolExtractor, using its "compare"
// subcommand over two scratch descriptor files.
type ToolComparer struct {
	toolPath string
	rootDir  string
	namer    Namer
}

// NewToolComparer returns a Comparer backed by the external tool.
// rootDir must already exist (ToolExtractor creates it); ToolComparer
// does not re-validate it to avoid duplicate scratch-dir creation
// races when both are constructed for the same scan.
func NewToolComparer(toolPath, rootDir string, namer Namer) *ToolComparer {
	return &ToolComparer{toolPath: toolPath, rootDir: rootDir, namer: namer}
}

// Compare invokes the external tool to compare two descriptors.
func (c *ToolComparer) Compare(ctx context.Context, a, b FR) (FCR, error) {
	suffix := c.namer.Next()
	if suffix == "" {
		return FCR{}, ferrors.InvalidInput("scratch filename suffix must not be empty")
	}

	aPath := filepath.Join(c.rootDir, fmt.Sprintf("cmp_%s_a.json", suffix))
	bPath := filepath.Join(c.rootDir, fmt.Sprintf("cmp_%s_b.json", suffix))
	outPath := filepath.Join(c.rootDir, fmt.Sprintf("cmp_%s_out.json", suffix))
	defer os.Remove(aPath)
	defer os.Remove(bPath)
	defer os.Remove(outPath)

	if err := writeDescriptor(aPath, a); err != nil {
		return FCR{}, ferrors.ScratchIO("failed to write scratch descriptor", err)
	}
	if err := writeDescriptor(bPath, b); err != nil {
		return FCR{}, ferrors.ScratchIO("failed to write scratch descriptor", err)
	}

	cmd := exec.CommandContext(ctx, c.toolPath, "compare", "--a", aPath, "--b", bPath, "--out", outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return FCR{}, fmt.Errorf("fingerprint tool compare failed: %w (stderr: %s)", err, stderr.String())
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		return FCR{}, fmt.Errorf("failed to read comparison result: %w", err)
	}

	var tc toolComparison
	if err := json.Unmarshal(raw, &tc); err != nil {
		return FCR{}, fmt.Errorf("failed to parse comparison result: %w", err)
	}

	return FCR{
		Score:                    tc.Score,
		Similarity:               tc.Similarity,
		FrameStartTime:           tc.FrameStartTime,
		MostSimilarFramePosition: tc.MostSimilarFramePosition,
	}, nil
}

func writeDescriptor(path string, fr FR) error {
	td := toolDescriptor{
		DataHex:    hex.EncodeToString(fr.Data),
		Size:       fr.Size,
		FrameCount: fr.FrameMetrics.FrameCount,
		FrameRate:  fr.FrameMetrics.FrameRate,
	}
	raw, err := json.Marshal(td)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
