package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	ferrors "github.com/sidechain-audio/triggerscan/internal/errors"
	"github.com/sidechain-audio/triggerscan/internal/fingerprint"
	"github.com/sidechain-audio/triggerscan/internal/scan"
	"github.com/spf13/cobra"
)

var (
	referenceWavPath string
	inputWavPath     string
	dataOffsetMs     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "scan a WAV file for occurrences of a reference trigger sound",
	RunE:  runScan,
}

func init() {
	runCmd.Flags().StringVar(&referenceWavPath, "reference", "", "path to the reference trigger-sound WAV file (required)")
	runCmd.Flags().StringVar(&inputWavPath, "input", "", "path to the WAV file to scan (required)")
	runCmd.Flags().IntVar(&dataOffsetMs, "data-offset-ms", 0, "absolute stream offset, in ms, of sample index 0")
	runCmd.MarkFlagRequired("reference")
	runCmd.MarkFlagRequired("input")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	namer := scan.NewScratchNamer(time.Now().UnixNano())

	extractor, err := fingerprint.NewToolExtractor(cfg.FingerprintToolPath, cfg.ScratchDir, cfg.Debug, namer)
	if err != nil {
		return err
	}
	comparer := fingerprint.NewToolComparer(cfg.FingerprintToolPath, cfg.ScratchDir, namer)

	inputBuf, err := decodeWav(inputWavPath)
	if err != nil {
		return fmt.Errorf("failed to decode input WAV: %w", err)
	}

	referenceBuf, err := decodeWav(referenceWavPath)
	if err != nil {
		return fmt.Errorf("failed to decode reference WAV: %w", err)
	}

	referenceFR, err := extractor.Extract(ctx, referenceBuf.Data)
	if err != nil {
		return fmt.Errorf("failed to fingerprint reference: %w", err)
	}

	driverCfg := scan.Config{
		DeltaMs: cfg.DeltaMs,
		Workers: cfg.Workers,
		Debug:   cfg.Debug,
	}
	driver := scan.NewDriver(driverCfg, extractor, comparer)

	output, err := driver.Run(ctx, scan.Input{
		DataOffsetMs: dataOffsetMs,
		Samples:      inputBuf,
		Reference: scan.ReferenceFingerprint{
			Data: referenceFR.Data,
			Size: uint32(referenceFR.Size),
		},
	})
	if err != nil {
		if ferrors.IsFatal(err) {
			return fmt.Errorf("scan aborted: %w", err)
		}
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// decodeWav reads a mono 16-bit PCM WAV file into a scan.SampleBuffer.
// The fingerprint rate is assumed to equal the file's sample rate: the
// external tool consumes the same sample buffer the scan sweeps over.
func decodeWav(path string) (scan.SampleBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return scan.SampleBuffer{}, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return scan.SampleBuffer{}, fmt.Errorf("%s is not a valid WAV file", path)
	}

	var pcm *audio.IntBuffer
	pcm, err = decoder.FullPCMBuffer()
	if err != nil {
		return scan.SampleBuffer{}, fmt.Errorf("failed to read PCM data: %w", err)
	}
	if pcm.Format.NumChannels > 1 {
		return scan.SampleBuffer{}, fmt.Errorf("%s has %d channels, only mono WAV is supported", path, pcm.Format.NumChannels)
	}

	samples := make([]int16, len(pcm.Data))
	for i, s := range pcm.Data {
		samples[i] = int16(s)
	}

	sampleRate := uint32(decoder.SampleRate)
	durationSec := uint32(len(samples)) / sampleRate

	return scan.SampleBuffer{
		Data:            samples,
		Size:            uint32(len(samples)),
		SampleRate:      sampleRate,
		Duration:        durationSec,
		FingerprintRate: sampleRate,
	}, nil
}
