package scan

import (
	"context"
	"encoding/hex"

	"github.com/sidechain-audio/triggerscan/internal/fingerprint"
	"github.com/sidechain-audio/triggerscan/internal/logger"
)

// PayloadExtractor fingerprints the 5-second region that follows each
// surviving tag and attaches it as the tag's Description.
type PayloadExtractor struct {
	extractor fingerprint.Extractor
}

// NewPayloadExtractor wires in the extractor capability.
func NewPayloadExtractor(extractor fingerprint.Extractor) *PayloadExtractor {
	return &PayloadExtractor{extractor: extractor}
}

// Extract attaches a payload to each tag that has room for a full
// 5-second post-trigger region inside the buffer, and drops tags that
// don't.
func (p *PayloadExtractor) Extract(ctx context.Context, sb SampleBuffer, dataOffsetMs int, tags []Tag) []Tag {
	maxDurationMs := int(sb.Duration) * 1000
	survivors := make([]Tag, 0, len(tags))

	for _, tag := range tags {
		tagOffsetMs := tag.DataPosition + 1000 - dataOffsetMs
		endOffsetMs := tagOffsetMs + 5000

		if endOffsetMs+dataOffsetMs >= dataOffsetMs+maxDurationMs {
			continue
		}

		iStart := muldiv(int64(tagOffsetMs), int64(sb.FingerprintRate), 1000)
		iEnd := muldiv(int64(endOffsetMs), int64(sb.FingerprintRate), 1000)

		if iStart < 0 || iEnd < iStart || iEnd-iStart >= int64(len(sb.Data)) || iEnd > int64(len(sb.Data)) {
			continue
		}

		fr, err := p.extractor.Extract(ctx, sb.Data[iStart:iEnd])
		if err != nil {
			logger.WarnWithFields("payload extraction failed for tag", err)
			continue
		}

		tag.Description = hex.EncodeToString(fr.Data)
		survivors = append(survivors, tag)
	}

	return survivors
}
