package scan

import (
	"testing"

	"github.com/sidechain-audio/triggerscan/internal/fingerprint"
	"github.com/stretchr/testify/assert"
)

func fcr(frameStartTime float64) fingerprint.FCR {
	return fingerprint.FCR{FrameStartTime: frameStartTime}
}

func TestVotePattern8(t *testing.T) {
	group := [5]fingerprint.FCR{fcr(-1), fcr(1), fcr(-1), fcr(-1), fcr(-1)}
	pattern, hit := Vote(group)
	assert.Equal(t, Pattern8, pattern)
	assert.Equal(t, 1, hit)
}

func TestVotePattern15(t *testing.T) {
	group := [5]fingerprint.FCR{fcr(-1), fcr(2), fcr(2), fcr(2), fcr(2)}
	pattern, hit := Vote(group)
	assert.Equal(t, Pattern15, pattern)
	assert.Equal(t, 0, hit)
}

func TestVotePattern30(t *testing.T) {
	group := [5]fingerprint.FCR{fcr(3), fcr(3), fcr(3), fcr(3), fcr(-1)}
	pattern, hit := Vote(group)
	assert.Equal(t, Pattern30, pattern)
	assert.Equal(t, 4, hit)
}

func TestVoteNoMatchWrongSignLayout(t *testing.T) {
	group := [5]fingerprint.FCR{fcr(-1), fcr(-1), fcr(-1), fcr(-1), fcr(-1)}
	pattern, hit := Vote(group)
	assert.Equal(t, NoMatch, pattern)
	assert.Equal(t, -1, hit)
}

func TestVoteNoMatchSignLayoutOKButTimesDiffer(t *testing.T) {
	// Pattern8 sign layout but the required frame-start-time equalities don't hold.
	group := [5]fingerprint.FCR{fcr(-1), fcr(1), fcr(-2), fcr(-1), fcr(-1)}
	pattern, _ := Vote(group)
	assert.Equal(t, NoMatch, pattern)
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "pattern-8", Pattern8.String())
	assert.Equal(t, "pattern-15", Pattern15.String())
	assert.Equal(t, "pattern-30", Pattern30.String())
	assert.Equal(t, "no-match", NoMatch.String())
}
