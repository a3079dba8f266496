package scan

import "github.com/sidechain-audio/triggerscan/internal/fingerprint"

// Pattern is a closed tagged variant over the 5-neighbor sign
// sequences Vote recognizes.
type Pattern int

const (
	NoMatch Pattern = iota
	Pattern8         // N P N N N -> hit at index 1
	Pattern15        // N P P P P -> hit at index 0
	Pattern30        // P P P P N -> hit at index 4
)

// String names the pattern for logging.
func (p Pattern) String() string {
	switch p {
	case Pattern8:
		return "pattern-8"
	case Pattern15:
		return "pattern-15"
	case Pattern30:
		return "pattern-30"
	default:
		return "no-match"
	}
}

// isFrameStartTimeEqual compares FrameStartTime values for exact
// scalar equality, no epsilon. The external tool reports this value
// deterministically for identical input windows, so exact equality is
// the correct comparison rather than a latent bug waiting to happen.
func isFrameStartTimeEqual(x, y float64) bool {
	return x == y
}

// Vote applies the 5-neighbor voting rules to exactly 5 comparison
// records and reports whether the group is a valid trigger hit and,
// if so, which neighbor is the canonical one.
func Vote(fcrs [5]fingerprint.FCR) (pattern Pattern, hitIndex int) {
	a, b, c, d, e := fcrs[0], fcrs[1], fcrs[2], fcrs[3], fcrs[4]
	signs := [5]bool{a.IsNegative(), b.IsNegative(), c.IsNegative(), d.IsNegative(), e.IsNegative()}

	switch signs {
	case [5]bool{true, false, true, true, true}: // N P N N N
		if isFrameStartTimeEqual(a.FrameStartTime, c.FrameStartTime) &&
			isFrameStartTimeEqual(c.FrameStartTime, d.FrameStartTime) &&
			isFrameStartTimeEqual(d.FrameStartTime, e.FrameStartTime) {
			return Pattern8, 1
		}
	case [5]bool{true, false, false, false, false}: // N P P P P
		if isFrameStartTimeEqual(c.FrameStartTime, b.FrameStartTime) &&
			isFrameStartTimeEqual(b.FrameStartTime, d.FrameStartTime) &&
			isFrameStartTimeEqual(d.FrameStartTime, e.FrameStartTime) {
			return Pattern15, 0
		}
	case [5]bool{false, false, false, false, true}: // P P P P N
		if isFrameStartTimeEqual(a.FrameStartTime, b.FrameStartTime) &&
			isFrameStartTimeEqual(b.FrameStartTime, c.FrameStartTime) &&
			isFrameStartTimeEqual(c.FrameStartTime, d.FrameStartTime) {
			return Pattern30, 4
		}
	}
	return NoMatch, -1
}
