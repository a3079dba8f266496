package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFCRIsNegative(t *testing.T) {
	assert.True(t, FCR{FrameStartTime: -0.5}.IsNegative())
	assert.False(t, FCR{FrameStartTime: 0}.IsNegative())
	assert.False(t, FCR{FrameStartTime: 0.5}.IsNegative())
}
