package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsSameInstance(t *testing.T) {
	Reset()
	defer Reset()

	a := Get()
	b := Get()
	assert.Same(t, a, b)
}

func TestScansTotalIncrements(t *testing.T) {
	Reset()
	defer Reset()

	m := Get()
	require.Equal(t, float64(0), testutil.ToFloat64(m.ScansTotal))

	m.ScansTotal.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ScansTotal))
}

func TestTagsEmittedTotalAdds(t *testing.T) {
	Reset()
	defer Reset()

	m := Get()
	m.TagsEmittedTotal.Add(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(m.TagsEmittedTotal))
}
