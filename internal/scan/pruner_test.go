package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPruneEmpty(t *testing.T) {
	assert.Nil(t, Prune(nil))
}

func TestPruneSingleTag(t *testing.T) {
	tags := []Tag{{DataPosition: 1000, Similarity: 0.9}}
	assert.Equal(t, tags, Prune(tags))
}

func TestPruneCollapsesCluster(t *testing.T) {
	tags := []Tag{
		{DataPosition: 1000, Similarity: 0.8},
		{DataPosition: 1100, Similarity: 0.95},
		{DataPosition: 1250, Similarity: 0.7},
	}
	pruned := Prune(tags)
	assert.Len(t, pruned, 1)
	assert.Equal(t, 1100, pruned[0].DataPosition)
}

func TestPruneKeepsDistinctOccurrences(t *testing.T) {
	tags := []Tag{
		{DataPosition: 1000, Similarity: 0.8},
		{DataPosition: 5000, Similarity: 0.9},
	}
	pruned := Prune(tags)
	assert.Len(t, pruned, 2)
	assert.Equal(t, 1000, pruned[0].DataPosition)
	assert.Equal(t, 5000, pruned[1].DataPosition)
}

func TestPruneTiesBreakByEarlierPosition(t *testing.T) {
	tags := []Tag{
		{DataPosition: 1000, Similarity: 0.9},
		{DataPosition: 1100, Similarity: 0.9},
	}
	pruned := Prune(tags)
	assert.Len(t, pruned, 1)
	assert.Equal(t, 1000, pruned[0].DataPosition)
}
