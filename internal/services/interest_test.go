package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeInterestLevelBaseline(t *testing.T) {
	assert.Equal(t, 30, ComputeInterestLevel("Technology", nil, 0, 0))
	assert.Equal(t, 30, ComputeInterestLevel("Technology", []string{"cooking"}, 0, 0))
}

func TestComputeInterestLevelDeclaredMatch(t *testing.T) {
	// substring match runs both directions and ignores case
	assert.Equal(t, 60, ComputeInterestLevel("Technology", []string{"tech"}, 0, 0))
	assert.Equal(t, 60, ComputeInterestLevel("Tech", []string{"financial technology"}, 0, 0))
	assert.Equal(t, 60, ComputeInterestLevel("Healthcare", []string{"HEALTHCARE"}, 0, 0))
	// only one declared-interest boost even with several matches
	assert.Equal(t, 60, ComputeInterestLevel("Technology", []string{"tech", "technology"}, 0, 0))
}

func TestComputeInterestLevelChoiceBoosts(t *testing.T) {
	assert.Equal(t, 45, ComputeInterestLevel("Technology", nil, 1, 0))
	assert.Equal(t, 38, ComputeInterestLevel("Technology", nil, 0, 1))
	assert.Equal(t, 30+15*2+8*3, ComputeInterestLevel("Technology", nil, 2, 3))
}

func TestComputeInterestLevelCeiling(t *testing.T) {
	assert.Equal(t, 95, ComputeInterestLevel("Technology", []string{"tech"}, 10, 10))
	assert.Equal(t, 95, ComputeInterestLevel("Technology", nil, 100, 0))
}

func TestComputeInterestLevelMonotonicInChoices(t *testing.T) {
	prev := 0
	for interested := 0; interested <= 8; interested++ {
		level := ComputeInterestLevel("Arts", nil, interested, 0)
		assert.GreaterOrEqual(t, level, prev)
		assert.LessOrEqual(t, level, 95)
		assert.GreaterOrEqual(t, level, 30)
		prev = level
	}
}

func TestComputeInterestLevelBlankInterestsIgnored(t *testing.T) {
	assert.Equal(t, 30, ComputeInterestLevel("Technology", []string{"", "   "}, 0, 0))
}
