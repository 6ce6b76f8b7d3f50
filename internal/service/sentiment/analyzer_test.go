package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRange(t *testing.T) {
	analyzer := NewAnalyzer()

	for _, text := range []string{
		"I absolutely love this gorgeous dress",
		"this outfit is terrible and ugly",
		"a jacket",
		"",
	} {
		score := analyzer.Score(text)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScoreOrdersPolarity(t *testing.T) {
	analyzer := NewAnalyzer()

	positive := analyzer.Score("I absolutely love this gorgeous dress, amazing quality")
	negative := analyzer.Score("this outfit is terrible, awful quality, I hate it")

	assert.Greater(t, positive, 0.0)
	assert.Less(t, negative, 0.0)
	assert.Greater(t, positive, negative)
}
