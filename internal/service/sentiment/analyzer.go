// Package sentiment scores post text with the VADER lexicon. Scores
// are the compound polarity in [-1, 1]; the pipeline treats the whole
// feature as optional and omits sentiment output when disabled.
package sentiment

import (
	govader "github.com/jonreiter/govader"
)

// Scorer scores a piece of text for polarity
type Scorer interface {
	// Score returns the compound polarity of the text in [-1, 1]
	Score(text string) float64
}

// Analyzer implements Scorer with the VADER lexicon
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates a new VADER sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		sia: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score returns the compound polarity score for the text
func (a *Analyzer) Score(text string) float64 {
	return a.sia.PolarityScores(text).Compound
}
