package lessongen

import "time"

// Config controls lesson generation.
type Config struct {
	// TwoStage runs analysis + per-topic generation and falls back to the
	// single-request path when that fails. When false only the single
	// request path runs.
	TwoStage bool

	// CardsPerTopic is the plan total requested from the analysis phase.
	CardsPerTopic int

	// MaxPriorLessons caps the prior-lesson summary in the analysis prompt.
	MaxPriorLessons int

	AnalysisMaxTokens int
	AnalysisTimeout   time.Duration

	CardsMaxTokens int
	CardsTimeout   time.Duration

	SingleStageMaxTokens int
	SingleStageTimeout   time.Duration

	Temperature float64
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		TwoStage:             true,
		CardsPerTopic:        12,
		MaxPriorLessons:      5,
		AnalysisMaxTokens:    4000,
		AnalysisTimeout:      60 * time.Second,
		CardsMaxTokens:       6000,
		CardsTimeout:         120 * time.Second,
		SingleStageMaxTokens: 16000,
		SingleStageTimeout:   180 * time.Second,
		Temperature:          0.7,
	}
}
