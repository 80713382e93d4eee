// Package providers supplies dilemmas and answer reviews to the game.
package providers

import (
	"context"
	"math"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// ContentProvider is the minimum a content collaborator must offer.
type ContentProvider interface {
	Name() string
	GetQuestion(ctx context.Context, age int, stage types.Stage, historyTags []string) (*types.Question, error)
	Review(ctx context.Context, age int, q types.Question, a types.Answer) (*types.Review, error)
}

// ValueScorer is implemented by providers that score the five value dimensions.
type ValueScorer interface {
	ScoreValues(ctx context.Context, age int, q types.Question, a types.Answer) (*types.ValueDimensions, error)
}

// VoiceProvider is implemented by providers that write per-role feedback voices.
type VoiceProvider interface {
	FeedbackVoices(ctx context.Context, age int, q types.Question, a types.Answer) (map[string]string, error)
}

// LifeSummaryInput is what a LifeSummarizer sees of a session.
type LifeSummaryInput struct {
	Age         int
	Stage       types.Stage
	Values      types.ValueDimensions
	Decisions   int
	HistoryTags []string
}

// LifeSummarizer is implemented by providers that narrate the whole session.
type LifeSummarizer interface {
	LifeSummary(ctx context.Context, in LifeSummaryInput) (string, error)
}

// CalculateGrowth turns a difficulty and a match score into a growth delta in [-2,5].
func CalculateGrowth(difficulty, matchScore float64, base int) int {
	factor := 0.7 + 0.6*difficulty
	raw := float64(base) * matchScore * factor
	return min(5, max(-2, int(math.RoundToEven(raw))))
}

// DifficultyForAge is the difficulty requested from generated dilemmas.
func DifficultyForAge(age int) float64 {
	switch {
	case age < 13:
		return 0.45
	case age < 18:
		return 0.6
	default:
		return 0.75
	}
}
