package providers

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/cbodonnell/moralmaze/pkg/content/scenarios"
	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/google/uuid"
)

const LocalProviderName = "Local Provider"

var matchKeywords = []string{
	"because", "so ", "but", "maybe", "should", "if ",
	"help", "understand", "feel", "fair", "responsib", "honest",
	"respect", "care", "consider", "impact", "consequence", "principle",
}

var feedbackBands = []struct {
	min   int
	lines []string
}{
	{4, []string{
		"Excellent thinking! You showed deep insight.",
		"Your answer reflects mature moral judgment. Keep it up!",
		"Great! You considered multiple perspectives.",
	}},
	{2, []string{
		"Good idea! Thinking deeper would be even better.",
		"Your answer has depth. Try considering more angles?",
		"A great start. More thinking brings more rewards.",
	}},
	{0, []string{
		"An honest answer. Keep trying!",
		"Nice attempt. Try to be more detailed next time.",
		"Your thoughts are genuine. Keep thinking.",
	}},
	{math.MinInt, []string{
		"Try thinking about this from multiple angles.",
		"This question deserves deeper thought.",
		"Take your time. You'll discover something new.",
	}},
}

// LocalProvider serves the built-in scenario pool and reviews answers with
// heuristics. It needs no network and never fails.
type LocalProvider struct {
	mu      sync.Mutex
	rng     *rand.Rand
	counter int
}

func NewLocalProvider(rng *rand.Rand) *LocalProvider {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LocalProvider{rng: rng}
}

func (p *LocalProvider) Name() string {
	return LocalProviderName
}

// GetQuestion picks a scenario for the stage, avoiding tags seen in the
// most recent history.
func (p *LocalProvider) GetQuestion(ctx context.Context, age int, stage types.Stage, historyTags []string) (*types.Question, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pool := scenarios.ForStage(stage)
	recent := historyTags[max(0, len(historyTags)-constants.RecentTagWindow):]
	available := make([]types.Question, 0, len(pool))
	for _, q := range pool {
		if !slices.ContainsFunc(q.Tags, func(tag string) bool { return slices.Contains(recent, tag) }) {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		available = pool
	}

	var q types.Question
	if len(available) == 0 {
		q = scenarios.Last(stage, p.rng)
	} else {
		q = available[p.rng.IntN(len(available))]
	}
	p.counter++
	q.ID = fmt.Sprintf("%s_%d_%s", stage, p.counter, uuid.NewString()[:8])
	return &q, nil
}

// Review scores the answer text with length and keyword heuristics.
func (p *LocalProvider) Review(ctx context.Context, age int, q types.Question, a types.Answer) (*types.Review, error) {
	if a.IsEmpty() {
		return &types.Review{Feedback: "No answer provided. Try sharing your thoughts!"}, nil
	}
	match := MatchScore(a.Text(&q))
	growth := CalculateGrowth(q.Difficulty, match, constants.GrowthBase)

	p.mu.Lock()
	feedback := p.feedback(growth)
	p.mu.Unlock()

	return &types.Review{GrowthDelta: growth, MatchScore: match, Feedback: feedback}, nil
}

func (p *LocalProvider) feedback(growth int) string {
	for _, band := range feedbackBands {
		if growth >= band.min {
			return band.lines[p.rng.IntN(len(band.lines))]
		}
	}
	return ""
}

// MatchScore rates how considered an answer reads, in [0,1].
func MatchScore(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	score := 0.4
	if len(text) > 20 {
		score += 0.2
	}
	if len(text) > 50 {
		score += 0.1
	}
	lower := strings.ToLower(text) + " "
	hits := 0
	for _, kw := range matchKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	score += min(0.3, float64(hits)*0.1)
	return min(1, max(0, score))
}
