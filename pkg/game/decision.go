package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/cbodonnell/moralmaze/pkg/content/providers"
	"github.com/cbodonnell/moralmaze/pkg/content/scenarios"
	"github.com/cbodonnell/moralmaze/pkg/game/decisions"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
	"github.com/google/uuid"
)

// StartDecision claims the active node at p and holds a question for it.
// The content provider is consulted without holding the lock.
func (c *SessionController) StartDecision(ctx context.Context, p types.Coord) (*messages.StartDecisionResult, error) {
	c.mu.Lock()
	now := c.now()
	c.regenerate(now)
	if err := c.decisions.Claim(c.state, p); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	epoch := c.epoch
	age, stage, tags := c.state.Age, c.state.Stage, c.state.HistoryTags()
	last := scenarios.Last(stage, c.rng)
	c.mu.Unlock()

	q := c.question(ctx, age, stage, tags, last)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil, types.Stale(types.ReasonNotActiveDecision, "session restarted while starting the decision at %s", p)
	}
	if _, err := c.decisions.Lookup(q.ID); err == nil {
		q.ID = fmt.Sprintf("%s_%s", q.ID, uuid.NewString()[:8])
	}
	now = c.now()
	c.state.ActiveDecisions.Remove(p)
	c.decisions.Hold(q, p, now)
	c.logger.Debug("Decision %s started at %s", q.ID, p)

	return &messages.StartDecisionResult{
		Question: messages.QuestionView{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Options:    q.Options,
			Difficulty: q.Difficulty,
			Tags:       q.Tags,
			Position:   p,
		},
		State: c.commit(ctx, now),
	}, nil
}

func validQuestion(q *types.Question) bool {
	return q != nil && q.ID != "" && strings.TrimSpace(q.Prompt) != "" && len(q.Options) >= 2 && len(q.Options) <= 4
}

// question asks the provider, then the local fallback, and returns last
// when neither supplies a usable question.
func (c *SessionController) question(ctx context.Context, age int, stage types.Stage, tags []string, last types.Question) types.Question {
	q, err := c.provider.GetQuestion(ctx, age, stage, tags)
	if err == nil && validQuestion(q) {
		return *q
	}
	if err != nil {
		c.logger.Warn("Question from %s failed, using local content: %v", c.provider.Name(), err)
	} else {
		c.logger.Warn("Question from %s was malformed, using local content", c.provider.Name())
	}
	if q, err := c.fallback.GetQuestion(ctx, age, stage, tags); err == nil && validQuestion(q) {
		return *q
	}
	return last
}

// SubmitDecision answers a pending question and applies its growth.
func (c *SessionController) SubmitDecision(ctx context.Context, questionID string, answer types.Answer) (*messages.SubmitDecisionResult, error) {
	c.mu.Lock()
	pending, err := c.decisions.Lookup(questionID)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if _, ok := answer.ChoiceText(&pending.Question); !ok {
		answer.ChoiceID = nil
	}
	answer.FreeText = strings.TrimSpace(answer.FreeText)
	if answer.IsEmpty() {
		c.mu.Unlock()
		return nil, types.Invalid(types.ReasonMissingAnswer, "choose an option or write an answer")
	}
	epoch := c.epoch
	age := c.state.Age
	c.mu.Unlock()

	outcome := c.assess(ctx, age, pending.Question, answer)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil, types.Stale(types.ReasonQuestionNotFound, "question %q belongs to a previous session", questionID)
	}
	pending, err = c.decisions.Take(questionID)
	if err != nil {
		return nil, err
	}
	now := c.now()
	c.regenerate(now)
	record, growth := decisions.Resolve(c.state, pending, outcome, c.settings.StartAge)
	c.regenerateAge()
	c.logger.Debug("Decision %s resolved: growth %d, age %d", questionID, outcome.Review.GrowthDelta, c.state.Age)
	c.publish(messages.MessageTypeDecisionResolved, growth)

	complete := c.state.GoalReached(c.settings.GoalAge)
	return &messages.SubmitDecisionResult{
		Question:        record.Question,
		Answer:          answerView(record.Question, record.Answer),
		Review:          record.Review,
		ValueDelta:      outcome.ValueDelta,
		ValueDimensions: c.state.Values,
		Voices:          outcome.Voices,
		GameComplete:    complete,
		State:           c.commit(ctx, now),
	}, nil
}

func answerView(q types.Question, a types.Answer) messages.AnswerView {
	text, _ := a.ChoiceText(&q)
	return messages.AnswerView{ChoiceID: a.ChoiceID, ChoiceText: text, FreeText: a.FreeText}
}

func clampValues(v types.ValueDimensions) types.ValueDimensions {
	clamp := func(n int) int { return min(2, max(-2, n)) }
	return types.ValueDimensions{
		Empathy:        clamp(v.Empathy),
		Integrity:      clamp(v.Integrity),
		Courage:        clamp(v.Courage),
		Responsibility: clamp(v.Responsibility),
		Independence:   clamp(v.Independence),
	}
}

// assess gathers the review, value delta and voices for an answer,
// substituting local results for anything the provider cannot supply.
func (c *SessionController) assess(ctx context.Context, age int, q types.Question, a types.Answer) decisions.Outcome {
	review, err := c.provider.Review(ctx, age, q, a)
	if err != nil || review == nil {
		if err != nil {
			c.logger.Warn("Review from %s failed, using local review: %v", c.provider.Name(), err)
		}
		review, _ = c.fallback.Review(ctx, age, q, a)
	}
	if review == nil {
		review = &types.Review{Feedback: "Thank you for sharing your thinking."}
	}

	var delta types.ValueDimensions
	scored := false
	if scorer, ok := c.provider.(providers.ValueScorer); ok {
		v, err := scorer.ScoreValues(ctx, age, q, a)
		if err != nil {
			c.logger.Warn("Value scoring failed, using tag heuristic: %v", err)
		} else if v != nil {
			delta, scored = clampValues(*v), true
		}
	}
	if !scored {
		delta = decisions.HeuristicValueDelta(q, review.GrowthDelta)
	}

	defaults := decisions.DefaultVoices(age, q, a, delta)
	voices := defaults
	if vp, ok := c.provider.(providers.VoiceProvider); ok {
		v, err := vp.FeedbackVoices(ctx, age, q, a)
		if err != nil {
			c.logger.Warn("Feedback voices failed, using defaults: %v", err)
		} else if len(v) > 0 {
			voices = decisions.NormalizeVoices(age, v, defaults)
		}
	}

	return decisions.Outcome{
		Answer:     a,
		Review:     *review,
		ValueDelta: delta,
		Voices:     voices,
	}
}

// GetTimeline summarizes the session's decisions.
func (c *SessionController) GetTimeline(ctx context.Context) *messages.TimelineResult {
	c.mu.Lock()
	c.regenerate(c.now())
	s := c.state.Copy()
	c.mu.Unlock()

	narrative := ""
	if summarizer, ok := c.provider.(providers.LifeSummarizer); ok {
		text, err := summarizer.LifeSummary(ctx, providers.LifeSummaryInput{
			Age:         s.Age,
			Stage:       s.Stage,
			Values:      s.Values,
			Decisions:   len(s.History),
			HistoryTags: s.HistoryTags(),
		})
		if err != nil {
			c.logger.Warn("Life summary failed, using local summary: %v", err)
		}
		narrative = strings.TrimSpace(text)
	}
	if narrative == "" {
		narrative = decisions.FallbackLifeSummary(s)
	}

	records := make([]messages.TimelineRecord, 0, len(s.History))
	for i, r := range s.History {
		records = append(records, messages.TimelineRecord{
			Index:     i + 1,
			Age:       r.AgeAtDecision,
			Stage:     r.StageAtDecision,
			StageName: r.StageAtDecision.Name(),
			Question:  r.Question.Prompt,
			Answer:    answerView(r.Question, r.Answer),
			Review:    r.Review,
		})
	}

	return &messages.TimelineResult{
		Summary: messages.TimelineSummary{
			FinalAge:        s.Age,
			Stage:           s.Stage,
			StageName:       s.Stage.Name(),
			TotalGrowth:     s.TotalGrowth,
			ValueDimensions: s.Values,
			Decisions:       len(s.History),
			Narrative:       narrative,
		},
		Records:       records,
		GrowthHistory: append([]types.GrowthRecord{}, s.GrowthHistory...),
	}
}
