package providers

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

const systemPrompt = `You are the mentor of the game Moral Maze, a developmental moral dilemma system.
You generate age-appropriate dilemmas, give short multi-voice feedback, score five value
dimensions (empathy, integrity, courage, responsibility, independence; each -2 to +2) and
write a closing narrative of the player's journey.
Always respond in English. Return ONLY valid JSON with no code fences and no extra text.`

const dilemmaPrompt = `Generate one short moral dilemma for a %d-year-old (%s; themes: %s).
Recently explored tags: %s. Prefer a different theme.

Pick either a real-life value conflict grounded in the age's experience, or a short
thought-experiment with a deep conceptual tension. The conflict must be value against value.
Keep the prompt under 30 words in simple English.
Give 2 to 4 options of 2 to 6 words each, all defensible and distinct. Add 2 to 4 short tags.

Return JSON only:
{"id": "unique_id", "prompt": "the dilemma", "options": ["A", "B", "C"], "difficulty": %.2f, "tags": ["tag1", "tag2"]}`

const reviewPrompt = `Review the player's answer as a developmental mentor. Return growth_delta (2 to 10),
match_score (0 to 1) and one short feedback line on what the choice reveals about their character.

Player age: %d
Stage: %s
Stage themes: %s
Dilemma: %s
Tags: %s
Difficulty: %.2f
Answer: %s

Return JSON only:
{"growth_delta": 5, "match_score": 0.5, "feedback": "text"}`

const scoringPrompt = `Score the player's answer on five value dimensions, each from -2 to +2.
empathy: caring for others' feelings. integrity: honesty and consistency with principles.
courage: facing risk for the right reasons. responsibility: honoring duties and consequences.
independence: self-direction and owning one's choices.

Player age: %d
Stage: %s
Dilemma: %s
Tags: %s
Answer: %s

Return JSON only:
{"empathy": 0, "integrity": 0, "courage": 0, "responsibility": 0, "independence": 0}`

const voicesPrompt = `Given the dilemma and the player's answer, write three short feedback voices.

Player age: %d
Stage: %s
Stage themes: %s
Dilemma: %s
Tags: %s
Answer: %s

Below age 60 the roles are parents, friend and future_self. From 60 on they are child,
friend and past_self. Every role needs one warm, vivid sentence.

Return JSON only:
{"%s": "text", "%s": "text", "%s": "text"}`

const summaryPrompt = `Write a narrative summary of the player's life journey so far.

Player age: %d
Stage: %s
Values: empathy %d, integrity %d, courage %d, responsibility %d, independence %d
Total decisions: %d
Key tags encountered: %s

Use 120 to 180 words in the second person, uplifting but honest. Describe how the five
values evolved. No markdown.

Return JSON only:
{"summary": "text"}`

func tagList(tags []string, limit int) string {
	if len(tags) == 0 {
		return "none"
	}
	if limit > 0 && len(tags) > limit {
		tags = tags[len(tags)-limit:]
	}
	return strings.Join(tags, ", ")
}

// answerText describes an answer for a prompt.
func answerText(q types.Question, a types.Answer) string {
	var parts []string
	if text, ok := a.ChoiceText(&q); ok {
		parts = append(parts, "Choice: "+text)
	}
	if a.FreeText != "" {
		parts = append(parts, "Free: "+a.FreeText)
	}
	if len(parts) == 0 {
		return "No answer"
	}
	return strings.Join(parts, " ")
}

func formatDilemmaPrompt(age int, stage types.Stage, historyTags []string) string {
	return fmt.Sprintf(dilemmaPrompt, age, stage.Name(), strings.Join(stage.Themes(), ", "),
		tagList(historyTags, 10), DifficultyForAge(age))
}

func formatReviewPrompt(age int, q types.Question, a types.Answer) string {
	stage := types.StageForAge(age)
	return fmt.Sprintf(reviewPrompt, age, stage.Name(), strings.Join(stage.Themes(), ", "),
		q.Prompt, tagList(q.Tags, 0), q.Difficulty, answerText(q, a))
}

func formatScoringPrompt(age int, q types.Question, a types.Answer) string {
	return fmt.Sprintf(scoringPrompt, age, types.StageForAge(age).Name(),
		q.Prompt, tagList(q.Tags, 0), answerText(q, a))
}

func formatVoicesPrompt(age int, q types.Question, a types.Answer, roles [3]string) string {
	stage := types.StageForAge(age)
	return fmt.Sprintf(voicesPrompt, age, stage.Name(), strings.Join(stage.Themes(), ", "),
		q.Prompt, tagList(q.Tags, 0), answerText(q, a), roles[0], roles[1], roles[2])
}

func formatSummaryPrompt(in LifeSummaryInput) string {
	v := in.Values
	return fmt.Sprintf(summaryPrompt, in.Age, in.Stage.Name(),
		v.Empathy, v.Integrity, v.Courage, v.Responsibility, v.Independence,
		in.Decisions, tagList(in.HistoryTags, 10))
}
