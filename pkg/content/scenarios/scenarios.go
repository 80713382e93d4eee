// Package scenarios holds the built-in dilemma pool, keyed by life stage.
package scenarios

import (
	"fmt"
	"math/rand/v2"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// FallbackStage is used when a stage has no scenarios of its own.
const FallbackStage = types.StageTeen

var pool = map[types.Stage][]types.Question{
	types.StageChild: {
		{
			ID:         "child_1",
			Prompt:     "You and your friend want to play with the same toy, but there's only one. What will you do?",
			Options:    []string{"I play first, then give it to them", "We take turns", "Let them have it"},
			Difficulty: 0.3,
			Tags:       []string{"sharing", "fairness"},
		},
		{
			ID:         "child_2",
			Prompt:     "You accidentally broke mom's favorite vase. What will you do?",
			Options:    []string{"Tell the truth", "Hide it", "Say I don't know"},
			Difficulty: 0.4,
			Tags:       []string{"honesty", "responsibility"},
		},
	},
	types.StagePreteen: {
		{
			ID:         "preteen_1",
			Prompt:     "During a test, your best friend signals they want to see your answers. The teacher didn't notice. What will you do?",
			Options:    []string{"Pretend I didn't see", "Let them see", "Tell them after the test it's wrong"},
			Difficulty: 0.5,
			Tags:       []string{"honesty", "rules", "friendship"},
		},
		{
			ID:         "preteen_2",
			Prompt:     "A classmate borrowed a popular book from the class library and hasn't returned it for a long time. What will you do?",
			Options:    []string{"Remind them to return it", "Tell the teacher", "Don't get involved"},
			Difficulty: 0.4,
			Tags:       []string{"fairness", "responsibility", "rules"},
		},
		{
			ID:         "preteen_3",
			Prompt:     "On the way home, you see a younger student being mocked by several people. What will you do?",
			Options:    []string{"Go stop them", "Tell the teacher", "Pretend I didn't see"},
			Difficulty: 0.6,
			Tags:       []string{"justice", "courage", "empathy"},
		},
	},
	types.StageTeen: {
		{
			ID:         "teen_1",
			Prompt:     "An embarrassing photo of a classmate is circulating in your group chat. Everyone is sharing it and you know they're upset. What will you do?",
			Options:    []string{"Don't share, comfort them privately", "Join everyone", "Say in the group this is wrong"},
			Difficulty: 0.6,
			Tags:       []string{"peer pressure", "respect", "online ethics"},
		},
		{
			ID:         "teen_2",
			Prompt:     "Your parents want to check your phone messages for your own good. You think this invades your privacy. How will you handle it?",
			Options:    []string{"Refuse and explain why", "Agree but express dissatisfaction", "Talk it through openly"},
			Difficulty: 0.7,
			Tags:       []string{"privacy", "trust", "independence"},
		},
		{
			ID:         "teen_3",
			Prompt:     "You discover your best friend has started smoking and drinking. What will you do?",
			Options:    []string{"Directly dissuade them", "Tell their parents or teacher", "Respect their choice"},
			Difficulty: 0.8,
			Tags:       []string{"friendship", "responsibility", "empathy"},
		},
	},
	types.StageYoungAdult: {
		{
			ID:         "ya_1",
			Prompt:     "As an intern you spot a company process that wastes resources. Speaking up might offend your supervisor. What will you do?",
			Options:    []string{"Suggest a fix through proper channels", "Discuss it privately with colleagues", "Stay silent"},
			Difficulty: 0.7,
			Tags:       []string{"professional ethics", "courage", "responsibility"},
		},
		{
			ID:         "ya_2",
			Prompt:     "Your roommate plays games late every night and you can't sleep, but they've been under a lot of stress lately. How will you handle it?",
			Options:    []string{"Talk directly and find a solution", "Be patient and understanding", "Complain to the building manager"},
			Difficulty: 0.6,
			Tags:       []string{"relationships", "boundaries", "empathy"},
		},
	},
	types.StageAdult: {
		{
			ID:         "adult_1",
			Prompt:     "Work is busy, but your child's school event needs a parent. A colleague could cover for you, adding to their load. What will you choose?",
			Options:    []string{"Attend and ask the colleague for help", "Finish work, send family instead", "Try to balance both"},
			Difficulty: 0.8,
			Tags:       []string{"family responsibility", "work", "balance"},
		},
		{
			ID:         "adult_2",
			Prompt:     "The community needs a new waste facility, planned right next to your home. What will you do?",
			Options:    []string{"Support the public interest", "Oppose and suggest alternatives", "Organize the neighbors"},
			Difficulty: 0.7,
			Tags:       []string{"public interest", "integrity", "community"},
		},
	},
	types.StageMature: {
		{
			ID:         "mature_1",
			Prompt:     "A capable report struggles with people. Promoting them might cause team conflict. How will you decide?",
			Options:    []string{"Promote on ability and coach them", "Pick someone else for harmony", "Promote with conditions"},
			Difficulty: 0.9,
			Tags:       []string{"leadership", "fairness", "responsibility"},
		},
		{
			ID:         "mature_2",
			Prompt:     "A common practice in your industry looks unethical. Changing it would cost you effort and standing. What will you do?",
			Options:    []string{"Push for change", "Speak up moderately", "Accept the status quo"},
			Difficulty: 0.8,
			Tags:       []string{"professional ethics", "courage", "integrity"},
		},
	},
	types.StageSenior: {
		{
			ID:         "senior_1",
			Prompt:     "Young people ask you for life advice, but some truths they must learn themselves. How will you share?",
			Options:    []string{"Share stories, let them think", "Give direct advice", "Encourage them to explore"},
			Difficulty: 0.6,
			Tags:       []string{"wisdom", "legacy", "independence"},
		},
		{
			ID:         "senior_2",
			Prompt:     "You want to leave your savings to your family, but many people in need could use help too. How will you arrange it?",
			Options:    []string{"Mainly to family", "Partly to charity", "A balanced split"},
			Difficulty: 0.7,
			Tags:       []string{"legacy", "responsibility", "empathy"},
		},
	},
}

// ForStage returns copies of the scenarios for stage, or of the fallback
// stage when stage has none.
func ForStage(stage types.Stage) []types.Question {
	items, ok := pool[stage]
	if !ok || len(items) == 0 {
		items = pool[FallbackStage]
	}
	out := make([]types.Question, len(items))
	for i, q := range items {
		out[i] = clone(q)
	}
	return out
}

// Pick draws one scenario for stage.
func Pick(stage types.Stage, rng *rand.Rand) types.Question {
	items := ForStage(stage)
	if len(items) == 0 {
		return Last(stage, rng)
	}
	return items[rng.IntN(len(items))]
}

// Last is the question of last resort.
func Last(stage types.Stage, rng *rand.Rand) types.Question {
	return types.Question{
		ID:         fmt.Sprintf("local_%s_%d", stage, 1000+rng.IntN(9000)),
		Prompt:     "A friend asks you to break a rule to help them. What do you do?",
		Options:    []string{"Refuse", "Accept", "Seek help"},
		Difficulty: 0.5,
		Tags:       []string{"responsibility", "integrity"},
	}
}

func clone(q types.Question) types.Question {
	q.Options = append([]string(nil), q.Options...)
	q.Tags = append([]string(nil), q.Tags...)
	return q
}
