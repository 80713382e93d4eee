package decisions

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// HeuristicValueDelta derives a value delta from question tags when no
// collaborator scored the answer. Each tag naming a dimension moves it by
// the growth clamped to [-2,2]. With no matching tag the whole amount goes
// to responsibility.
func HeuristicValueDelta(q types.Question, growth int) types.ValueDimensions {
	base := min(2, max(-2, growth))
	var d types.ValueDimensions
	if base == 0 {
		return d
	}
	seen := map[string]bool{}
	for _, tag := range q.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if seen[tag] {
			continue
		}
		seen[tag] = true
		d.Bump(tag, base)
	}
	if d.IsZero() {
		d.Responsibility = base
	}
	return d
}

const (
	VoiceParents    = "parents"
	VoiceFriend     = "friend"
	VoiceFutureSelf = "future_self"
	VoiceChild      = "child"
	VoicePastSelf   = "past_self"
)

// VoiceRoles returns the three voice keys for age.
func VoiceRoles(age int) [3]string {
	if age < constants.VoiceRoleAgeThreshold {
		return [3]string{VoiceParents, VoiceFriend, VoiceFutureSelf}
	}
	return [3]string{VoiceChild, VoiceFriend, VoicePastSelf}
}

// DefaultVoices builds the local three-voice feedback for an answer.
func DefaultVoices(age int, q types.Question, a types.Answer, delta types.ValueDimensions) map[string]string {
	said := a.FreeText
	if said == "" {
		if text, ok := a.ChoiceText(&q); ok {
			said = text
		}
	}
	if said == "" {
		said = "your move"
	}
	summary := delta.Summary()
	roles := VoiceRoles(age)
	return map[string]string{
		roles[0]: fmt.Sprintf("We see you chose %s. Hold to your principles and care for others as you grow. [%s]", said, summary),
		roles[1]: fmt.Sprintf("Bold pick! Keep it real and keep it kind. We've got your back. [%s]", summary),
		roles[2]: fmt.Sprintf("This step shapes who you become. Balance heart and spine, and keep learning. [%s]", summary),
	}
}

// NormalizeVoices maps generic role1..role3 keys onto the age-appropriate
// roles and fills any missing or blank role from defaults.
func NormalizeVoices(age int, provided, defaults map[string]string) map[string]string {
	out := make(map[string]string, len(provided)+3)
	for k, v := range provided {
		out[k] = v
	}
	roles := VoiceRoles(age)
	for i, role := range roles {
		generic := fmt.Sprintf("role%d", i+1)
		if v, ok := provided[generic]; ok {
			if _, exists := out[role]; !exists {
				out[role] = v
			}
		}
	}
	for _, role := range roles {
		if strings.TrimSpace(out[role]) == "" {
			out[role] = defaults[role]
		}
	}
	return out
}

// FallbackLifeSummary is the narrative used when no collaborator writes one.
func FallbackLifeSummary(s *types.SessionState) string {
	v := s.Values
	return fmt.Sprintf(
		"Your journey closes at age %d. Emp:%d, Int:%d, Cou:%d, Resp:%d, Ind:%d. "+
			"You made %d choices; these choices shaped a path of growing judgment and character.",
		s.Age, v.Empathy, v.Integrity, v.Courage, v.Responsibility, v.Independence, len(s.History),
	)
}
