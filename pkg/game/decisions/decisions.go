// Package decisions governs the decision-node lifecycle:
// dormant -> active -> pending -> resolved, with a dissolved side path
// that returns to active once its restore time passes.
package decisions

import (
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
)

// Pending is a question awaiting an answer.
type Pending struct {
	Question  types.Question
	Position  types.Coord
	StartedAt time.Time
}

// Manager tracks pending questions. It is not safe for concurrent use;
// the session controller serializes access.
type Manager struct {
	pending map[string]Pending
	// claimed holds nodes taken by Claim whose question is not yet held.
	claimed types.CoordSet
}

func NewManager() *Manager {
	return &Manager{
		pending: make(map[string]Pending),
		claimed: types.NewCoordSet(),
	}
}

// Reset forgets every pending question and claim.
func (m *Manager) Reset() {
	m.pending = make(map[string]Pending)
	m.claimed = types.NewCoordSet()
}

// InitActive replaces the active set with up to n decision nodes that are
// neither visited, dissolved nor pending, sampled without replacement.
func (m *Manager) InitActive(s *types.SessionState, nodes []types.Coord, n int, rng *rand.Rand) {
	var candidates []types.Coord
	for _, c := range nodes {
		if m.eligible(s, c) {
			candidates = append(candidates, c)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	s.ActiveDecisions = types.NewCoordSet(candidates...)
}

// SetActive replaces the active set wholesale. Coordinates that are not
// decision nodes, or are visited, dissolved or pending, are dropped. The
// accepted coordinates are returned in stable order.
func (m *Manager) SetActive(s *types.SessionState, coords []types.Coord, isDecisionNode func(types.Coord) bool) []types.Coord {
	active := types.NewCoordSet()
	for _, c := range coords {
		if isDecisionNode(c) && m.eligible(s, c) {
			active.Put(c)
		}
	}
	s.ActiveDecisions = active
	return types.SortedCoords(active)
}

func (m *Manager) eligible(s *types.SessionState, c types.Coord) bool {
	if s.VisitedNodes.Has(c) {
		return false
	}
	if _, ok := s.DissolvedNodes[c]; ok {
		return false
	}
	return !m.isPendingAt(c)
}

func (m *Manager) isPendingAt(c types.Coord) bool {
	if m.claimed.Has(c) {
		return true
	}
	for _, p := range m.pending {
		if p.Position == c {
			return true
		}
	}
	return false
}

// Claim consumes c from the active set and reserves it until Hold or
// Reset. Exactly one caller can claim a given activation, and a claimed
// node cannot be reactivated in between.
func (m *Manager) Claim(s *types.SessionState, c types.Coord) error {
	if !s.ActiveDecisions.Has(c) || m.claimed.Has(c) {
		return types.Stale(types.ReasonNotActiveDecision, "%s is not an active decision node", c)
	}
	s.ActiveDecisions.Remove(c)
	m.claimed.Put(c)
	return nil
}

// Hold stores q as pending for the node at c and ends its claim.
func (m *Manager) Hold(q types.Question, c types.Coord, now time.Time) {
	m.claimed.Remove(c)
	m.pending[q.ID] = Pending{Question: q, Position: c, StartedAt: now}
}

// Lookup returns the pending question with id without consuming it.
func (m *Manager) Lookup(id string) (Pending, error) {
	p, ok := m.pending[id]
	if !ok {
		return Pending{}, types.Stale(types.ReasonQuestionNotFound, "question %q not found; re-trigger the decision", id)
	}
	return p, nil
}

// Take removes and returns the pending question with id. A second Take
// with the same id fails.
func (m *Manager) Take(id string) (Pending, error) {
	p, err := m.Lookup(id)
	if err != nil {
		return Pending{}, err
	}
	delete(m.pending, id)
	return p, nil
}

// PendingPositions returns the nodes of every pending question and of
// every claim still waiting for its question.
func (m *Manager) PendingPositions() []types.Coord {
	out := make([]types.Coord, 0, len(m.pending)+m.claimed.Size())
	for _, p := range m.pending {
		out = append(out, p.Position)
	}
	m.claimed.Each(func(c types.Coord) {
		out = append(out, c)
	})
	return out
}

// PendingCount returns the number of questions awaiting answers.
func (m *Manager) PendingCount() int {
	return len(m.pending)
}

// Dissolve moves an active node to the dissolved map until restoreAt.
func Dissolve(s *types.SessionState, c types.Coord, restoreAt time.Time) error {
	if !s.ActiveDecisions.Has(c) {
		return types.Stale(types.ReasonNotActiveDecision, "%s is not an active decision node", c)
	}
	s.ActiveDecisions.Remove(c)
	s.DissolvedNodes[c] = restoreAt
	return nil
}

// RestoreDissolved returns every dissolved node whose restore time has
// passed to the active set, unless it was visited meanwhile.
func (m *Manager) RestoreDissolved(s *types.SessionState, now time.Time) []types.Coord {
	var restored []types.Coord
	for c, at := range s.DissolvedNodes {
		if now.Before(at) {
			continue
		}
		delete(s.DissolvedNodes, c)
		if !s.VisitedNodes.Has(c) && !m.isPendingAt(c) {
			s.ActiveDecisions.Put(c)
			restored = append(restored, c)
		}
	}
	return restored
}

// Outcome is everything a resolved decision contributes to the session.
type Outcome struct {
	Answer     types.Answer
	Review     types.Review
	ValueDelta types.ValueDimensions
	Voices     map[string]string
}

// Resolve applies an answered question to s: growth, value delta, history
// and growth logs, and marks the node visited. minAge floors the age.
func Resolve(s *types.SessionState, p Pending, o Outcome, minAge int) (types.DecisionRecord, types.GrowthRecord) {
	record := types.DecisionRecord{
		Question:        p.Question,
		Answer:          o.Answer,
		Review:          o.Review,
		AgeAtDecision:   s.Age,
		StageAtDecision: s.Stage,
	}
	s.History = append(s.History, record)
	s.ApplyGrowth(o.Review.GrowthDelta, minAge)
	s.ApplyValueDelta(o.ValueDelta)

	growth := types.GrowthRecord{
		QuestionID:   p.Question.ID,
		Prompt:       p.Question.Prompt,
		Age:          s.Age,
		Stage:        s.Stage,
		ValueDelta:   o.ValueDelta,
		Perspectives: o.Voices,
	}
	s.GrowthHistory = append(s.GrowthHistory, growth)

	s.VisitedNodes.Put(p.Position)
	s.ActiveDecisions.Remove(p.Position)
	delete(s.DissolvedNodes, p.Position)
	return record, growth
}
