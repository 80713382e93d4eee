package decisions

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func coords(n int) []types.Coord {
	out := make([]types.Coord, n)
	for i := range out {
		out[i] = types.Coord{X: i, Y: i % 3}
	}
	return out
}

func TestManager_InitActive(t *testing.T) {
	nodes := coords(12)
	s := types.NewSessionState()
	s.VisitedNodes.Put(nodes[0])
	s.DissolvedNodes[nodes[1]] = t0

	m := NewManager()
	m.InitActive(s, nodes, 8, rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, 8, s.ActiveDecisions.Size())
	assert.False(t, s.ActiveDecisions.Has(nodes[0]))
	assert.False(t, s.ActiveDecisions.Has(nodes[1]))
	s.ActiveDecisions.Each(func(c types.Coord) {
		assert.Contains(t, nodes, c)
	})

	few := types.NewSessionState()
	m.InitActive(few, nodes[:3], 8, rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, 3, few.ActiveDecisions.Size())
}

func TestManager_InitActive_deterministic(t *testing.T) {
	nodes := coords(20)
	a, b := types.NewSessionState(), types.NewSessionState()
	NewManager().InitActive(a, nodes, 8, rand.New(rand.NewPCG(9, 9)))
	NewManager().InitActive(b, nodes, 8, rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, types.SortedCoords(a.ActiveDecisions), types.SortedCoords(b.ActiveDecisions))
}

func TestManager_ClaimExactlyOnce(t *testing.T) {
	c := types.Coord{X: 2, Y: 2}
	s := types.NewSessionState()
	s.ActiveDecisions.Put(c)
	m := NewManager()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		wins int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if m.Claim(s, c) == nil {
				wins++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	err := m.Claim(s, c)
	assert.ErrorIs(t, err, types.ErrStaleReference)
}

func TestManager_ClaimReservesUntilHold(t *testing.T) {
	c := types.Coord{X: 2, Y: 1}
	isNode := func(types.Coord) bool { return true }
	s := types.NewSessionState()
	s.ActiveDecisions.Put(c)
	m := NewManager()

	require.NoError(t, m.Claim(s, c))
	assert.Equal(t, []types.Coord{c}, m.PendingPositions())

	// a resync between claim and hold cannot reactivate the node
	assert.Empty(t, m.SetActive(s, []types.Coord{c}, isNode))
	s.ActiveDecisions.Put(c)
	assert.ErrorIs(t, m.Claim(s, c), types.ErrStaleReference)

	s.ActiveDecisions = types.NewCoordSet()
	s.DissolvedNodes[c] = t0
	assert.Empty(t, m.RestoreDissolved(s, t0))
	assert.False(t, s.ActiveDecisions.Has(c))

	m.Hold(types.Question{ID: "q1", Prompt: "p", Options: []string{"a", "b"}}, c, t0)
	assert.Equal(t, []types.Coord{c}, m.PendingPositions())
	assert.Empty(t, m.SetActive(s, []types.Coord{c}, isNode))

	other := types.Coord{X: 4, Y: 0}
	s.ActiveDecisions.Put(other)
	require.NoError(t, m.Claim(s, other))
	m.Reset()
	assert.Empty(t, m.PendingPositions())
	assert.Equal(t, []types.Coord{other}, m.SetActive(s, []types.Coord{other}, isNode))
}

func TestManager_PendingLifecycle(t *testing.T) {
	c := types.Coord{X: 1, Y: 0}
	s := types.NewSessionState()
	s.Age, s.Stage = 10, types.StagePreteen
	s.ActiveDecisions.Put(c)
	m := NewManager()

	require.NoError(t, m.Claim(s, c))
	q := types.Question{ID: "q1", Prompt: "p", Options: []string{"a", "b"}, Difficulty: 0.5, Tags: []string{"courage"}}
	m.Hold(q, c, t0)

	// a resync cannot reactivate a node with a question outstanding
	accepted := m.SetActive(s, []types.Coord{c}, func(types.Coord) bool { return true })
	assert.Empty(t, accepted)

	_, err := m.Lookup("missing")
	assert.ErrorIs(t, err, types.ErrStaleReference)

	p, err := m.Take("q1")
	require.NoError(t, err)
	_, err = m.Take("q1")
	assert.ErrorIs(t, err, types.ErrStaleReference)

	choice := 1
	record, growth := Resolve(s, p, Outcome{
		Answer:     types.Answer{ChoiceID: &choice},
		Review:     types.Review{GrowthDelta: 3, MatchScore: 0.6, Feedback: "ok"},
		ValueDelta: types.ValueDimensions{Courage: 2},
		Voices:     map[string]string{"friend": "nice"},
	}, 10)

	assert.Equal(t, 10, record.AgeAtDecision)
	assert.Equal(t, types.StagePreteen, record.StageAtDecision)
	assert.Equal(t, 13, growth.Age)
	assert.Equal(t, types.StageTeen, growth.Stage)
	assert.Equal(t, 13, s.Age)
	assert.Equal(t, 3, s.TotalGrowth)
	assert.Equal(t, 2, s.Values.Courage)
	assert.True(t, s.VisitedNodes.Has(c))
	assert.Len(t, s.History, 1)
	assert.Len(t, s.GrowthHistory, 1)
	assert.Equal(t, 0, m.PendingCount())
}

func TestManager_SetActive(t *testing.T) {
	s := types.NewSessionState()
	visited := types.Coord{X: 0, Y: 1}
	dissolved := types.Coord{X: 0, Y: 2}
	s.VisitedNodes.Put(visited)
	s.DissolvedNodes[dissolved] = t0
	nodes := types.NewCoordSet(types.Coord{X: 1, Y: 1}, types.Coord{X: 2, Y: 2}, visited, dissolved)

	got := NewManager().SetActive(s, []types.Coord{
		{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 5, Y: 5}, visited, dissolved, {X: 1, Y: 1},
	}, nodes.Has)

	assert.Equal(t, []types.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}}, got)
	assert.Equal(t, 2, s.ActiveDecisions.Size())
}

func TestDissolveAndRestore(t *testing.T) {
	c := types.Coord{X: 3, Y: 1}
	s := types.NewSessionState()
	s.ActiveDecisions.Put(c)
	m := NewManager()

	require.NoError(t, Dissolve(s, c, t0.Add(15*time.Second)))
	assert.False(t, s.ActiveDecisions.Has(c))
	assert.Contains(t, s.DissolvedNodes, c)
	assert.ErrorIs(t, Dissolve(s, c, t0), types.ErrStaleReference)

	assert.Empty(t, m.RestoreDissolved(s, t0.Add(14*time.Second)))
	assert.False(t, s.ActiveDecisions.Has(c))

	assert.Equal(t, []types.Coord{c}, m.RestoreDissolved(s, t0.Add(15*time.Second)))
	assert.True(t, s.ActiveDecisions.Has(c))
	assert.Empty(t, s.DissolvedNodes)
}

func TestRestoreDissolved_skipsVisited(t *testing.T) {
	c := types.Coord{X: 3, Y: 1}
	s := types.NewSessionState()
	s.DissolvedNodes[c] = t0
	s.VisitedNodes.Put(c)

	assert.Empty(t, NewManager().RestoreDissolved(s, t0))
	assert.False(t, s.ActiveDecisions.Has(c))
	assert.Empty(t, s.DissolvedNodes)
}

func TestHeuristicValueDelta(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		growth int
		want   types.ValueDimensions
	}{
		{name: "matching tags", tags: []string{"Courage", "empathy", "fairness"}, growth: 4, want: types.ValueDimensions{Courage: 2, Empathy: 2}},
		{name: "small growth", tags: []string{"integrity"}, growth: 1, want: types.ValueDimensions{Integrity: 1}},
		{name: "negative growth", tags: []string{"independence"}, growth: -5, want: types.ValueDimensions{Independence: -2}},
		{name: "no matching tag goes to responsibility", tags: []string{"sharing"}, growth: 3, want: types.ValueDimensions{Responsibility: 2}},
		{name: "duplicate tags count once", tags: []string{"courage", "COURAGE"}, growth: 2, want: types.ValueDimensions{Courage: 2}},
		{name: "zero growth", tags: []string{"courage"}, growth: 0, want: types.ValueDimensions{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeuristicValueDelta(types.Question{Tags: tt.tags}, tt.growth)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVoices(t *testing.T) {
	q := types.Question{Options: []string{"Tell the truth", "Hide it"}}
	choice := 0
	delta := types.ValueDimensions{Integrity: 2}

	young := DefaultVoices(30, q, types.Answer{ChoiceID: &choice}, delta)
	assert.Len(t, young, 3)
	assert.Contains(t, young[VoiceParents], "Tell the truth")
	assert.Contains(t, young[VoiceFutureSelf], "[E+0 I+2 Cg+0 R+0 In+0]")

	old := DefaultVoices(70, q, types.Answer{FreeText: "I would own it"}, delta)
	assert.Contains(t, old, VoiceChild)
	assert.Contains(t, old, VoicePastSelf)
	assert.Contains(t, old[VoiceChild], "I would own it")

	normalized := NormalizeVoices(30, map[string]string{"role1": "from role one", "friend": "  "}, young)
	assert.Equal(t, "from role one", normalized[VoiceParents])
	assert.Equal(t, young[VoiceFriend], normalized[VoiceFriend])
	assert.Equal(t, young[VoiceFutureSelf], normalized[VoiceFutureSelf])

	senior := NormalizeVoices(65, map[string]string{"role3": "looking back"}, old)
	assert.Equal(t, "looking back", senior[VoicePastSelf])
	assert.Equal(t, old[VoiceChild], senior[VoiceChild])

	assert.Len(t, NormalizeVoices(30, nil, young), 3)
}

func TestFallbackLifeSummary(t *testing.T) {
	s := types.NewSessionState()
	s.Age = 42
	s.Values = types.ValueDimensions{Empathy: 3, Integrity: 1, Courage: -1, Responsibility: 5, Independence: 0}
	s.History = make([]types.DecisionRecord, 7)

	assert.Equal(t,
		"Your journey closes at age 42. Emp:3, Int:1, Cou:-1, Resp:5, Ind:0. You made 7 choices; these choices shaped a path of growing judgment and character.",
		FallbackLifeSummary(s))
}
