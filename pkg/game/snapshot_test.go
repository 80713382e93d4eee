package game

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/content/providers"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/messages"
	"github.com/cbodonnell/moralmaze/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileController(t *testing.T, repo repositories.Repository, clock *fakeClock) *SessionController {
	t.Helper()
	seed := int64(42)
	c, err := NewSessionController(context.Background(), NewSessionControllerOptions{
		Settings:   Settings{Width: 8, Height: 6, Seed: &seed},
		Repository: repo,
		Provider:   providers.NewLocalProvider(rand.New(rand.NewPCG(1, 2))),
		Now:        clock.Now,
		Rand:       rand.New(rand.NewPCG(3, 4)),
	})
	require.NoError(t, err)
	return c
}

func TestSessionController_RestoreFromSnapshot(t *testing.T) {
	ctx := context.Background()
	repo, err := repositories.NewFileRepository(filepath.Join(t.TempDir(), "save", "profile.json"))
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	first := newFileController(t, repo, clock)
	active := types.SortedCoords(first.state.ActiveDecisions)
	require.GreaterOrEqual(t, len(active), 2)

	started, err := first.StartDecision(ctx, active[0])
	require.NoError(t, err)
	choice := 0
	_, err = first.SubmitDecision(ctx, started.Question.ID, types.Answer{ChoiceID: &choice})
	require.NoError(t, err)

	_, err = first.StartDecision(ctx, active[1])
	require.NoError(t, err)

	from, to := openStep(first)
	d, _ := types.DirectionBetween(from, to)
	_, err = first.MutateWalls(ctx, []messages.WallMutation{{X: from.X, Y: from.Y, Direction: string(d), Action: "close"}})
	require.NoError(t, err)
	_, err = first.PlaceTrap(ctx, string(types.TrapMedkit), types.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	first.Close(ctx)

	second := newFileController(t, repo, clock)
	state := second.GetState(ctx)
	assert.True(t, state.HasProgress)
	assert.Equal(t, first.state.Age, state.Age)
	assert.Equal(t, first.state.Seed, second.state.Seed)
	assert.Len(t, second.state.History, 1)
	assert.True(t, second.state.VisitedNodes.Has(active[0]))
	assert.True(t, second.state.ActiveDecisions.Has(active[1]), "pending nodes come back as active")
	assert.Equal(t, 0, state.PendingDecisions)
	assert.False(t, second.maze.CanMove(from, d), "wall overrides are replayed")
	require.Len(t, second.state.Traps, 1)
	assert.Equal(t, types.TrapMedkit, second.state.Traps[0].Type)
	assert.Equal(t, first.state.TrapCharges.Charges, second.state.TrapCharges.Charges)
}

func TestSessionController_RestartClearsProgress(t *testing.T) {
	ctx := context.Background()
	repo, err := repositories.NewFileRepository(filepath.Join(t.TempDir(), "profile.json"))
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	first := newFileController(t, repo, clock)
	first.state.Age = 30
	first.Close(ctx)

	second := newFileController(t, repo, clock)
	assert.Equal(t, 30, second.GetState(ctx).Age)
	_, err = second.Restart(ctx)
	require.NoError(t, err)

	third := newFileController(t, repo, clock)
	assert.Equal(t, 10, third.GetState(ctx).Age)
	assert.NotEqual(t, int64(42), third.state.Seed)
}

func TestSessionController_DiscardsSnapshotForOtherDimensions(t *testing.T) {
	ctx := context.Background()
	repo, err := repositories.NewFileRepository(filepath.Join(t.TempDir(), "profile.json"))
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	first := newFileController(t, repo, clock)
	first.state.Age = 30
	first.Close(ctx)

	saved, err := repo.LoadSnapshot(ctx, repositories.DefaultProfileID)
	require.NoError(t, err)
	assert.Equal(t, 8, saved.Width)
	assert.Equal(t, 6, saved.Height)

	seed := int64(42)
	wider, err := NewSessionController(ctx, NewSessionControllerOptions{
		Settings:   Settings{Width: 10, Height: 6, Seed: &seed},
		Repository: repo,
		Provider:   providers.NewLocalProvider(rand.New(rand.NewPCG(1, 2))),
		Now:        clock.Now,
		Rand:       rand.New(rand.NewPCG(3, 4)),
	})
	require.NoError(t, err)
	state := wider.GetState(ctx)
	assert.Equal(t, 10, state.Age)
	assert.False(t, state.HasProgress)
	assert.Equal(t, 10, wider.maze.Width)
}
