package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/content/providers"
	"github.com/cbodonnell/moralmaze/pkg/game/charges"
	"github.com/cbodonnell/moralmaze/pkg/game/constants"
	"github.com/cbodonnell/moralmaze/pkg/game/decisions"
	"github.com/cbodonnell/moralmaze/pkg/game/hazards"
	"github.com/cbodonnell/moralmaze/pkg/game/maze"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/cbodonnell/moralmaze/pkg/queue"
	"github.com/cbodonnell/moralmaze/pkg/repositories"
)

// Settings are the session parameters the controller needs.
type Settings struct {
	Width  int
	Height int
	// Seed fixes the first maze when set. Restarts always draw a new seed.
	Seed        *int64
	StartAge    int
	GoalAge     int
	DissolveCap int
	ProfileID   string
}

func DefaultSettings() Settings {
	return Settings{
		Width:       constants.DefaultMazeWidth,
		Height:      constants.DefaultMazeHeight,
		StartAge:    constants.DefaultStartAge,
		GoalAge:     constants.DefaultGoalAge,
		DissolveCap: constants.DefaultDissolveCap,
		ProfileID:   repositories.DefaultProfileID,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.StartAge <= 0 {
		s.StartAge = d.StartAge
	}
	if s.GoalAge <= 0 {
		s.GoalAge = d.GoalAge
	}
	if s.DissolveCap <= 0 {
		s.DissolveCap = d.DissolveCap
	}
	if s.ProfileID == "" {
		s.ProfileID = d.ProfileID
	}
	return s
}

// SessionController owns the maze and the session state and serializes
// every operation on them behind one lock.
type SessionController struct {
	mu sync.Mutex

	settings   Settings
	repository repositories.Repository
	provider   providers.ContentProvider
	fallback   *providers.LocalProvider
	eventQueue queue.Queue
	now        func() time.Time
	rng        *rand.Rand
	logger     *log.Logger

	maze      *maze.Maze
	state     *types.SessionState
	decisions *decisions.Manager
	dissolve  charges.Spec
	// restored is set when the session was rehydrated from a snapshot.
	restored bool
	// epoch changes on every restart so work begun before a restart can
	// detect it after releasing the lock.
	epoch int
}

// NewSessionControllerOptions contains options for creating a new SessionController.
type NewSessionControllerOptions struct {
	Settings   Settings
	Repository repositories.Repository
	Provider   providers.ContentProvider
	// Fallback substitutes for Provider when it fails. Defaults to a local provider.
	Fallback *providers.LocalProvider
	// EventQueue receives stream messages. Optional.
	EventQueue queue.Queue
	Now        func() time.Time
	Rand       *rand.Rand
}

// NewSessionController rehydrates the profile's snapshot when one exists and
// starts a fresh session otherwise.
func NewSessionController(ctx context.Context, opts NewSessionControllerOptions) (*SessionController, error) {
	if opts.Repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	c := &SessionController{
		settings:   opts.Settings.withDefaults(),
		repository: opts.Repository,
		provider:   opts.Provider,
		fallback:   opts.Fallback,
		eventQueue: opts.EventQueue,
		now:        opts.Now,
		rng:        opts.Rand,
		logger:     log.Default().Named("session"),
		decisions:  decisions.NewManager(),
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.fallback == nil {
		c.fallback = providers.NewLocalProvider(nil)
	}
	if c.provider == nil {
		c.provider = c.fallback
	}

	now := c.now()
	snapshot, err := c.repository.LoadSnapshot(ctx, c.settings.ProfileID)
	switch {
	case err == nil:
		if err := c.restore(snapshot, now); err != nil {
			c.logger.Warn("Discarding unusable snapshot: %v", err)
			if err := c.reset(c.initialSeed(), now); err != nil {
				return nil, err
			}
		} else {
			c.restored = true
		}
	case repositories.IsNotFound(err):
		if err := c.reset(c.initialSeed(), now); err != nil {
			return nil, err
		}
	default:
		c.logger.Warn("Failed to load snapshot, starting fresh: %v", err)
		if err := c.reset(c.initialSeed(), now); err != nil {
			return nil, err
		}
	}

	c.regenerate(now)
	c.persist(ctx, now)
	c.logger.Info("Session ready: seed %d, age %d, %d active decisions", c.state.Seed, c.state.Age, c.state.ActiveDecisions.Size())
	return c, nil
}

func (c *SessionController) initialSeed() int64 {
	if c.settings.Seed != nil {
		return *c.settings.Seed
	}
	return c.drawSeed()
}

func (c *SessionController) drawSeed() int64 {
	return 1 + c.rng.Int64N(constants.MaxSeed)
}

// reset builds a new maze from seed and a fresh state on it.
func (c *SessionController) reset(seed int64, now time.Time) error {
	m, err := maze.Generate(c.settings.Width, c.settings.Height, seed)
	if err != nil {
		return fmt.Errorf("failed to generate maze: %v", err)
	}
	c.maze = m
	c.state = c.freshState(seed, now)
	c.dissolve = charges.Dissolve(c.state.DissolveCap)
	c.decisions.Reset()
	c.decisions.InitActive(c.state, m.DecisionNodes(), constants.MaxActiveDecisions, c.rng)
	c.epoch++
	return nil
}

func (c *SessionController) freshState(seed int64, now time.Time) *types.SessionState {
	s := types.NewSessionState()
	s.Age = c.settings.StartAge
	s.Stage = types.StageForAge(s.Age)
	s.Seed = seed
	s.HeroHealth = constants.MaxHealth
	s.Hero = c.maze.Start
	s.Ally = types.Coord{X: min(c.maze.Width-1, c.maze.Start.X+1), Y: c.maze.Start.Y}

	s.HeroJump = types.AgeMeter{Charges: constants.HeroJumpCharges, Checkpoint: s.Age}
	s.HeroEscape = types.AgeMeter{}
	s.Shield = types.AgeMeter{Charges: constants.ShieldCharges}

	s.AllyJump = types.Meter{Charges: constants.AllyJumpCharges, LastTick: now}
	s.Freeze = types.Meter{LastTick: now}
	s.Expand = types.Meter{LastTick: now}
	s.Lift = types.Meter{LastTick: now}
	s.Dissolve = types.Meter{Charges: constants.DissolveCharges, LastTick: now}
	s.Blink = types.Meter{Charges: constants.BlinkCharges, LastTick: now}
	s.TrapCharges = types.Meter{Charges: constants.TrapCharges, LastTick: now}
	s.DissolveCap = c.settings.DissolveCap
	return s
}

// regenerate runs every time-driven pass: charge regeneration, dissolved
// node restoration, trap expiry, expansion closing and shield expiry.
func (c *SessionController) regenerate(now time.Time) {
	s := c.state
	charges.AllyJump.Replenish(&s.AllyJump, now)
	charges.Freeze.Replenish(&s.Freeze, now)
	charges.Expand.Replenish(&s.Expand, now)
	charges.Lift.Replenish(&s.Lift, now)
	charges.Blink.Replenish(&s.Blink, now)
	charges.Trap.Replenish(&s.TrapCharges, now)
	c.dissolve.Replenish(&s.Dissolve, now)
	c.dissolve.Clamp(&s.Dissolve)
	c.regenerateAge()

	if restored := c.decisions.RestoreDissolved(s, now); len(restored) > 0 {
		c.logger.Debug("Restored %d dissolved decision nodes", len(restored))
	}
	hazards.Expire(s, now)
	c.closeExpansions(now)
	if s.ShieldActiveUntil != nil && !s.ShieldActiveUntil.After(now) {
		s.ShieldActiveUntil = nil
	}
}

// regenerateAge applies the age-gated grants for the current age.
func (c *SessionController) regenerateAge() {
	s := c.state
	charges.HeroJump.Replenish(&s.HeroJump, s.Age)
	charges.HeroEscape.Replenish(&s.HeroEscape, s.Age)
	charges.Shield.Replenish(&s.Shield, s.Age)
}

// persist writes the snapshot. Failures are logged and the in-memory
// state is kept.
func (c *SessionController) persist(ctx context.Context, now time.Time) {
	if err := c.repository.SaveSnapshot(ctx, c.settings.ProfileID, c.toSnapshot(now)); err != nil {
		c.logger.Error("Failed to save snapshot: %v", err)
	}
}

// Close flushes the session to the repository.
func (c *SessionController) Close(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persist(ctx, c.now())
}

// Checkpoint runs the time-driven passes, saves the session and publishes
// the resulting state to stream subscribers.
func (c *SessionController) Checkpoint(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	c.regenerate(now)
	c.commit(ctx, now)
}

func (c *SessionController) hasProgress() bool {
	return c.restored || len(c.state.History) > 0 || c.state.Age > c.settings.StartAge
}

// decisionAt reports whether arriving at p should trigger a decision.
func (c *SessionController) decisionAt(p types.Coord) (bool, *types.Coord) {
	if c.state.ActiveDecisions.Has(p) {
		node := p
		return true, &node
	}
	return false, nil
}
