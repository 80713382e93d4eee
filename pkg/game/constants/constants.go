package constants

import "time"

const (
	// DefaultMazeWidth is the number of columns in a generated maze
	DefaultMazeWidth int = 24
	// DefaultMazeHeight is the number of rows in a generated maze
	DefaultMazeHeight int = 18
	// DecisionNodeProbability is the chance a junction becomes a decision node
	DecisionNodeProbability float64 = 0.3
	// MinDecisionNodes is the floor on decision nodes per maze
	MinDecisionNodes int = 5
	// MaxActiveDecisions is the number of decision nodes sampled as active at session start
	MaxActiveDecisions int = 8
	// MaxSeed is the upper bound of a randomly drawn maze seed
	MaxSeed int64 = 999_999

	// DefaultStartAge is the age of a fresh session
	DefaultStartAge int = 10
	// DefaultGoalAge is the age that completes the game
	DefaultGoalAge int = 90

	// MaxHealth is the hero's full health
	MaxHealth int = 100

	// HeroJumpCharges is the fresh-session hero jump grant
	HeroJumpCharges int = 2
	// HeroJumpAgeStep is the years of age per bonus hero jump
	HeroJumpAgeStep int = 5
	// HeroEscapeAgeStep is the years of age per escape charge
	HeroEscapeAgeStep int = 10
	// ShieldAgeStep is the years of age per shield charge
	ShieldAgeStep int = 20
	// ShieldCap is the most shield charges the hero can hold
	ShieldCap int = 1
	// ShieldCharges is the fresh-session shield grant
	ShieldCharges int = 1
	// ShieldDuration is how long an activated shield lasts
	ShieldDuration time.Duration = 10 * time.Second

	// AllyJumpCharges is the fresh-session ally jump grant
	AllyJumpCharges int = 2
	// BlinkCharges is the fresh-session blink grant
	BlinkCharges int = 1
	// TrapCharges is the fresh-session trap grant
	TrapCharges int = 1
	// DissolveCharges is the fresh-session dissolve grant
	DissolveCharges int = 1
	// DefaultDissolveCap is the default ceiling on dissolve charges
	DefaultDissolveCap int = 2

	// DissolveRestoreDelay is how long a dissolved node stays out of play
	DissolveRestoreDelay time.Duration = 15 * time.Second
	// ExpandRestoreDelay is how long walls opened by the ally stay open
	ExpandRestoreDelay time.Duration = 20 * time.Second

	// TrapRevealDelay is how long a placed trap stays hidden
	TrapRevealDelay time.Duration = 30 * time.Second
	// TrapLifetime is how long a placed trap exists
	TrapLifetime time.Duration = 60 * time.Second
	// TrapPrimaryEffectChance is the chance a trap does what its type says
	TrapPrimaryEffectChance float64 = 0.8
	// TrapDamage is the health lost to a damaging trap
	TrapDamage int = 30
	// TrapHeal is the health gained from a healing trap
	TrapHeal int = 20

	// DefaultFreezeDamagePercent is the health lost to a freeze hit
	DefaultFreezeDamagePercent float64 = 5.0

	// JumpMinDistance and JumpMaxDistance bound hero/ally jumps and lift throws
	JumpMinDistance int = 2
	JumpMaxDistance int = 3
	// BlinkMaxDistance is the farthest blink target from the hero
	BlinkMaxDistance int = 3
	// LiftReach is the farthest straight-line distance a lift can grab
	LiftReach int = 2

	// RecentTagWindow is the number of recent history tags avoided by local question selection
	RecentTagWindow int = 5
	// GrowthBase is the base multiplier of the local growth formula
	GrowthBase int = 4
	// VoiceRoleAgeThreshold is the age at which voice roles flip to child/past self
	VoiceRoleAgeThreshold int = 60
)
