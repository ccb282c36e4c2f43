// Package config provides YAML-based tuning and level loading plus
// difficulty management for the game.
package config

// GoblinsConfig contains every tunable of the simulation. Durations are in
// ticks unless the field name says seconds; distances and speeds in pixels.
type GoblinsConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Knight     KnightConfig     `yaml:"knight"`
	Walker     WalkerConfig     `yaml:"walker"`
	Shooter    ShooterConfig    `yaml:"shooter"`
	Magician   ShooterConfig    `yaml:"magician"`
	Torch      TorchConfig      `yaml:"torch"`
	Flame      FlameConfig      `yaml:"flame"`
	Grave      GraveConfig      `yaml:"grave"`
	Session    SessionConfig    `yaml:"session"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// KnightConfig tunes the player character.
type KnightConfig struct {
	Speed            float64 `yaml:"speed"`
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	FrogMaxFallSpeed float64 `yaml:"frog_max_fall_speed"`
	DeadMaxFallSpeed float64 `yaml:"dead_max_fall_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	ClimbSpeed       float64 `yaml:"climb_speed"`
	KnockbackX       float64 `yaml:"knockback_x"`
	KnockbackY       float64 `yaml:"knockback_y"`
	LandingOffset    float64 `yaml:"landing_offset"`
	AttackCooldown   int     `yaml:"attack_cooldown"`
	Invincibility    int     `yaml:"invincibility"`
	DyingTicks       int     `yaml:"dying_ticks"`
	FrogTicks        int     `yaml:"frog_ticks"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WalkerConfig tunes the ground enemy that rises, walks and sinks.
type WalkerConfig struct {
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	Distance     Range   `yaml:"distance"`
	// StageSeconds are the spawn stage durations, drawn in whole seconds.
	StageSeconds [3]Range `yaml:"stage_seconds"`
	WalkCycle    int      `yaml:"walk_cycle"`
}

// ShooterConfig tunes a stationary enemy that fires at the player.
type ShooterConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Range           float64 `yaml:"range"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Cooldown        Range   `yaml:"cooldown"`
	InitialCooldown int     `yaml:"initial_cooldown"`
}

// TorchConfig tunes the thrown weapon.
type TorchConfig struct {
	SpeedX       float64 `yaml:"speed_x"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FrameTicks   int     `yaml:"frame_ticks"`
}

// FlameConfig tunes the ground fire left by a torch.
type FlameConfig struct {
	Lifetime   int `yaml:"lifetime"`
	FrameTicks int `yaml:"frame_ticks"`
}

// GraveConfig tunes weapon hits on graves.
type GraveConfig struct {
	HitCooldown  int     `yaml:"hit_cooldown"`
	HitsToSummon int     `yaml:"hits_to_summon"`
	SummonOffset float64 `yaml:"summon_offset"`
}

// SessionConfig tunes the rules around a run.
type SessionConfig struct {
	// Lives is used when the level does not set its own count.
	Lives int `yaml:"lives"`
	// ExtraLives is added to the level's count, never dropping below one.
	ExtraLives int `yaml:"extra_lives"`
	// WalkerOdds is the denominator of the per-tick chance of a random walker.
	WalkerOdds   int   `yaml:"walker_odds"`
	WalkerOffset Range `yaml:"walker_offset"`
	DefeatPoints int   `yaml:"defeat_points"`
	WinBonus     int   `yaml:"win_bonus"`
	LifeBonus    int   `yaml:"life_bonus"`
}

// RenderConfig sets how many world pixels one terminal cell covers.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	// HoldTicks is how long a key counts as held after its last press.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// OddsReduction is subtracted from the walker odds at max difficulty.
	OddsReduction int `yaml:"odds_reduction"`
	// CooldownScale shrinks shooter cooldowns by this fraction at max difficulty.
	CooldownScale float64 `yaml:"cooldown_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
