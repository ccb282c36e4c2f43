package config

import "embed"

//go:embed defaults/goblins.yaml
var defaultGoblinsYAML []byte

//go:embed defaults/levels/*.yaml
var builtinLevelFS embed.FS

// DefaultGoblinsConfig returns the hardcoded tuning, used when no YAML source
// can be parsed. Values assume 30 ticks per second.
func DefaultGoblinsConfig() GoblinsConfig {
	return GoblinsConfig{
		TickRate: 30,
		Knight: KnightConfig{
			Speed:            5,
			Gravity:          2,
			MaxFallSpeed:     8,
			FrogMaxFallSpeed: 3,
			DeadMaxFallSpeed: 3,
			JumpImpulse:      -10,
			ClimbSpeed:       4,
			KnockbackX:       30,
			KnockbackY:       -10,
			LandingOffset:    3,
			AttackCooldown:   10,
			Invincibility:    90,
			DyingTicks:       150,
			FrogTicks:        150,
		},
		Walker: WalkerConfig{
			Speed:        3,
			Gravity:      2,
			MaxFallSpeed: 8,
			Distance:     Range{Min: 150, Max: 300},
			StageSeconds: [3]Range{{Min: 1, Max: 2}, {Min: 1, Max: 2}, {Min: 1, Max: 3}},
			WalkCycle:    30,
		},
		Shooter: ShooterConfig{
			Width:           16,
			Height:          32,
			Range:           200,
			ProjectileSpeed: 4,
			Cooldown:        Range{Min: 30, Max: 300},
			InitialCooldown: 10,
		},
		Magician: ShooterConfig{
			Width:           24,
			Height:          32,
			Range:           240,
			ProjectileSpeed: 3,
			Cooldown:        Range{Min: 60, Max: 180},
			InitialCooldown: 30,
		},
		Torch: TorchConfig{
			SpeedX:       8,
			JumpImpulse:  -10,
			Gravity:      2,
			MaxFallSpeed: 8,
			FrameTicks:   8,
		},
		Flame: FlameConfig{
			Lifetime:   60,
			FrameTicks: 4,
		},
		Grave: GraveConfig{
			HitCooldown:  30,
			HitsToSummon: 15,
			SummonOffset: 32,
		},
		Session: SessionConfig{
			Lives:        2,
			WalkerOdds:   500,
			WalkerOffset: Range{Min: 50, Max: 199},
			DefeatPoints: 100,
			WinBonus:     1000,
			LifeBonus:    500,
		},
		Render: RenderConfig{
			CellWidth:  4,
			CellHeight: 10,
			HoldTicks:  12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 9000,
			},
			Scaling: ScalingConfig{
				OddsReduction: 300,
				CooldownScale: 0.5,
			},
		},
	}
}
