package config

import "math"

// DifficultyManager scales spawn pressure with score or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// WalkerOdds returns the denominator of the per-tick random walker chance.
// Higher difficulty means smaller odds and more walkers; never below 2.
func (d *DifficultyManager) WalkerOdds(base int, score int, ticks int) int {
	level := d.Level(score, ticks)
	odds := base - int(level*float64(d.cfg.Scaling.OddsReduction))
	if odds < 2 {
		odds = 2
	}
	return odds
}

// Cooldown shrinks a shooter cooldown range as difficulty rises. The
// minimum stays at least one tick.
func (d *DifficultyManager) Cooldown(base Range, score int, ticks int) Range {
	level := d.Level(score, ticks)
	factor := 1.0 - level*d.cfg.Scaling.CooldownScale
	out := Range{
		Min: int(math.Round(float64(base.Min) * factor)),
		Max: int(math.Round(float64(base.Max) * factor)),
	}
	if out.Min < 1 {
		out.Min = 1
	}
	if out.Max < out.Min {
		out.Max = out.Min
	}
	return out
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
