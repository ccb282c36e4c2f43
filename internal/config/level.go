package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel is wrapped by every level validation failure.
var ErrInvalidLevel = errors.New("config: invalid level")

// Terrain kinds accepted in level files.
const (
	TerrainGround   = "ground"
	TerrainSolid    = "solid"
	TerrainPlatform = "platform"
	TerrainLadder   = "ladder"
	TerrainGrave    = "grave"
	TerrainWinArea  = "win_area"
)

// Enemy kinds accepted in level files.
const (
	EnemyWalker   = "walker"
	EnemyShooter  = "shooter"
	EnemyMagician = "magician"
)

// Level describes the static content of one world.
type Level struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	// Size and HeroStart are pointers so a missing entry can be told apart
	// from a zero value.
	Size      *[2]float64   `yaml:"size"`
	HeroStart *[2]float64   `yaml:"hero_start"`
	Lives     int           `yaml:"lives"`
	Terrain   []TerrainSpec `yaml:"terrain"`
	Enemies   []EnemySpec   `yaml:"enemies"`
}

// TerrainSpec places one piece of static geometry.
type TerrainSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// EnemySpec places one enemy present at level start.
type EnemySpec struct {
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Direction string  `yaml:"direction"`
}

// Validate checks the level for missing or malformed entries.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if l.Size == nil {
		return fmt.Errorf("%w: %s: size must be specified", ErrInvalidLevel, l.ID)
	}
	if l.Size[0] <= 0 || l.Size[1] <= 0 {
		return fmt.Errorf("%w: %s: size must be positive, got %v", ErrInvalidLevel, l.ID, *l.Size)
	}
	if l.HeroStart == nil {
		return fmt.Errorf("%w: %s: hero start position must be specified", ErrInvalidLevel, l.ID)
	}
	if l.Lives < 0 {
		return fmt.Errorf("%w: %s: lives must not be negative", ErrInvalidLevel, l.ID)
	}
	for i, t := range l.Terrain {
		switch t.Kind {
		case TerrainGround, TerrainSolid, TerrainPlatform, TerrainLadder, TerrainGrave, TerrainWinArea:
		default:
			return fmt.Errorf("%w: %s: terrain %d: unknown kind %q", ErrInvalidLevel, l.ID, i, t.Kind)
		}
		if t.W <= 0 || t.H <= 0 {
			return fmt.Errorf("%w: %s: terrain %d: size must be positive", ErrInvalidLevel, l.ID, i)
		}
	}
	for i, e := range l.Enemies {
		switch e.Kind {
		case EnemyShooter, EnemyMagician:
		case EnemyWalker:
			if e.Direction != "left" && e.Direction != "right" {
				return fmt.Errorf("%w: %s: enemy %d: walker direction must be left or right", ErrInvalidLevel, l.ID, i)
			}
		default:
			return fmt.Errorf("%w: %s: enemy %d: unknown kind %q", ErrInvalidLevel, l.ID, i, e.Kind)
		}
	}
	return nil
}

// ParseLevel decodes and validates a level document.
func ParseLevel(data []byte) (Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return lvl, fmt.Errorf("failed to parse level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return lvl, err
	}
	return lvl, nil
}

// LoadLevel reads a level file from disk.
func LoadLevel(filePath string) (Level, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level %s: %w", filePath, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return lvl, fmt.Errorf("level %s: %w", filePath, err)
	}
	return lvl, nil
}

// BuiltinLevels returns the levels shipped with the binary, sorted by id.
func BuiltinLevels() ([]Level, error) {
	entries, err := fs.ReadDir(builtinLevelFS, "defaults/levels")
	if err != nil {
		return nil, fmt.Errorf("failed to list builtin levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, entry := range entries {
		data, err := builtinLevelFS.ReadFile(path.Join("defaults/levels", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin level %s: %w", entry.Name(), err)
		}
		lvl, err := ParseLevel(data)
		if err != nil {
			return nil, fmt.Errorf("builtin level %s: %w", entry.Name(), err)
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// StartingLives returns the life count for a run of this level under the
// given session rules.
func (l Level) StartingLives(s SessionConfig) int {
	lives := s.Lives
	if l.Lives > 0 {
		lives = l.Lives
	}
	return max(1, lives+s.ExtraLives)
}
