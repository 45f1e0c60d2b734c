// Package config provides YAML-based game configuration loading and
// validation for the quest.
package config

import (
	"errors"
	"fmt"
)

// QuestConfig contains all tunables for the quest and its modules.
type QuestConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Narrative NarrativeConfig `yaml:"narrative"`
	Shoot     ShootConfig     `yaml:"shoot"`
	Dodge     DodgeConfig     `yaml:"dodge"`
	Catch     CatchConfig     `yaml:"catch"`
	Boss      BossConfig      `yaml:"boss"`
}

// FieldConfig is the size of the play field in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines persistent player parameters.
type PlayerConfig struct {
	Lives     int `yaml:"lives"`
	MaxMagic  int `yaml:"max_magic"`
	BossMagic int `yaml:"boss_magic"` // Magic needed to enter the boss encounter
	HubSpeed  int `yaml:"hub_speed"`  // Pixels per tick in the hub
	Size      int `yaml:"size"`
}

// NarrativeConfig defines the intro story.
type NarrativeConfig struct {
	BeatMs int      `yaml:"beat_ms"`
	Beats  []string `yaml:"beats"`
}

// Reward is what a won drill adds to the player.
type Reward struct {
	Score int `yaml:"reward_score"`
	Magic int `yaml:"reward_magic"`
}

// ShootConfig defines the moving-target shooting drill.
type ShootConfig struct {
	DurationS     float64 `yaml:"duration_s"`
	RequiredScore int     `yaml:"required_score"`
	SpawnMs       int     `yaml:"spawn_ms"`
	TargetSize    int     `yaml:"target_size"`
	MinSpeed      int     `yaml:"min_speed"`
	MaxSpeed      int     `yaml:"max_speed"`
	Reward        `yaml:",inline"`
}

// DodgeConfig defines the falling-projectile survival drill.
type DodgeConfig struct {
	DurationS      float64 `yaml:"duration_s"`
	SpawnMs        int     `yaml:"spawn_ms"`
	PlayerSpeed    int     `yaml:"player_speed"`
	PlayerSize     int     `yaml:"player_size"`
	ProjectileSize int     `yaml:"projectile_size"`
	MinSpeed       int     `yaml:"min_speed"`
	MaxSpeed       int     `yaml:"max_speed"`
	Reward         `yaml:",inline"`
}

// CatchConfig defines the pop-up target reaction drill.
type CatchConfig struct {
	DurationS      float64 `yaml:"duration_s"`
	RequiredScore  int     `yaml:"required_score"`
	TargetSize     int     `yaml:"target_size"`
	Margin         int     `yaml:"margin"`
	InitialDelayMs int     `yaml:"initial_delay_ms"`
	MinDelayMs     int     `yaml:"min_delay_ms"`
	DelayStepMs    int     `yaml:"delay_step_ms"`
	VisibleMs      int     `yaml:"visible_ms"`
	Reward         `yaml:",inline"`
}

// PatternKind names a boss attack pattern.
type PatternKind string

const (
	PatternStraight PatternKind = "straight" // One projectile straight down
	PatternSpread   PatternKind = "spread"   // One angled projectile per angle
	PatternPause    PatternKind = "pause"    // Fires nothing
)

// AttackPattern is one entry of the boss's firing cycle.
type AttackPattern struct {
	Kind     PatternKind `yaml:"kind"`
	PeriodMs int         `yaml:"period_ms"`
	Angles   []float64   `yaml:"angles"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	Health          int             `yaml:"health"`
	Damage          int             `yaml:"damage"`
	Size            int             `yaml:"size"`
	PlayerSpeed     int             `yaml:"player_speed"`
	PlayerSize      int             `yaml:"player_size"`
	ShotSize        int             `yaml:"shot_size"`
	ShotSpeed       int             `yaml:"shot_speed"`
	ShotCooldownMs  int             `yaml:"shot_cooldown_ms"`
	ProjectileSpeed int             `yaml:"projectile_speed"`
	AngledDrift     float64         `yaml:"angled_drift"`
	PatternMs       int             `yaml:"pattern_ms"`
	Patterns        []AttackPattern `yaml:"patterns"`
}

// Validate checks that every tunable is usable.
func (c QuestConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be > 0", name))
		}
	}

	positive("field.width", float64(c.Field.Width))
	positive("field.height", float64(c.Field.Height))
	positive("player.lives", float64(c.Player.Lives))
	positive("player.max_magic", float64(c.Player.MaxMagic))
	positive("player.size", float64(c.Player.Size))
	positive("narrative.beat_ms", float64(c.Narrative.BeatMs))

	positive("shoot.duration_s", c.Shoot.DurationS)
	positive("shoot.required_score", float64(c.Shoot.RequiredScore))
	positive("shoot.spawn_ms", float64(c.Shoot.SpawnMs))
	positive("shoot.target_size", float64(c.Shoot.TargetSize))
	positive("shoot.min_speed", float64(c.Shoot.MinSpeed))

	positive("dodge.duration_s", c.Dodge.DurationS)
	positive("dodge.spawn_ms", float64(c.Dodge.SpawnMs))
	positive("dodge.player_size", float64(c.Dodge.PlayerSize))
	positive("dodge.projectile_size", float64(c.Dodge.ProjectileSize))
	positive("dodge.min_speed", float64(c.Dodge.MinSpeed))

	positive("catch.duration_s", c.Catch.DurationS)
	positive("catch.required_score", float64(c.Catch.RequiredScore))
	positive("catch.target_size", float64(c.Catch.TargetSize))
	positive("catch.initial_delay_ms", float64(c.Catch.InitialDelayMs))
	positive("catch.min_delay_ms", float64(c.Catch.MinDelayMs))
	positive("catch.visible_ms", float64(c.Catch.VisibleMs))

	positive("boss.health", float64(c.Boss.Health))
	positive("boss.damage", float64(c.Boss.Damage))
	positive("boss.size", float64(c.Boss.Size))
	positive("boss.shot_speed", float64(c.Boss.ShotSpeed))
	positive("boss.projectile_speed", float64(c.Boss.ProjectileSpeed))
	positive("boss.pattern_ms", float64(c.Boss.PatternMs))

	if c.Shoot.MaxSpeed < c.Shoot.MinSpeed {
		errs = append(errs, errors.New("config: shoot.max_speed must be >= shoot.min_speed"))
	}
	if c.Dodge.MaxSpeed < c.Dodge.MinSpeed {
		errs = append(errs, errors.New("config: dodge.max_speed must be >= dodge.min_speed"))
	}
	if c.Catch.MinDelayMs > c.Catch.InitialDelayMs {
		errs = append(errs, errors.New("config: catch.min_delay_ms must be <= catch.initial_delay_ms"))
	}
	if c.Shoot.TargetSize > c.Field.Width || c.Shoot.TargetSize > c.Field.Height {
		errs = append(errs, errors.New("config: shoot.target_size must fit the field"))
	}
	if c.Dodge.ProjectileSize > c.Field.Width {
		errs = append(errs, errors.New("config: dodge.projectile_size must fit the field"))
	}
	if 2*c.Catch.Margin+c.Catch.TargetSize > c.Field.Width || 2*c.Catch.Margin+c.Catch.TargetSize > c.Field.Height {
		errs = append(errs, errors.New("config: catch target and margins must fit the field"))
	}
	if c.Player.BossMagic > c.Player.MaxMagic {
		errs = append(errs, errors.New("config: player.boss_magic must be <= player.max_magic"))
	}
	if len(c.Narrative.Beats) == 0 {
		errs = append(errs, errors.New("config: narrative.beats must not be empty"))
	}

	if len(c.Boss.Patterns) == 0 {
		errs = append(errs, errors.New("config: boss.patterns must not be empty"))
	}
	for i, p := range c.Boss.Patterns {
		switch p.Kind {
		case PatternStraight:
			positive(fmt.Sprintf("boss.patterns[%d].period_ms", i), float64(p.PeriodMs))
		case PatternSpread:
			positive(fmt.Sprintf("boss.patterns[%d].period_ms", i), float64(p.PeriodMs))
			if len(p.Angles) == 0 {
				errs = append(errs, fmt.Errorf("config: boss.patterns[%d].angles must not be empty", i))
			}
		case PatternPause:
		default:
			errs = append(errs, fmt.Errorf("config: boss.patterns[%d].kind %q is unknown", i, p.Kind))
		}
	}

	return errors.Join(errs...)
}
