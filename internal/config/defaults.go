package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the built-in quest configuration.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Lives:     3,
			MaxMagic:  100,
			BossMagic: 100,
			HubSpeed:  5,
			Size:      40,
		},
		Narrative: NarrativeConfig{
			BeatMs: 3000,
			Beats: []string{
				"A dark power has risen in the ancient kingdom of magic...",
				"You are the last mage able to stop the coming darkness.",
				"Gather magic power by training your reflexes...",
				"...and face the Dark Lord before it is too late!",
			},
		},
		Shoot: ShootConfig{
			DurationS:     15,
			RequiredScore: 10,
			SpawnMs:       1000,
			TargetSize:    30,
			MinSpeed:      2,
			MaxSpeed:      5,
			Reward:        Reward{Score: 100, Magic: 20},
		},
		Dodge: DodgeConfig{
			DurationS:      15,
			SpawnMs:        500,
			PlayerSpeed:    7,
			PlayerSize:     40,
			ProjectileSize: 20,
			MinSpeed:       5,
			MaxSpeed:       8,
			Reward:         Reward{Score: 150, Magic: 30},
		},
		Catch: CatchConfig{
			DurationS:      15,
			RequiredScore:  8,
			TargetSize:     100,
			Margin:         50,
			InitialDelayMs: 1000,
			MinDelayMs:     500,
			DelayStepMs:    50,
			VisibleMs:      800,
			Reward:         Reward{Score: 120, Magic: 25},
		},
		Boss: BossConfig{
			Health:          100,
			Damage:          5,
			Size:            100,
			PlayerSpeed:     7,
			PlayerSize:      40,
			ShotSize:        10,
			ShotSpeed:       10,
			ShotCooldownMs:  500,
			ProjectileSpeed: 7,
			AngledDrift:     5,
			PatternMs:       3000,
			Patterns: []AttackPattern{
				{Kind: PatternStraight, PeriodMs: 300},
				{Kind: PatternSpread, PeriodMs: 200, Angles: []float64{-0.2, 0, 0.2}},
				{Kind: PatternPause},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultQuestYAML
}
