package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Speed:    320,
			FireRate: 5,
			Scale:    2,
		},
		Projectile: ProjectileConfig{
			Speed:    480,
			Capacity: 64,
			Scale:    2,
		},
		Enemy: EnemyConfig{
			Speed:     160,
			SpawnRate: 1.5,
			Capacity:  1024,
			Scale:     2,
		},
		Explosion: ExplosionConfig{
			Capacity: 64,
			Scale:    2,
		},
		Background: BackgroundConfig{
			ScrollEvery: 4,
			ScrollMax:   416,
		},
		Assets: AssetsConfig{
			Dir:        "data",
			Ship:       "ship.png",
			Projectile: "laser-bolts.png",
			Enemy:      "enemy-small.png",
			Explosion:  "explosion.png",
			Background: "desert-background.png",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
