// Package config provides YAML/TOML game configuration loading for the
// shooter platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// ShooterConfig contains all configuration for the space shooter.
type ShooterConfig struct {
	Screen     ScreenConfig     `yaml:"screen" toml:"screen"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy" toml:"enemy"`
	Explosion  ExplosionConfig  `yaml:"explosion" toml:"explosion"`
	Background BackgroundConfig `yaml:"background" toml:"background"`
	Assets     AssetsConfig     `yaml:"assets" toml:"assets"`
}

// ScreenConfig defines the playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed    int     `yaml:"speed" toml:"speed"`         // Pixels per second per held arrow key
	FireRate float64 `yaml:"fire_rate" toml:"fire_rate"` // Shots per second while firing
	Scale    int     `yaml:"scale" toml:"scale"`
}

// ProjectileConfig defines the ship's shots.
type ProjectileConfig struct {
	Speed    int `yaml:"speed" toml:"speed"`
	Capacity int `yaml:"capacity" toml:"capacity"`
	Scale    int `yaml:"scale" toml:"scale"`
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Speed     int     `yaml:"speed" toml:"speed"`
	SpawnRate float64 `yaml:"spawn_rate" toml:"spawn_rate"` // Enemies per second
	Capacity  int     `yaml:"capacity" toml:"capacity"`
	Scale     int     `yaml:"scale" toml:"scale"`
}

// ExplosionConfig defines explosion effects.
type ExplosionConfig struct {
	Capacity int `yaml:"capacity" toml:"capacity"`
	Scale    int `yaml:"scale" toml:"scale"`
}

// BackgroundConfig defines the looping vertical scroll.
type BackgroundConfig struct {
	ScrollEvery int `yaml:"scroll_every" toml:"scroll_every"` // Steps per one-pixel scroll
	ScrollMax   int `yaml:"scroll_max" toml:"scroll_max"`     // Offset the scroll wraps back to
}

// AssetsConfig names the sprite sheet images used by the window frontend.
type AssetsConfig struct {
	Dir        string `yaml:"dir" toml:"dir"`
	Ship       string `yaml:"ship" toml:"ship"`
	Projectile string `yaml:"projectile" toml:"projectile"`
	Enemy      string `yaml:"enemy" toml:"enemy"`
	Explosion  string `yaml:"explosion" toml:"explosion"`
	Background string `yaml:"background" toml:"background"`
}

// Validate checks that every value the simulation divides by or sizes
// arrays with is positive.
func (c ShooterConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"screen.width", c.Screen.Width > 0},
		{"screen.height", c.Screen.Height > 0},
		{"ship.speed", c.Ship.Speed > 0},
		{"ship.fire_rate", c.Ship.FireRate > 0},
		{"ship.scale", c.Ship.Scale > 0},
		{"projectile.speed", c.Projectile.Speed > 0},
		{"projectile.capacity", c.Projectile.Capacity > 0},
		{"projectile.scale", c.Projectile.Scale > 0},
		{"enemy.speed", c.Enemy.Speed > 0},
		{"enemy.spawn_rate", c.Enemy.SpawnRate > 0},
		{"enemy.capacity", c.Enemy.Capacity > 0},
		{"enemy.scale", c.Enemy.Scale > 0},
		{"explosion.capacity", c.Explosion.Capacity > 0},
		{"explosion.scale", c.Explosion.Scale > 0},
		{"background.scroll_every", c.Background.ScrollEvery > 0},
		{"background.scroll_max", c.Background.ScrollMax > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}
