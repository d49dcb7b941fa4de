package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// File is the on-disk startup configuration. Sections left out of the file
// keep their defaults.
type File struct {
	Motion  MotionConfig  `yaml:"motion"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	World   WorldConfig   `yaml:"world"`
	Input   InputConfig   `yaml:"input"`
}

// Defaults returns a File populated with the stock values.
func Defaults() *File {
	return &File{
		Motion:  DefaultMotion(),
		Physics: DefaultPhysics(),
		Player:  DefaultPlayer(),
		World:   DefaultWorld(),
		Input:   InputConfig{AnalogDeadzone: 0.25},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*File, error) {
	f := Defaults()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Validate rejects values the simulation cannot run with. Degenerate but
// finite tunables (zero jump height, zero gravity) are allowed; the controller
// guards them.
func (f *File) Validate() error {
	m := f.Motion
	finite := map[string]float64{
		"motion.max_speed":           m.MaxSpeed,
		"motion.walk_acceleration":   m.WalkAcceleration,
		"motion.air_acceleration":    m.AirAcceleration,
		"motion.ground_deceleration": m.GroundDeceleration,
		"motion.jump_height":         m.JumpHeight,
		"motion.slide_speed":         m.SlideSpeed,
		"motion.slide_acceleration":  m.SlideAcceleration,
		"motion.slide_deceleration":  m.SlideDeceleration,
		"physics.gravity_x":          f.Physics.GravityX,
		"physics.gravity_y":          f.Physics.GravityY,
		"physics.slide_duration":     f.Physics.SlideDuration,
	}
	for name, v := range finite {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, name)
		}
	}

	if f.Physics.TickRate <= 0 {
		return fmt.Errorf("%w: physics.tick_rate must be positive, got %d", ErrInvalidConfig, f.Physics.TickRate)
	}
	if f.Physics.SlideDuration < 0 {
		return fmt.Errorf("%w: physics.slide_duration must not be negative", ErrInvalidConfig)
	}
	switch f.Physics.SlideTimerPolicy {
	case SlideTimerOverlap, SlideTimerRestart:
	default:
		return fmt.Errorf("%w: unknown physics.slide_timer_policy %q", ErrInvalidConfig, f.Physics.SlideTimerPolicy)
	}
	if f.Player.CollisionWidth <= 0 || f.Player.CollisionHeight <= 0 {
		return fmt.Errorf("%w: player collider must have a positive size", ErrInvalidConfig)
	}
	if f.World.Width <= 0 || f.World.Height <= 0 || f.World.CellSize <= 0 {
		return fmt.Errorf("%w: world space and cell size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Apply installs the file into the package-level configuration. Call it once
// at startup, before any controller runs.
func (f *File) Apply() {
	Motion = f.Motion
	Physics = f.Physics
	Player = f.Player
	World = f.World
	Input = f.Input
}
