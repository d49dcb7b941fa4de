package config

// MotionConfig holds the character's movement tunables. Values are read-only
// once the controller is running.
type MotionConfig struct {
	// Max speed, in units per second, that the character walks.
	MaxSpeed float64 `yaml:"max_speed"`
	// Acceleration while grounded.
	WalkAcceleration float64 `yaml:"walk_acceleration"`
	// Acceleration while in the air.
	AirAcceleration float64 `yaml:"air_acceleration"`
	// Deceleration applied when grounded and not attempting to move.
	GroundDeceleration float64 `yaml:"ground_deceleration"`
	// Apex height of a jump regardless of gravity.
	JumpHeight float64 `yaml:"jump_height"`

	// Slide mechanics
	SlideSpeed        float64 `yaml:"slide_speed"`
	SlideAcceleration float64 `yaml:"slide_acceleration"`
	SlideDeceleration float64 `yaml:"slide_deceleration"`
}

// SlideTimerPolicy decides what happens to a pending slide stop when a new
// slide is triggered before it fires.
type SlideTimerPolicy string

const (
	// SlideTimerOverlap keeps every pending stop; each one fires on its own.
	SlideTimerOverlap SlideTimerPolicy = "overlap"
	// SlideTimerRestart drops pending stops and schedules a single new one.
	SlideTimerRestart SlideTimerPolicy = "restart"
)

// PhysicsConfig contains the ambient simulation values
type PhysicsConfig struct {
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`

	SlideDuration    float64          `yaml:"slide_duration"` // seconds until a slide ends
	SlideTimerPolicy SlideTimerPolicy `yaml:"slide_timer_policy"`

	TickRate int `yaml:"tick_rate"` // simulation ticks per second
}

// PlayerConfig contains the character collider dimensions, in world units
type PlayerConfig struct {
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Fallback spawn when the level has none
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// WorldConfig contains broad-phase and presentation values
type WorldConfig struct {
	// Broad-phase space, in world units
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`

	// Debug renderer
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	ScreenWidth   int     `yaml:"screen_width"`
	ScreenHeight  int     `yaml:"screen_height"`

	Level string `yaml:"level"` // level file inside the embedded levels FS
}

// Global configuration instances
var Motion MotionConfig
var Physics PhysicsConfig
var Player PlayerConfig
var World WorldConfig

// DefaultMotion returns the stock tuning.
func DefaultMotion() MotionConfig {
	return MotionConfig{
		MaxSpeed:           9,
		WalkAcceleration:   75,
		AirAcceleration:    30,
		GroundDeceleration: 70,
		JumpHeight:         4,

		SlideSpeed:        12,
		SlideAcceleration: 800,
		SlideDeceleration: 800,
	}
}

// DefaultPhysics returns the stock physics values.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		GravityX: 0,
		GravityY: -9.81,

		SlideDuration:    0.5,
		SlideTimerPolicy: SlideTimerOverlap,

		TickRate: 60,
	}
}

func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		CollisionWidth:  1,
		CollisionHeight: 2,
		SpawnX:          2,
		SpawnY:          4,
	}
}

func DefaultWorld() WorldConfig {
	return WorldConfig{
		Width:    256,
		Height:   64,
		CellSize: 2,

		PixelsPerUnit: 16,
		ScreenWidth:   640,
		ScreenHeight:  360,

		Level: "demo.tmx",
	}
}

// TickDuration returns the fixed simulation step in seconds.
func (p PhysicsConfig) TickDuration() float64 {
	if p.TickRate <= 0 {
		return 0
	}
	return 1 / float64(p.TickRate)
}

func init() {
	Motion = DefaultMotion()
	Physics = DefaultPhysics()
	Player = DefaultPlayer()
	World = DefaultWorld()
}
