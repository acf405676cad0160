package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ecs layer the level scene uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// MovementConfig contains the movement state machine values.
// Speed and the timer durations are copied onto an entity when it spawns.
type MovementConfig struct {
	Speed       float64 // horizontal speed in px/s
	JumpImpulse float64 // vertical velocity set when a jump executes, px/s

	// Intent magnitude that counts as pressing up or down
	InputThreshold float64
	// Vertical velocity above which the entity is still ascending
	AscendVelocityThreshold float64

	AscendingGravityScale float64
	NormalGravityScale    float64
	FastFallGravityScale  float64

	JumpDelay  time.Duration
	CoyoteTime time.Duration
}

// GroundConfig contains the grounded probe parameters
type GroundConfig struct {
	ProbeRadius float64
	MaxDistance float64
}

// Backend selects the physics implementation behind physics.Space
type Backend string

const (
	BackendRigid     Backend = "rigid"
	BackendKinematic Backend = "kinematic"
)

var ErrUnknownBackend = errors.New("config: unknown physics backend")

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(name); b {
	case BackendRigid, BackendKinematic:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Backend Backend
	Gravity float64 // downward acceleration in px/s^2

	// Kinematic backend grid
	CellSize int
}

// PlayerConfig contains the spawn values of the player entity
type PlayerConfig struct {
	Radius float64
	Mass   float64
	Skin   string
}

// TriggerConfig contains the spawn values of trigger volumes
type TriggerConfig struct {
	Radius float64
}

// NPCConfig contains the spawn values of NPC entities
type NPCConfig struct {
	Radius float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 // How fast look-ahead offset changes (0.0-1.0)
	Lift               float64 // Height of the camera above the player, keeps the ground low on screen
}

// DebugConfig contains debug options
type DebugConfig struct {
	SkipTitle bool // Skip the title screen and go directly to the level
	Draw      bool // Draw collision shapes
	Colors    map[string]color.RGBA
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Ground GroundConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Trigger TriggerConfig
var NPC NPCConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Movement = MovementConfig{
		Speed:       420.0,
		JumpImpulse: 600.0,

		InputThreshold:          0.01,
		AscendVelocityThreshold: 0.1,

		AscendingGravityScale: 0.5,
		NormalGravityScale:    1.0,
		FastFallGravityScale:  1.5,

		JumpDelay:  250 * time.Millisecond,
		CoyoteTime: 250 * time.Millisecond,
	}

	Ground = GroundConfig{
		ProbeRadius: 64.0,
		MaxDistance: 10.0,
	}

	Physics = PhysicsConfig{
		Backend:  BackendRigid,
		Gravity:  1962.0, // 9.81 * 200
		CellSize: 16,
	}

	Player = PlayerConfig{
		Radius: 64.0,
		Mass:   1.0,
		Skin:   "ducky",
	}

	Trigger = TriggerConfig{
		Radius: 320.0,
	}

	NPC = NPCConfig{
		Radius: 64.0,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 120.0,
		LookAheadSmoothing: 0.05,
		Lift:               200.0,
	}

	Debug = DebugConfig{
		SkipTitle: false,
		Draw:      false,
		Colors: map[string]color.RGBA{
			"solid":   {R: 100, G: 100, B: 100, A: 255},
			"player":  {R: 0, G: 100, B: 255, A: 255},
			"trigger": {R: 255, G: 255, B: 0, A: 255},
			"npc":     {R: 255, G: 0, B: 255, A: 255},
		},
	}
}
