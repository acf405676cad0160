package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML view of the values that designers tweak.
// Keys missing from a file keep their current value.
type Tuning struct {
	Movement MovementTuning `yaml:"movement"`
	Ground   GroundTuning   `yaml:"ground"`
	Physics  PhysicsTuning  `yaml:"physics"`
	Camera   CameraTuning   `yaml:"camera"`
	Debug    DebugTuning    `yaml:"debug"`
}

type MovementTuning struct {
	Speed                   float64       `yaml:"speed"`
	JumpImpulse             float64       `yaml:"jump_impulse"`
	InputThreshold          float64       `yaml:"input_threshold"`
	AscendVelocityThreshold float64       `yaml:"ascend_velocity_threshold"`
	AscendingGravityScale   float64       `yaml:"ascending_gravity_scale"`
	NormalGravityScale      float64       `yaml:"normal_gravity_scale"`
	FastFallGravityScale    float64       `yaml:"fast_fall_gravity_scale"`
	JumpDelay               time.Duration `yaml:"jump_delay"`
	CoyoteTime              time.Duration `yaml:"coyote_time"`
}

type GroundTuning struct {
	ProbeRadius float64 `yaml:"probe_radius"`
	MaxDistance float64 `yaml:"max_distance"`
}

type PhysicsTuning struct {
	Backend  string  `yaml:"backend"`
	Gravity  float64 `yaml:"gravity"`
	CellSize int     `yaml:"cell_size"`
}

type CameraTuning struct {
	FollowSmoothing    float64 `yaml:"follow_smoothing"`
	LookAheadDistanceX float64 `yaml:"look_ahead_distance_x"`
	LookAheadSmoothing float64 `yaml:"look_ahead_smoothing"`
	Lift               float64 `yaml:"lift"`
}

type DebugTuning struct {
	SkipTitle bool `yaml:"skip_title"`
	Draw      bool `yaml:"draw"`
}

// Overrides are command-line values that win over every tuning file.
type Overrides struct {
	Backend   Backend // "" keeps the file's backend
	SkipTitle bool
}

// Over returns t with the overrides applied.
func (o Overrides) Over(t Tuning) Tuning {
	if o.Backend != "" {
		t.Physics.Backend = string(o.Backend)
	}
	if o.SkipTitle {
		t.Debug.SkipTitle = true
	}
	return t
}

// CurrentTuning snapshots the global configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Movement: MovementTuning{
			Speed:                   Movement.Speed,
			JumpImpulse:             Movement.JumpImpulse,
			InputThreshold:          Movement.InputThreshold,
			AscendVelocityThreshold: Movement.AscendVelocityThreshold,
			AscendingGravityScale:   Movement.AscendingGravityScale,
			NormalGravityScale:      Movement.NormalGravityScale,
			FastFallGravityScale:    Movement.FastFallGravityScale,
			JumpDelay:               Movement.JumpDelay,
			CoyoteTime:              Movement.CoyoteTime,
		},
		Ground: GroundTuning{
			ProbeRadius: Ground.ProbeRadius,
			MaxDistance: Ground.MaxDistance,
		},
		Physics: PhysicsTuning{
			Backend:  string(Physics.Backend),
			Gravity:  Physics.Gravity,
			CellSize: Physics.CellSize,
		},
		Camera: CameraTuning(Camera),
		Debug: DebugTuning{
			SkipTitle: Debug.SkipTitle,
			Draw:      Debug.Draw,
		},
	}
}

// ParseTuning decodes data over the current configuration and validates it.
func ParseTuning(data []byte) (Tuning, error) {
	return CurrentTuning().Merge(data)
}

// Merge decodes data over a copy of t and validates the result.
func (t Tuning) Merge(data []byte) (Tuning, error) {
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if _, err := ParseBackend(t.Physics.Backend); err != nil {
		return Tuning{}, err
	}
	if t.Movement.JumpDelay < 0 || t.Movement.CoyoteTime < 0 {
		return Tuning{}, fmt.Errorf("config: negative timer duration in tuning")
	}
	if t.Ground.MaxDistance < 0 {
		return Tuning{}, fmt.Errorf("config: negative ground max_distance %v", t.Ground.MaxDistance)
	}
	if t.Ground.ProbeRadius < 0 {
		return Tuning{}, fmt.Errorf("config: negative ground probe_radius %v", t.Ground.ProbeRadius)
	}
	if t.Physics.CellSize <= 0 {
		return Tuning{}, fmt.Errorf("config: physics cell_size must be positive, got %d", t.Physics.CellSize)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file over the current configuration.
func LoadTuning(path string) (Tuning, error) {
	return loadTuningOver(CurrentTuning(), path)
}

func loadTuningOver(base Tuning, path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := base.Merge(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Apply writes t into the global configuration. Values copied at spawn
// time (speed, timer durations) only reach entities spawned afterwards.
func (t Tuning) Apply() {
	Movement.Speed = t.Movement.Speed
	Movement.JumpImpulse = t.Movement.JumpImpulse
	Movement.InputThreshold = t.Movement.InputThreshold
	Movement.AscendVelocityThreshold = t.Movement.AscendVelocityThreshold
	Movement.AscendingGravityScale = t.Movement.AscendingGravityScale
	Movement.NormalGravityScale = t.Movement.NormalGravityScale
	Movement.FastFallGravityScale = t.Movement.FastFallGravityScale
	Movement.JumpDelay = t.Movement.JumpDelay
	Movement.CoyoteTime = t.Movement.CoyoteTime

	Ground.ProbeRadius = t.Ground.ProbeRadius
	Ground.MaxDistance = t.Ground.MaxDistance

	Physics.Backend = Backend(t.Physics.Backend)
	Physics.Gravity = t.Physics.Gravity
	Physics.CellSize = t.Physics.CellSize

	Camera = CameraConfig(t.Camera)

	Debug.SkipTitle = t.Debug.SkipTitle
	Debug.Draw = t.Debug.Draw
}
