package systems

import (
	"math"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// InputSource is polled once per frame by the input recorder.
type InputSource interface {
	ActionPressed(id cfg.ActionID) bool
	// Stick returns the left analog stick with the deadzone applied, y-up.
	Stick() (x, y float64)
}

// EbitenInput reads the keyboard and every standard-layout gamepad.
type EbitenInput struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) ActionPressed(id cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[id]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}

	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// Stick returns the strongest deflection over all connected gamepads.
func (in *EbitenInput) Stick() (x, y float64) {
	deadzone := cfg.Input.AnalogDeadzone
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Gamepad axes are y-down
		vertical := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if math.Abs(horizontal) > deadzone && math.Abs(horizontal) > math.Abs(x) {
			x = horizontal
		}
		if math.Abs(vertical) > deadzone && math.Abs(vertical) > math.Abs(y) {
			y = vertical
		}
	}
	return x, y
}

// NewRecordInput samples src and writes the intent of every movement controller.
// Must run BEFORE UpdateGrounded in the system order.
func NewRecordInput(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		intent := readIntent(src)
		components.MovementController.Each(e.World, func(entry *donburi.Entry) {
			components.MovementController.Get(entry).Intent = intent
		})
	}
}

// readIntent sums the digital directions per axis. The stick only drives an
// axis that has no digital press on it.
func readIntent(src InputSource) dmath.Vec2 {
	var x, y float64
	left, right := src.ActionPressed(cfg.ActionMoveLeft), src.ActionPressed(cfg.ActionMoveRight)
	up, down := src.ActionPressed(cfg.ActionMoveUp), src.ActionPressed(cfg.ActionMoveDown)
	if right {
		x++
	}
	if left {
		x--
	}
	if up {
		y++
	}
	if down {
		y--
	}

	sx, sy := src.Stick()
	if !left && !right {
		x = sx
	}
	if !up && !down {
		y = sy
	}
	return dmath.Vec2{X: clampUnit(x), Y: clampUnit(y)}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
