package systems

import (
	"math"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/automoto/coyote/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera eases the camera towards the player, leading in the
// direction the player is walking.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(playerEntry).Body
	if body == nil {
		return
	}

	// Only update look-ahead while walking - freeze offset when idle
	intent := components.MovementController.Get(playerEntry).Intent
	if math.Abs(intent.X) > cfg.Movement.InputThreshold {
		target := intent.X * cfg.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
	}

	focus := body.Position()
	focus.X += camera.LookAheadX
	target := CameraTarget(camera, focus)

	camera.Position.X += (target.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// CameraTarget is where the camera settles when following focus, kept inside
// the camera bounds.
func CameraTarget(camera *components.CameraData, focus dmath.Vec2) dmath.Vec2 {
	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2
	return dmath.Vec2{
		X: clampAxis(focus.X, halfW, camera.Bounds.X-halfW),
		Y: clampAxis(focus.Y+cfg.Camera.Lift, halfH, camera.Bounds.Y-halfH),
	}
}

// clampAxis clamps v to [lo,hi], or centres it when the level is smaller
// than the screen.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
