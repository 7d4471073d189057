package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"sievert3d/internal/app"
)

var keyBindings = map[glfw.Key]app.Action{
	glfw.KeyW: app.RadiusUp,
	glfw.KeyS: app.RadiusDown,
	glfw.KeyA: app.AngleDown,
	glfw.KeyD: app.AngleUp,

	glfw.KeyEqual:      app.GrowRadius,
	glfw.KeyKPAdd:      app.GrowRadius,
	glfw.KeyMinus:      app.ShrinkRadius,
	glfw.KeyKPSubtract: app.ShrinkRadius,

	glfw.KeyRight: app.WidenEyes,
	glfw.KeyLeft:  app.NarrowEyes,
	glfw.KeyDown:  app.ConvergeNearer,
	glfw.KeyUp:    app.ConvergeFarther,

	glfw.KeyQ: app.RotateLeft,
	glfw.KeyE: app.RotateRight,
	glfw.KeyP: app.ToggleProjection,
}

// actionFor returns app.None for unbound keys.
func actionFor(key glfw.Key) app.Action {
	return keyBindings[key]
}
