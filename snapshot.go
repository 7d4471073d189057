package main

import (
	"fmt"

	"sievert3d/internal/app"
	"sievert3d/internal/preview"
)

// snapshot renders the current state as a wireframe anaglyph PNG.
func snapshot(state *app.State, path string) error {
	cfg := state.Config()
	label := fmt.Sprintf("maxR=%.2f eyesep=%.2f convergence=%.0f %s",
		state.MaxR, state.EyeSeparation, state.Convergence, state.Mode)
	img := preview.Render(state.Mesh(), preview.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Camera: state.Camera(),
		Mode:   state.Mode,
		View:   state.View(),
		Model:  state.Model(),
		Stride: 3,
		Label:  label,
	})
	return preview.WritePNG(path, img)
}
