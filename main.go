package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"sievert3d/internal/app"
	"sievert3d/internal/render"
	"sievert3d/internal/texture"
)

func main() {
	runtime.LockOSThread()

	cfg := app.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	state, err := app.NewState(cfg)
	if err != nil {
		log.Fatalln("invalid settings:", err)
	}

	if cfg.Snapshot != "" {
		if err := snapshot(state, cfg.Snapshot); err != nil {
			log.Fatalln("snapshot failed:", err)
		}
		log.Printf("wrote %s", cfg.Snapshot)
		return
	}

	tex, err := loadTexture(cfg.Texture)
	if err != nil {
		log.Fatalln("failed to load texture:", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Println("OpenGL version", version)

	renderer, err := render.NewRenderer(tex)
	if err != nil {
		log.Fatalln("failed to initialize renderer:", err)
	}
	defer renderer.Delete()
	if cfg.Triangles {
		renderer.Primitive = gl.TRIANGLES
	}

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	state.SetAspect(fbw, fbh)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		state.SetAspect(w, h)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		a := actionFor(key)
		changed, err := state.Apply(a)
		if err != nil {
			log.Printf("%s: %v", a, err)
			return
		}
		if changed {
			log.Printf("%s: maxR=%.2f point=[%.2f, %.2f] eyesep=%.2f convergence=%.0f %s",
				a, state.MaxR, state.Point.Radius, state.Point.Angle,
				state.EyeSeparation, state.Convergence, state.Mode)
		}
	})

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | maxR %.2f | FPS: %d", cfg.Title, state.MaxR, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		if mesh, ok := state.TakeMesh(); ok {
			if err := renderer.Upload(mesh); err != nil {
				log.Printf("upload: %v", err)
			}
		}

		state.Advance(deltaTime)
		renderer.Draw(render.Frame{
			Camera:    state.Camera(),
			Mode:      state.Mode,
			View:      state.View(),
			Model:     state.Model(),
			UserPoint: state.UserPointTex(),
			Angle:     state.Angle,
		})

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func loadTexture(path string) (*image.RGBA, error) {
	if path == "" {
		return texture.Checker(512, 16), nil
	}
	return texture.Load(path)
}
