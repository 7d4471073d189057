// Package app holds the viewer's mutable state and the logical input
// actions that change it. It knows nothing about windows or GL.
package app

import (
	"errors"
	"flag"
	"fmt"

	"sievert3d/internal/stereo"
	"sievert3d/internal/surface"
)

// ErrBadWindow indicates a non-positive window size.
var ErrBadWindow = errors.New("app: window size must be > 0")

// Config is everything settable from the command line.
type Config struct {
	Width, Height int
	Title         string

	MaxR      float64
	Step      float64
	Delta     float64
	NoNormals bool
	TexCoords string

	Convergence   float64
	EyeSeparation float64
	FOV           float64 // degrees
	Near, Far     float64
	Distance      float64
	Ortho         bool

	Spin      float64 // radians per second
	Triangles bool
	Texture   string
	Snapshot  string
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "Sievert surface (anaglyph)",

		MaxR:      surface.DefaultMaxR,
		Step:      surface.DefaultStep,
		Delta:     surface.DefaultDelta,
		TexCoords: surface.TexCoordNormalized.String(),

		Convergence:   12,
		EyeSeparation: 0.4,
		FOV:           45,
		Near:          1,
		Far:           50,
		Distance:      12,

		Spin: 0.3,
	}
}

// RegisterFlags binds c's fields to fs, using c's current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")

	fs.Float64Var(&c.MaxR, "maxr", c.MaxR, "radial limit of the texture mapping (> 0.25)")
	fs.Float64Var(&c.Step, "step", c.Step, "tessellation step in parameter space")
	fs.Float64Var(&c.Delta, "delta", c.Delta, "finite-difference step for normals")
	fs.BoolVar(&c.NoNormals, "no-normals", c.NoNormals, "skip normal generation")
	fs.StringVar(&c.TexCoords, "texcoords", c.TexCoords, "v mapping: normalized (v/2π) or legacy ((v/2)·π)")

	fs.Float64Var(&c.Convergence, "convergence", c.Convergence, "stereo convergence distance")
	fs.Float64Var(&c.EyeSeparation, "eyesep", c.EyeSeparation, "stereo eye separation")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "vertical field of view in degrees")
	fs.Float64Var(&c.Near, "near", c.Near, "near clipping distance")
	fs.Float64Var(&c.Far, "far", c.Far, "far clipping distance")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "camera distance from the surface")
	fs.BoolVar(&c.Ortho, "ortho", c.Ortho, "orthographic instead of perspective projection")

	fs.Float64Var(&c.Spin, "spin", c.Spin, "auto-rotation speed in radians per second")
	fs.BoolVar(&c.Triangles, "triangles", c.Triangles, "draw a triangle list instead of a triangle strip")
	fs.StringVar(&c.Texture, "texture", c.Texture, "image file to map onto the surface")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "render a wireframe anaglyph PNG to this path and exit")
}

// Domain returns the tessellation domain described by c.
func (c Config) Domain() surface.Domain {
	d := surface.DefaultDomain(c.MaxR)
	d.Step = c.Step
	return d
}

// Options returns the tessellation options described by c.
func (c Config) Options() (surface.Options, error) {
	mode, err := surface.ParseTexCoordMode(c.TexCoords)
	if err != nil {
		return surface.Options{}, fmt.Errorf("-texcoords %q: %w", c.TexCoords, err)
	}
	return surface.Options{Delta: c.Delta, Normals: !c.NoNormals, TexCoords: mode}, nil
}

// Mode returns the projection mode.
func (c Config) Mode() stereo.Mode {
	if c.Ortho {
		return stereo.Orthographic
	}
	return stereo.Perspective
}

// Camera returns the stereo rig for the configured window size.
func (c Config) Camera() stereo.Camera {
	return stereo.FromDegrees(c.Convergence, c.EyeSeparation, float64(c.Width)/float64(c.Height), c.FOV, c.Near, c.Far)
}

// Validate rejects settings that would fail mid-render.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrBadWindow)
	}
	if err := c.Domain().Validate(); err != nil {
		return err
	}
	opts, err := c.Options()
	if err != nil {
		return err
	}
	if opts.Normals && !(opts.Delta > 0) {
		return fmt.Errorf("-delta %g: %w", c.Delta, surface.ErrBadDelta)
	}
	return c.Camera().Validate()
}
