package app

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"sievert3d/internal/stereo"
	"sievert3d/internal/surface"
)

// Limits on interactive camera adjustments.
const (
	minEyeSeparation = 0
	minConvergence   = 1
	tilt             = -math.Pi / 3
)

// State replaces the viewer's globals. It is created once at startup,
// mutated by input handlers, and read by the render loop.
type State struct {
	cfg  Config
	opts surface.Options

	MaxR          float64
	Point         UserPoint
	Angle         float64 // texture rotation around the user point
	Spin          float64 // accumulated model rotation
	Convergence   float64
	EyeSeparation float64
	Mode          stereo.Mode

	aspect float64
	mesh   *surface.Mesh
	fresh  bool
	center mgl64.Vec3
}

// NewState validates cfg and builds the first mesh.
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	s := &State{
		cfg:           cfg,
		opts:          opts,
		MaxR:          cfg.MaxR,
		Point:         NewUserPoint(),
		Convergence:   cfg.Convergence,
		EyeSeparation: cfg.EyeSeparation,
		Mode:          cfg.Mode(),
		aspect:        float64(cfg.Width) / float64(cfg.Height),
	}
	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the settings the state was built from.
func (s *State) Config() Config {
	return s.cfg
}

// Rebuild regenerates the mesh wholesale for the current maxR and queues
// it for upload. The previous mesh stays current if tessellation fails.
func (s *State) Rebuild() error {
	d := s.cfg.Domain()
	d.MaxR = s.MaxR
	m, err := surface.Tessellate(d, surface.Sievert{}, s.opts)
	if err != nil {
		return fmt.Errorf("rebuild: %w", err)
	}
	lo, hi := m.Bounds()
	s.center = mgl64.Vec3{
		float64(lo[0]+hi[0]) / 2,
		float64(lo[1]+hi[1]) / 2,
		float64(lo[2]+hi[2]) / 2,
	}
	s.mesh = m
	s.fresh = true
	return nil
}

// Mesh returns the current mesh.
func (s *State) Mesh() *surface.Mesh {
	return s.mesh
}

// TakeMesh returns the mesh once after each rebuild, for upload.
func (s *State) TakeMesh() (*surface.Mesh, bool) {
	if !s.fresh {
		return nil, false
	}
	s.fresh = false
	return s.mesh, true
}

// Apply performs a. It reports whether anything changed; the error is
// non-nil only when a triggered rebuild failed.
func (s *State) Apply(a Action) (bool, error) {
	if d, ok := pointDelta[a]; ok {
		s.Point.Move(d[0], d[1], s.MaxR)
		return true, nil
	}

	switch a {
	case GrowRadius:
		s.MaxR += Step
		return true, s.Rebuild()
	case ShrinkRadius:
		if s.MaxR-Step <= surface.MinRadius {
			return false, nil
		}
		s.MaxR -= Step
		s.Point.Clamp(s.MaxR)
		return true, s.Rebuild()
	case WidenEyes:
		s.EyeSeparation += Step
	case NarrowEyes:
		if s.EyeSeparation-Step < minEyeSeparation {
			return false, nil
		}
		s.EyeSeparation -= Step
	case ConvergeNearer:
		if s.Convergence-1 < minConvergence {
			return false, nil
		}
		s.Convergence--
	case ConvergeFarther:
		s.Convergence++
	case RotateLeft:
		s.Angle -= Step
	case RotateRight:
		s.Angle += Step
	case ToggleProjection:
		if s.Mode == stereo.Perspective {
			s.Mode = stereo.Orthographic
		} else {
			s.Mode = stereo.Perspective
		}
	default:
		return false, nil
	}
	return true, nil
}

// SetAspect records a new framebuffer size. Zero sizes (minimised
// windows) are ignored.
func (s *State) SetAspect(w, h int) {
	if w > 0 && h > 0 {
		s.aspect = float64(w) / float64(h)
	}
}

// Advance moves the auto-rotation forward by dt seconds.
func (s *State) Advance(dt float64) {
	s.Spin = math.Mod(s.Spin+s.cfg.Spin*dt, 2*math.Pi)
}

// Camera returns the stereo rig for the current settings.
func (s *State) Camera() stereo.Camera {
	return stereo.FromDegrees(s.Convergence, s.EyeSeparation, s.aspect, s.cfg.FOV, s.cfg.Near, s.cfg.Far)
}

// Model centres the mesh, spins it about its axis and tilts the axis
// towards the viewer.
func (s *State) Model() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(tilt).
		Mul4(mgl64.HomogRotate3DZ(s.Spin)).
		Mul4(mgl64.Translate3D(-s.center[0], -s.center[1], -s.center[2]))
}

// View is the shared camera view before the per-eye offset.
func (s *State) View() mgl64.Mat4 {
	return mgl64.LookAtV(mgl64.Vec3{0, 0, s.cfg.Distance}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

// UserPointTex returns the user point in texture space.
func (s *State) UserPointTex() mgl64.Vec2 {
	return surface.TexCoord(s.Point.Radius, s.Point.Angle, s.MaxR, s.opts.TexCoords)
}
