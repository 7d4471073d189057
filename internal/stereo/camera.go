// Package stereo builds the off-axis projection pair used for red/cyan
// anaglyph rendering.
//
// Both eyes share the vertical extent of the frustum; horizontally each
// frustum is skewed so the two images coincide at the convergence
// distance. The eye offset itself belongs to the view transform.
package stereo

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrConvergence = errors.New("stereo: convergence must be non-zero")
	ErrClipPlanes  = errors.New("stereo: need 0 < near < far")
	ErrAspect      = errors.New("stereo: aspect ratio must be > 0")
	ErrFOV         = errors.New("stereo: field of view must be in (0, π)")
)

// Camera holds the stereo rig parameters. FOV is the vertical field of
// view in radians.
type Camera struct {
	Convergence   float64
	EyeSeparation float64
	AspectRatio   float64
	FOV           float64
	Near, Far     float64
}

// FromDegrees builds a Camera with the field of view given in degrees.
func FromDegrees(convergence, eyeSeparation, aspect, fovDeg, near, far float64) Camera {
	return Camera{
		Convergence:   convergence,
		EyeSeparation: eyeSeparation,
		AspectRatio:   aspect,
		FOV:           mgl64.DegToRad(fovDeg),
		Near:          near,
		Far:           far,
	}
}

// Validate reports the first parameter that makes the frustum undefined.
func (c Camera) Validate() error {
	switch {
	case c.Convergence == 0 || math.IsNaN(c.Convergence):
		return ErrConvergence
	case !(c.Near > 0) || !(c.Far > c.Near):
		return fmt.Errorf("near %g far %g: %w", c.Near, c.Far, ErrClipPlanes)
	case !(c.AspectRatio > 0):
		return ErrAspect
	case !(c.FOV > 0) || !(c.FOV < math.Pi):
		return ErrFOV
	}
	return nil
}

// Eye selects one half of the stereo pair.
type Eye int

const (
	LeftEye Eye = iota
	RightEye
)

func (e Eye) String() string {
	if e == LeftEye {
		return "left"
	}
	return "right"
}

// Bounds are the clip-plane extents passed to a frustum or ortho builder.
type Bounds struct {
	Left, Right, Bottom, Top, Near, Far float64
}

// Bounds computes the asymmetric extents for eye.
func (c Camera) Bounds(eye Eye) Bounds {
	half := math.Tan(c.FOV / 2)
	top := c.Near * half

	a := c.AspectRatio * half * c.Convergence
	b := a - c.EyeSeparation/2
	cc := a + c.EyeSeparation/2

	bd := Bounds{Bottom: -top, Top: top, Near: c.Near, Far: c.Far}
	if eye == LeftEye {
		bd.Left = -b * c.Near / c.Convergence
		bd.Right = cc * c.Near / c.Convergence
	} else {
		bd.Left = -cc * c.Near / c.Convergence
		bd.Right = b * c.Near / c.Convergence
	}
	return bd
}

// Mode selects the projection built from Bounds.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

func (m Mode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Matrix builds the projection for b.
func (b Bounds) Matrix(mode Mode) mgl64.Mat4 {
	if mode == Orthographic {
		return mgl64.Ortho(b.Left, b.Right, b.Bottom, b.Top, b.Near, b.Far)
	}
	return mgl64.Frustum(b.Left, b.Right, b.Bottom, b.Top, b.Near, b.Far)
}

// Projection returns the projection matrix for eye.
func (c Camera) Projection(eye Eye, mode Mode) mgl64.Mat4 {
	return c.Bounds(eye).Matrix(mode)
}

// LeftFrustum returns the left-eye projection.
func (c Camera) LeftFrustum(mode Mode) mgl64.Mat4 {
	return c.Projection(LeftEye, mode)
}

// RightFrustum returns the right-eye projection.
func (c Camera) RightFrustum(mode Mode) mgl64.Mat4 {
	return c.Projection(RightEye, mode)
}

// Pair is the per-frame projection pair.
type Pair struct {
	Left, Right mgl64.Mat4
}

// Frustums computes both projections.
func (c Camera) Frustums(mode Mode) Pair {
	return Pair{Left: c.LeftFrustum(mode), Right: c.RightFrustum(mode)}
}

// ViewOffset is the eye translation premultiplied onto the view matrix:
// the world shifts right for the left eye and left for the right eye.
func (c Camera) ViewOffset(eye Eye) mgl64.Mat4 {
	dx := c.EyeSeparation / 2
	if eye == RightEye {
		dx = -dx
	}
	return mgl64.Translate3D(dx, 0, 0)
}

// View returns ViewOffset(eye) applied after the shared camera view.
func (c Camera) View(eye Eye, view mgl64.Mat4) mgl64.Mat4 {
	return c.ViewOffset(eye).Mul4(view)
}
