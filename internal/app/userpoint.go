package app

import (
	"math"

	"sievert3d/internal/surface"
)

// UserPoint is a point steered across the surface in (radius, angle).
// Radius stays in [0.25, maxR] and angle in [0, 2π], each wrapping to the
// opposite bound when stepped past an end.
type UserPoint struct {
	Radius float64
	Angle  float64
}

// NewUserPoint returns the point at the inner radius and zero angle.
func NewUserPoint() UserPoint {
	return UserPoint{Radius: surface.MinRadius}
}

// Move adds (dr, da) and wraps out-of-range coordinates.
func (p *UserPoint) Move(dr, da, maxR float64) {
	if dr != 0 {
		p.Radius += dr
		if p.Radius > maxR {
			p.Radius = surface.MinRadius
		} else if p.Radius < surface.MinRadius {
			p.Radius = maxR
		}
	}
	if da != 0 {
		p.Angle += da
		if p.Angle > 2*math.Pi {
			p.Angle = 0
		} else if p.Angle < 0 {
			p.Angle = 2 * math.Pi
		}
	}
}

// Clamp pulls the radius back into range after maxR shrinks.
func (p *UserPoint) Clamp(maxR float64) {
	p.Radius = math.Min(math.Max(p.Radius, surface.MinRadius), maxR)
}
