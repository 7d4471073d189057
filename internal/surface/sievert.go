// Package surface evaluates the Sievert surface and tessellates its
// parameter domain into flat vertex, normal and texture-coordinate streams
// ready for GPU upload.
package surface

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape constant of the Sievert family.
const C = 2.0

// DefaultDelta is the finite-difference step used for normals.
const DefaultDelta = 0.001

// DegenerateEpsilon is the smallest cross-product length accepted as a
// normal. Below it the tangents are treated as parallel.
const DegenerateEpsilon = 1e-12

// DefaultNormal replaces normals that cannot be estimated.
var DefaultNormal = mgl64.Vec3{0, 0, 1}

// Surface maps a (u, v) parameter pair to a point in space.
type Surface interface {
	Evaluate(u, v float64) mgl64.Vec3
}

// Sievert is the Sievert surface with shape constant C.
type Sievert struct{}

// Evaluate implements Surface.
func (Sievert) Evaluate(u, v float64) mgl64.Vec3 {
	return Evaluate(u, v)
}

// Evaluate returns the Sievert surface point at (u, v). It is pure; callers
// keep v > 0 because ln(tan(v/2)) diverges at v = 0. Near odd multiples of
// π/2 in u the result may be non-finite.
func Evaluate(u, v float64) mgl64.Vec3 {
	sqC1 := math.Sqrt(C + 1)
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)

	fiU := -u/sqC1 + math.Atan(sqC1*math.Tan(u))
	aUV := 2 / (C + 1 - C*sinV*sinV*cosU*cosU)
	rUV := (aUV / math.Sqrt(C)) * math.Sqrt((C+1)*(1+C*sinU*sinU)) * sinV

	return mgl64.Vec3{
		rUV * math.Cos(fiU),
		rUV * math.Sin(fiU),
		(math.Log(math.Tan(v/2)) + aUV*(C+1)*cosV) / math.Sqrt(C),
	}
}

// Normal estimates the unit normal of s at (u, v) from forward differences
// with step delta. Where the tangents are parallel or not finite it returns
// DefaultNormal.
func Normal(s Surface, u, v, delta float64) mgl64.Vec3 {
	p := s.Evaluate(u, v)
	du := s.Evaluate(u+delta, v).Sub(p).Mul(1 / delta)
	dv := s.Evaluate(u, v+delta).Sub(p).Mul(1 / delta)

	n := du.Cross(dv)
	l := n.Len()
	if !finite(l) || l < DegenerateEpsilon {
		return DefaultNormal
	}
	return n.Mul(1 / l)
}

// TexCoordMode selects how v maps to the second texture coordinate.
type TexCoordMode int

const (
	// TexCoordNormalized maps v to v/(2π).
	TexCoordNormalized TexCoordMode = iota
	// TexCoordLegacy maps v to (v/2)·π, as one variant of the viewer did.
	TexCoordLegacy
)

func (m TexCoordMode) String() string {
	switch m {
	case TexCoordNormalized:
		return "normalized"
	case TexCoordLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseTexCoordMode accepts the names returned by TexCoordMode.String.
func ParseTexCoordMode(s string) (TexCoordMode, error) {
	switch s {
	case "normalized":
		return TexCoordNormalized, nil
	case "legacy":
		return TexCoordLegacy, nil
	default:
		return 0, ErrUnknownTexCoordMode
	}
}

// TexCoord maps (u, v) into texture space. maxR must differ from 0.25.
func TexCoord(u, v, maxR float64, mode TexCoordMode) mgl64.Vec2 {
	tc := mgl64.Vec2{(u - 0.25) / (maxR - 0.25)}
	if mode == TexCoordLegacy {
		tc[1] = v / 2 * math.Pi
	} else {
		tc[1] = v / (2 * math.Pi)
	}
	return tc
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(p mgl64.Vec3) bool {
	return finite(p[0]) && finite(p[1]) && finite(p[2])
}
