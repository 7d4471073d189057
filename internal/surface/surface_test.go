package surface_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"sievert3d/internal/surface"
)

// planeSurface returns (u, v, 0) so corner positions are known exactly.
type planeSurface struct{}

func (planeSurface) Evaluate(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, v, 0} }

// ridgeSurface has parallel tangents everywhere.
type ridgeSurface struct{}

func (ridgeSurface) Evaluate(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, u, 0} }

// holeySurface is undefined for u > 0.
type holeySurface struct{}

func (holeySurface) Evaluate(u, v float64) mgl64.Vec3 {
	if u > 0 {
		return mgl64.Vec3{math.NaN(), 0, 0}
	}
	return mgl64.Vec3{u, v, 0}
}

func TestEvaluate_FiniteOverDomain(t *testing.T) {
	d := surface.DefaultDomain(1)
	for u := d.UMin; u <= d.UMax; u += 0.37 {
		for v := d.VMin; v < d.VMax; v += 0.05 {
			p := surface.Evaluate(u, v)
			for k := 0; k < 3; k++ {
				require.False(t, math.IsNaN(p[k]) || math.IsInf(p[k], 0), "u=%g v=%g -> %v", u, v, p)
			}
		}
	}
}

func TestEvaluate_KnownPoint(t *testing.T) {
	// At u=0: fiU=0, aUV=2/(3-2sin²v), so y=0 and x=rUV.
	v := math.Pi / 4
	p := surface.Evaluate(0, v)
	aUV := 2 / (3 - 2*0.5)
	require.InDelta(t, aUV/math.Sqrt2*math.Sqrt(3)*math.Sin(v), p.X(), 1e-12)
	require.InDelta(t, 0, p.Y(), 1e-12)
	require.InDelta(t, (math.Log(math.Tan(v/2))+aUV*3*math.Cos(v))/math.Sqrt2, p.Z(), 1e-12)
	require.Equal(t, p, surface.Sievert{}.Evaluate(0, v))
}

func TestNormal_UnitLength(t *testing.T) {
	d := surface.DefaultDomain(1)
	for u := d.UMin; u <= d.UMax; u += 0.41 {
		for v := d.VMin; v < d.VMax; v += 0.07 {
			n := surface.Normal(surface.Sievert{}, u, v, surface.DefaultDelta)
			require.InDelta(t, 1, n.Len(), 1e-4, "u=%g v=%g", u, v)
		}
	}
}

func TestNormal_Plane(t *testing.T) {
	n := surface.Normal(planeSurface{}, 0.3, 0.7, surface.DefaultDelta)
	require.InDelta(t, 0, n.X(), 1e-9)
	require.InDelta(t, 0, n.Y(), 1e-9)
	require.InDelta(t, 1, n.Z(), 1e-9)
}

func TestNormal_DegenerateFallsBack(t *testing.T) {
	n := surface.Normal(ridgeSurface{}, 1, 1, surface.DefaultDelta)
	require.Equal(t, surface.DefaultNormal, n)

	n = surface.Normal(holeySurface{}, 1, 1, surface.DefaultDelta)
	require.Equal(t, surface.DefaultNormal, n)
}

func TestTexCoord(t *testing.T) {
	for _, maxR := range []float64{0.3, 1, 2.5, 10, -4} {
		tc := surface.TexCoord(0.25, 1, maxR, surface.TexCoordNormalized)
		require.Zero(t, tc.X(), "maxR=%g", maxR)
	}

	tc := surface.TexCoord(1, math.Pi, 1, surface.TexCoordNormalized)
	require.InDelta(t, 1, tc.X(), 1e-12)
	require.InDelta(t, 0.5, tc.Y(), 1e-12)

	// The legacy mapping is (v/2)·π, not v/(2π).
	tc = surface.TexCoord(1, 1, 1, surface.TexCoordLegacy)
	require.InDelta(t, math.Pi/2, tc.Y(), 1e-12)
}

func TestParseTexCoordMode(t *testing.T) {
	for _, m := range []surface.TexCoordMode{surface.TexCoordNormalized, surface.TexCoordLegacy} {
		got, err := surface.ParseTexCoordMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := surface.ParseTexCoordMode("polar")
	require.ErrorIs(t, err, surface.ErrUnknownTexCoordMode)
}
