package surface_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"sievert3d/internal/surface"
)

func TestDomain_Validate(t *testing.T) {
	ok := surface.DefaultDomain(1)
	require.NoError(t, ok.Validate())

	cases := []struct {
		name   string
		mutate func(*surface.Domain)
		want   error
	}{
		{"radius at pole", func(d *surface.Domain) { d.MaxR = 0.25 }, surface.ErrBadRadius},
		{"radius below pole", func(d *surface.Domain) { d.MaxR = 0.1 }, surface.ErrBadRadius},
		{"zero step", func(d *surface.Domain) { d.Step = 0 }, surface.ErrBadStep},
		{"negative step", func(d *surface.Domain) { d.Step = -0.03 }, surface.ErrBadStep},
		{"step below float spacing", func(d *surface.Domain) { d.Step = 1e-18 }, surface.ErrTooFine},
		{"too many cells", func(d *surface.Domain) { d.Step = 1e-4 }, surface.ErrTooFine},
		{"empty u", func(d *surface.Domain) { d.UMin = d.UMax }, surface.ErrEmptyRange},
		{"reversed v", func(d *surface.Domain) { d.VMin, d.VMax = d.VMax, d.VMin }, surface.ErrEmptyRange},
		{"v touches zero", func(d *surface.Domain) { d.VMin = 0 }, surface.ErrSingularV},
		{"nan", func(d *surface.Domain) { d.UMax = math.NaN() }, surface.ErrNonFinite},
		{"inf", func(d *surface.Domain) { d.Step = math.Inf(1) }, surface.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := surface.DefaultDomain(1)
			tc.mutate(&d)
			require.ErrorIs(t, d.Validate(), tc.want)
		})
	}
}

func TestTessellate_RejectsBadDomain(t *testing.T) {
	m, err := surface.Tessellate(surface.DefaultDomain(0.25), surface.Sievert{}, surface.DefaultOptions())
	require.ErrorIs(t, err, surface.ErrBadRadius)
	require.Nil(t, m)

	d := surface.DefaultDomain(1)
	d.Step = 1e-18
	m, err = surface.Tessellate(d, surface.Sievert{}, surface.DefaultOptions())
	require.ErrorIs(t, err, surface.ErrTooFine)
	require.Nil(t, m)

	opts := surface.DefaultOptions()
	opts.Delta = 0
	_, err = surface.Tessellate(surface.DefaultDomain(1), surface.Sievert{}, opts)
	require.ErrorIs(t, err, surface.ErrBadDelta)
}

func TestTessellate_Winding(t *testing.T) {
	// One cell: u=0 only, v=0.5 only.
	d := surface.Domain{UMin: 0, UMax: 0.5, VMin: 0.5, VMax: 1, Step: 1, MaxR: 1}
	m, err := surface.Tessellate(d, planeSurface{}, surface.DefaultOptions())
	require.NoError(t, err)

	p1 := []float32{0, 0.5, 0}
	p2 := []float32{0, 1.5, 0}
	p3 := []float32{1, 0.5, 0}
	p4 := []float32{1, 1.5, 0}
	var want []float32
	for _, p := range [][]float32{p1, p2, p3, p2, p4, p3} {
		want = append(want, p...)
	}
	require.Equal(t, want, m.Vertices)
	require.Equal(t, 2, m.TriangleCount())

	// Plane normals all face +z.
	for i := 0; i < len(m.Normals); i += 3 {
		require.InDelta(t, 1, m.Normals[i+2], 1e-6)
	}

	tc := func(u, v float64) []float32 {
		c := surface.TexCoord(u, v, 1, surface.TexCoordNormalized)
		return []float32{float32(c.X()), float32(c.Y())}
	}
	var wantTC []float32
	for _, c := range [][]float32{tc(0, 0.5), tc(0, 1.5), tc(1, 0.5), tc(0, 1.5), tc(1, 1.5), tc(1, 0.5)} {
		wantTC = append(wantTC, c...)
	}
	require.Equal(t, wantTC, m.TexCoords)
}

func TestTessellate_RowMajorOrder(t *testing.T) {
	// Two u rows by two v columns; first vertex of each cell is p1.
	d := surface.Domain{UMin: 0, UMax: 1.5, VMin: 0.5, VMax: 2, Step: 1, MaxR: 1}
	m, err := surface.Tessellate(d, planeSurface{}, surface.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 24, m.VertexCount())

	var firsts [][2]float32
	for cell := 0; cell < 4; cell++ {
		i := cell * 18
		firsts = append(firsts, [2]float32{m.Vertices[i], m.Vertices[i+1]})
	}
	require.Equal(t, [][2]float32{{0, 0.5}, {0, 1.5}, {1, 0.5}, {1, 1.5}}, firsts)
}

func TestTessellate_SkipsNonFiniteCells(t *testing.T) {
	// u=-1 cell has corners at u=-1 and u=0; u=0 cell reaches u=1 and is dropped.
	d := surface.Domain{UMin: -1, UMax: 0, VMin: 0.5, VMax: 1, Step: 1, MaxR: 1}
	m, err := surface.Tessellate(d, holeySurface{}, surface.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 6, m.VertexCount())
	require.NoError(t, m.Validate())
}

func TestTessellate_DefaultDomainLengths(t *testing.T) {
	m, err := surface.Tessellate(surface.DefaultDomain(1), surface.Sievert{}, surface.DefaultOptions())
	require.NoError(t, err)
	require.False(t, m.IsEmpty())
	require.Zero(t, m.VertexCount()%6)
	require.Len(t, m.Normals, len(m.Vertices))
	require.Len(t, m.TexCoords, len(m.Vertices)*2/3)
	require.NoError(t, m.Validate())

	for i := 0; i < len(m.Normals); i += 3 {
		x, y, z := float64(m.Normals[i]), float64(m.Normals[i+1]), float64(m.Normals[i+2])
		require.InDelta(t, 1, math.Sqrt(x*x+y*y+z*z), 1e-4)
	}
}

func TestTessellate_Deterministic(t *testing.T) {
	a, err := surface.Tessellate(surface.DefaultDomain(1), surface.Sievert{}, surface.DefaultOptions())
	require.NoError(t, err)
	b, err := surface.Tessellate(surface.DefaultDomain(1), surface.Sievert{}, surface.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, -1, firstBitDiff(a.Vertices, b.Vertices))
	require.Equal(t, -1, firstBitDiff(a.Normals, b.Normals))
	require.Equal(t, -1, firstBitDiff(a.TexCoords, b.TexCoords))
}

// firstBitDiff returns the first index where a and b differ bitwise, or -1.
func firstBitDiff(a, b []float32) int {
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return i
		}
	}
	return -1
}

func TestTessellate_WithoutNormals(t *testing.T) {
	opts := surface.DefaultOptions()
	opts.Normals = false
	opts.Delta = 0
	m, err := surface.Tessellate(surface.DefaultDomain(2), surface.Sievert{}, opts)
	require.NoError(t, err)
	require.False(t, m.HasNormals())
	require.NoError(t, m.Validate())
}

func TestMesh_ValidateAndBounds(t *testing.T) {
	m := &surface.Mesh{
		Vertices:  []float32{0, 1, 2, -3, 4, 5, 6, -7, 8},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		TexCoords: []float32{0, 0, 1, 0, 1, 1},
	}
	require.NoError(t, m.Validate())
	lo, hi := m.Bounds()
	require.Equal(t, [3]float32{-3, -7, 2}, [3]float32(lo))
	require.Equal(t, [3]float32{6, 4, 8}, [3]float32(hi))

	m.TexCoords = m.TexCoords[:4]
	require.ErrorIs(t, m.Validate(), surface.ErrLengthMismatch)
}
