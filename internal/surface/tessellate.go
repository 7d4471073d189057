package surface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Options controls the optional stages of Tessellate.
type Options struct {
	Delta     float64 // finite-difference step for normals
	Normals   bool    // emit the normal stream
	TexCoords TexCoordMode
}

// DefaultOptions returns normals on, DefaultDelta and normalized texcoords.
func DefaultOptions() Options {
	return Options{Delta: DefaultDelta, Normals: true, TexCoords: TexCoordNormalized}
}

// corner is one evaluated grid point.
type corner struct {
	pos mgl64.Vec3
	nrm mgl64.Vec3
	tc  mgl64.Vec2
}

// Tessellate walks d cell by cell and emits two triangles per cell,
// (p1, p2, p3) and (p2, p4, p3), where p1=(u,v), p2=(u,v+step),
// p3=(u+step,v), p4=(u+step,v+step). Output is in u-major, v-minor order.
// Cells with a non-finite corner are skipped whole.
func Tessellate(d Domain, s Surface, opts Options) (*Mesh, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	if opts.Normals && !(opts.Delta > 0) {
		return nil, fmt.Errorf("tessellate: delta %g: %w", opts.Delta, ErrBadDelta)
	}

	cells := int(d.cells())
	m := &Mesh{
		Vertices:  make([]float32, 0, cells*18),
		TexCoords: make([]float32, 0, cells*12),
	}
	if opts.Normals {
		m.Normals = make([]float32, 0, cells*18)
	}

	at := func(u, v float64) corner {
		c := corner{pos: s.Evaluate(u, v), tc: TexCoord(u, v, d.MaxR, opts.TexCoords)}
		if opts.Normals {
			c.nrm = Normal(s, u, v, opts.Delta)
		}
		return c
	}

	step := d.Step
	for u := d.UMin; u <= d.UMax; u += step {
		for v := d.VMin; v < d.VMax; v += step {
			p1 := at(u, v)
			p2 := at(u, v+step)
			p3 := at(u+step, v)
			p4 := at(u+step, v+step)
			if !finiteVec(p1.pos) || !finiteVec(p2.pos) || !finiteVec(p3.pos) || !finiteVec(p4.pos) {
				continue
			}
			for _, c := range [6]*corner{&p1, &p2, &p3, &p2, &p4, &p3} {
				m.push(c, opts.Normals)
			}
		}
	}
	return m, nil
}

func (m *Mesh) push(c *corner, normals bool) {
	m.Vertices = append(m.Vertices, float32(c.pos[0]), float32(c.pos[1]), float32(c.pos[2]))
	if normals {
		m.Normals = append(m.Normals, float32(c.nrm[0]), float32(c.nrm[1]), float32(c.nrm[2]))
	}
	m.TexCoords = append(m.TexCoords, float32(c.tc[0]), float32(c.tc[1]))
}
