// Package preview draws a mesh as a red/cyan anaglyph wireframe without a
// GPU, for snapshots and tests.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"sievert3d/internal/stereo"
	"sievert3d/internal/surface"
)

// Options describes one stereo frame.
type Options struct {
	Width, Height int
	Camera        stereo.Camera
	Mode          stereo.Mode
	View, Model   mgl64.Mat4
	Stride        int    // draw every Stride-th cell; <= 1 draws all
	Level         uint8  // per-edge intensity
	Label         string // optional caption
}

// maxEdge bounds the length of a single edge so a vertex projected far
// off-screen cannot stall the rasteriser.
const maxEdge = 1 << 14

// Render draws m once per eye into the eye's color channels and returns
// the composite.
func Render(m *surface.Mesh, o Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	level := o.Level
	if level == 0 {
		level = 0x60
	}
	stride := max(o.Stride, 1)

	for _, eye := range stereo.Eyes {
		mvp := o.Camera.Projection(eye, o.Mode).Mul4(o.Camera.View(eye, o.View)).Mul4(o.Model)
		mask := eye.Mask()
		// One cell is two triangles, 18 floats.
		for cell := 0; cell*18 < len(m.Vertices); cell += stride {
			for tri := 0; tri < 2; tri++ {
				base := cell*18 + tri*9
				if base+9 > len(m.Vertices) {
					break
				}
				drawTriangle(img, mvp, m.Vertices[base:base+9], level, mask)
			}
		}
	}

	if o.Label != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, 16),
		}
		d.DrawString(o.Label)
	}
	return img
}

func drawTriangle(img *image.RGBA, mvp mgl64.Mat4, v []float32, level uint8, mask stereo.ColorMask) {
	var xs, ys [3]int
	for i := 0; i < 3; i++ {
		p := mgl64.Vec3{float64(v[i*3]), float64(v[i*3+1]), float64(v[i*3+2])}
		x, y, ok := Project(mvp, p, img.Rect.Dx(), img.Rect.Dy())
		if !ok {
			return
		}
		xs[i], ys[i] = x, y
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if abs(xs[j]-xs[i]) > maxEdge || abs(ys[j]-ys[i]) > maxEdge {
			continue
		}
		DrawLine(img, xs[i], ys[i], xs[j], ys[j], level, mask)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// WritePNG saves img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
