package preview

import "github.com/go-gl/mathgl/mgl64"

// Project maps a model-space point through mvp to pixel coordinates.
// ok is false when the point lies behind the eye or outside the depth range.
func Project(mvp mgl64.Mat4, p mgl64.Vec3, width, height int) (x, y int, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = int((ndc.X() + 1) / 2 * float64(width))
	y = int((1 - ndc.Y()) / 2 * float64(height))
	return x, y, true
}
