package preview

import (
	"image"
	"math"

	"sievert3d/internal/stereo"
)

// DrawLine adds level to the masked channels of every pixel on the line
// from (x1, y1) to (x2, y2), saturating at 255. Pixels outside img are
// skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, level uint8, mask stereo.ColorMask) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		plot(img, x1, y1, level, mask)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		plot(img, int(math.Round(x)), int(math.Round(y)), level, mask)
		x += xInc
		y += yInc
	}
}

func plot(img *image.RGBA, x, y int, level uint8, mask stereo.ColorMask) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	offset := img.PixOffset(x, y)
	if mask.R {
		img.Pix[offset] = addSat(img.Pix[offset], level)
	}
	if mask.G {
		img.Pix[offset+1] = addSat(img.Pix[offset+1], level)
	}
	if mask.B {
		img.Pix[offset+2] = addSat(img.Pix[offset+2], level)
	}
	if mask.A {
		img.Pix[offset+3] = addSat(img.Pix[offset+3], level)
	}
}

func addSat(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xff {
		return uint8(s)
	}
	return 0xff
}
