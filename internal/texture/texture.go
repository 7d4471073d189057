// Package texture prepares RGBA images for upload as the surface texture.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxSize is the largest edge uploaded; bigger images are downscaled.
const MaxSize = 2048

// ErrEmpty indicates an image with no pixels.
var ErrEmpty = errors.New("texture: empty image")

// Load decodes the image file at path.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format and normalises it.
func Decode(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	out, err := Normalize(src, MaxSize)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", format, err)
	}
	return out, nil
}

// Normalize converts src to a zero-origin RGBA no larger than maxSize on
// either edge, keeping the aspect ratio.
func Normalize(src image.Image, maxSize int) (*image.RGBA, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmpty
	}

	if w <= maxSize && h <= maxSize {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst, nil
	}

	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// Checker returns a size×size texture of cells×cells alternating squares
// with thin grid lines, used when no image is supplied.
func Checker(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 || cells <= 0 {
		return img
	}
	light := image.NewUniform(color.RGBA{0xe0, 0xe0, 0xe0, 0xff})
	dark := image.NewUniform(color.RGBA{0x40, 0x40, 0x40, 0xff})
	line := image.NewUniform(color.RGBA{0xff, 0xff, 0xff, 0xff})

	cell := max(1, size/cells)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			fill := light
			if (x/cell+y/cell)%2 == 1 {
				fill = dark
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell), fill, image.Point{}, draw.Src)
		}
		draw.Draw(img, image.Rect(0, y, size, y+1), line, image.Point{}, draw.Src)
	}
	for x := 0; x < size; x += cell {
		draw.Draw(img, image.Rect(x, 0, x+1, size), line, image.Point{}, draw.Src)
	}
	return img
}
