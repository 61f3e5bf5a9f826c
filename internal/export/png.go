// internal/export/png.go

// Package export writes finished frames to image files.
package export

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/draw"

	"go-solar-system/pkg/render"
)

// Scaled returns the framebuffer as an image enlarged by an integer factor
// with nearest-neighbour sampling, so pixels stay crisp.
func Scaled(fb *render.Framebuffer, scale int) *image.RGBA {
	src := fb.Image()
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the framebuffer to path as a PNG.
func SavePNG(fb *render.Framebuffer, path string, scale int) error {
	if err := imgio.Save(path, Scaled(fb, scale), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
