// pkg/render/framebuffer.go

// Package render owns the pixel buffer and the rasterization loop that
// evaluates shaders over it.
package render

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	"go-solar-system/internal/shader"
	"go-solar-system/internal/utils"
)

// Framebuffer is a width*height grid of packed 0x00RRGGBB pixels.
// Draw calls mutate it in place; the last draw wins at every pixel.
// A Framebuffer is not safe for concurrent draw calls.
type Framebuffer struct {
	width, height int
	pix           []uint32
	background    uint32
	colors        SceneColors
	workers       int
}

// NewFramebuffer allocates a framebuffer filled with background.
func NewFramebuffer(width, height int, background uint32) *Framebuffer {
	width = max(width, 0)
	height = max(height, 0)
	fb := &Framebuffer{
		width:      width,
		height:     height,
		pix:        make([]uint32, width*height),
		background: background,
		colors:     DefaultColors(),
		workers:    1,
	}
	fb.Clear()
	return fb
}

// SetColors replaces the star and orbit colours.
func (fb *Framebuffer) SetColors(c SceneColors) {
	fb.colors = c
}

// SetWorkers sets how many rows of a single draw call may be shaded
// concurrently. n <= 1 shades serially.
func (fb *Framebuffer) SetWorkers(n int) {
	fb.workers = max(n, 1)
}

// Clear resets every pixel to the background colour.
func (fb *Framebuffer) Clear() {
	for i := range fb.pix {
		fb.pix[i] = fb.background
	}
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// Background returns the packed background colour.
func (fb *Framebuffer) Background() uint32 { return fb.background }

// Bounds returns the pixel rectangle of the buffer.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// Buffer exposes the pixels in row-major order. Callers must not modify it.
func (fb *Framebuffer) Buffer() []uint32 {
	return fb.pix
}

// At returns the packed pixel at (x, y), or the background outside the buffer.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return fb.background
	}
	return fb.pix[y*fb.width+x]
}

// Image converts the buffer to an opaque RGBA image.
func (fb *Framebuffer) Image() *image.RGBA {
	return ImageFromPixels(fb.pix, fb.width, fb.height)
}

// ImageFromPixels converts w*h packed 0x00RRGGBB pixels in row-major order
// to an opaque RGBA image. pix must hold at least w*h entries.
func ImageFromPixels(pix []uint32, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := pix[y*w : (y+1)*w]
		off := y * img.Stride
		for x, u := range row {
			img.Pix[off+4*x+0] = uint8(u >> 16)
			img.Pix[off+4*x+1] = uint8(u >> 8)
			img.Pix[off+4*x+2] = uint8(u)
			img.Pix[off+4*x+3] = 0xff
		}
	}
	return img
}

// Rasterize evaluates shade at every pixel of bounds (clipped to the buffer)
// and writes the packed result wherever the shader reports coverage. Pixels
// are sampled at their integer coordinates.
func (fb *Framebuffer) Rasterize(bounds image.Rectangle, shade shader.Func) {
	r := bounds.Intersect(fb.Bounds())
	if r.Empty() {
		return
	}
	if fb.workers <= 1 || r.Dy() < 2 {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			fb.shadeRow(y, r.Min.X, r.Max.X, shade)
		}
		return
	}

	// rows are disjoint, so workers never touch the same pixel
	var g errgroup.Group
	g.SetLimit(fb.workers)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		y := y
		g.Go(func() error {
			fb.shadeRow(y, r.Min.X, r.Max.X, shade)
			return nil
		})
	}
	_ = g.Wait()
}

func (fb *Framebuffer) shadeRow(y, xMin, xMax int, shade shader.Func) {
	row := fb.pix[y*fb.width : (y+1)*fb.width]
	py := float32(y)
	for x := xMin; x < xMax; x++ {
		c := shade(utils.V2(float32(x), py))
		if c.Covered() {
			row[x] = shader.Pack(c)
		}
	}
}

// boxBounds returns the pixel rectangle covering center ± (hw, hh),
// clamped to one pixel beyond the buffer before the int conversion so huge
// extents cannot overflow. Non-positive or NaN extents give an empty
// rectangle.
func (fb *Framebuffer) boxBounds(center utils.Vec2, hw, hh float32) image.Rectangle {
	if !(hw > 0) || !(hh > 0) {
		return image.Rectangle{}
	}
	w, h := float32(fb.width), float32(fb.height)
	x0 := utils.Clamp(math32.Floor(center.X-hw), -1, w+1)
	y0 := utils.Clamp(math32.Floor(center.Y-hh), -1, h+1)
	x1 := utils.Clamp(math32.Ceil(center.X+hw)+1, -1, w+1)
	y1 := utils.Clamp(math32.Ceil(center.Y+hh)+1, -1, h+1)
	if !(x0 < x1) || !(y0 < y1) {
		return image.Rectangle{}
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// DrawStar draws a star core of the given radius with a glow that fades
// into the background by shader.GlowExtent radii.
func (fb *Framebuffer) DrawStar(center utils.Vec2, radius float32) {
	bg := shader.Unpack(fb.background)
	f := shader.Star(center, radius, fb.colors.StarCore, fb.colors.StarGlow, shader.RGB{R: bg.R, G: bg.G, B: bg.B})
	ext := radius * shader.GlowExtent
	fb.Rasterize(fb.boxBounds(center, ext, ext), f)
}

// DrawOrbit draws a thin circle outline; the interior is left untouched.
func (fb *Framebuffer) DrawOrbit(center utils.Vec2, radius float32) {
	if !(radius > 0) {
		return
	}
	th := fb.colors.OrbitThickness
	f := shader.Orbit(center, radius, th, fb.colors.Orbit)
	fb.Rasterize(fb.boxBounds(center, radius+th, radius+th), f)
}

// DrawBody shades a planetary body over its bounding square, then its ring
// if it has one.
func (fb *Framebuffer) DrawBody(center utils.Vec2, radius float32, palette uint, gas, ring bool) {
	b := shader.Body{Center: center, Radius: radius, Palette: palette, Gas: gas}
	fb.Rasterize(fb.boxBounds(center, radius, radius), shader.Planet(b))
	if ring {
		hw, hh := shader.RingExtent(radius)
		fb.Rasterize(fb.boxBounds(center, hw, hh), shader.Ring(b))
	}
}
