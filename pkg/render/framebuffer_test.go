package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"

	"go-solar-system/internal/shader"
	"go-solar-system/internal/utils"
)

const (
	testW  = 160
	testH  = 120
	testBG = 0x050510
)

func distance(x, y int, c utils.Vec2) float32 {
	return utils.V2(float32(x), float32(y)).Sub(c).Len()
}

func snapshot(fb *Framebuffer) []uint32 {
	return append([]uint32(nil), fb.Buffer()...)
}

func TestNewFramebufferBackground(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	if len(fb.Buffer()) != testW*testH {
		t.Fatalf("len = %d, want %d", len(fb.Buffer()), testW*testH)
	}
	for i, u := range fb.Buffer() {
		if u != testBG {
			t.Fatalf("pixel %d = %#06x, want background", i, u)
		}
	}
	if fb.Width() != testW || fb.Height() != testH || fb.Background() != testBG {
		t.Errorf("accessors: %d x %d bg %#06x", fb.Width(), fb.Height(), fb.Background())
	}
	if fb.At(-1, 0) != testBG || fb.At(testW, 0) != testBG {
		t.Error("At outside the buffer should report the background")
	}
}

func TestDrawBodyEndToEnd(t *testing.T) {
	for _, gas := range []bool{false, true} {
		fb := NewFramebuffer(testW, testH, testBG)
		center := utils.V2(testW/2, testH/2)
		const radius = 20
		fb.DrawBody(center, radius, 0, gas, false)

		for y := 0; y < testH; y++ {
			for x := 0; x < testW; x++ {
				if distance(x, y, center) > radius && fb.At(x, y) != testBG {
					t.Fatalf("gas=%v: pixel (%d, %d) outside the body changed to %#06x", gas, x, y, fb.At(x, y))
				}
			}
		}

		want := shader.Pack(shader.Shade(center, center, radius, 0, gas))
		if got := fb.At(testW/2, testH/2); got != want {
			t.Errorf("gas=%v: centre = %#06x, want %#06x", gas, got, want)
		}
		if got := fb.At(testW/2+radius-1, testH/2); got == testBG {
			t.Errorf("gas=%v: pixel inside the disc was not drawn", gas)
		}
	}
}

func TestDrawBodyCentreIsBaseColour(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	center := utils.V2(testW/2, testH/2)
	fb.DrawBody(center, 20, 0, false, false)

	base := shader.BasePalette(false, 0)
	r := base.R * utils.Mix(shader.StrataRedLow, shader.StrataRedHigh, 0.5) * shader.Saturation
	g := base.G * utils.Mix(shader.StrataGrnLow, shader.StrataGrnHigh, 0.5) * shader.Saturation
	b := base.B * utils.Mix(shader.StrataBluLow, shader.StrataBluHigh, 0.5*shader.StrataBluBias) * shader.Saturation
	if got, want := fb.At(testW/2, testH/2), shader.PackRGB(r, g, b); got != want {
		t.Errorf("centre = %#06x, want %#06x", got, want)
	}
}

func TestBodyOverwritesOrbit(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	center := utils.V2(testW/2, testH/2)
	const ringR, bodyR = 15, 30

	fb.DrawOrbit(center, ringR)
	orbit := shader.PackRGB(fb.colors.Orbit.R, fb.colors.Orbit.G, fb.colors.Orbit.B)
	drawn := 0
	for _, u := range fb.Buffer() {
		if u == orbit {
			drawn++
		}
	}
	if drawn == 0 {
		t.Fatal("orbit drew no pixels")
	}

	fb.DrawBody(center, bodyR, 2, false, false)
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			d := distance(x, y, center)
			if d > bodyR {
				continue
			}
			want := shader.Pack(shader.Shade(utils.V2(float32(x), float32(y)), center, bodyR, 2, false))
			if got := fb.At(x, y); got != want {
				t.Fatalf("(%d, %d) = %#06x, want body colour %#06x", x, y, got, want)
			}
		}
	}
}

func TestDrawOrbit(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	center := utils.V2(80, 60)
	fb.DrawOrbit(center, 40)
	orbit := shader.PackRGB(fb.colors.Orbit.R, fb.colors.Orbit.G, fb.colors.Orbit.B)

	if got := fb.At(120, 60); got != orbit {
		t.Errorf("on ring = %#06x, want %#06x", got, orbit)
	}
	if got := fb.At(80, 20); got != orbit {
		t.Errorf("top of ring = %#06x, want %#06x", got, orbit)
	}
	for _, p := range [][2]int{{80, 60}, {100, 60}, {150, 60}, {0, 0}} {
		if got := fb.At(p[0], p[1]); got != testBG {
			t.Errorf("%v = %#06x, want background", p, got)
		}
	}
}

func TestDrawStar(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	center := utils.V2(80, 60)
	const radius = 10
	fb.DrawStar(center, radius)

	core := fb.colors.StarCore
	if got, want := fb.At(80, 60), shader.PackRGB(core.R, core.G, core.B); got != want {
		t.Errorf("core = %#06x, want %#06x", got, want)
	}
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			if distance(x, y, center) > radius*shader.GlowExtent+0.5 && fb.At(x, y) != testBG {
				t.Fatalf("(%d, %d) beyond the glow changed", x, y)
			}
		}
	}
	// glow dims outward along a row
	prev := uint32(0xff)
	for x := 80 + radius + 1; x < 80+radius*shader.GlowExtent; x++ {
		red := fb.At(x, 60) >> 16 & 0xff
		if red > prev {
			t.Fatalf("glow brightened at x=%d", x)
		}
		prev = red
	}
}

func TestDrawBodyWithRing(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	center := utils.V2(80, 60)
	const radius = 16
	fb.DrawBody(center, radius, 0, true, true)

	hw, hh := shader.RingExtent(radius)
	ring := shader.Ring(shader.Body{Center: center, Radius: radius, Palette: 0, Gas: true})
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			p := utils.V2(float32(x), float32(y))
			inDisc := p.Sub(center).Len() <= radius
			inRing := ring(p).Covered()
			if !inDisc && !inRing && fb.At(x, y) != testBG {
				t.Fatalf("(%d, %d) outside disc and ring changed", x, y)
			}
			if inRing {
				if got, want := fb.At(x, y), shader.Pack(ring(p)); got != want {
					t.Fatalf("(%d, %d) ring = %#06x, want %#06x", x, y, got, want)
				}
			}
		}
	}
	side := int(center.X + radius*(shader.RingInner+shader.RingOuter)/2)
	if fb.At(side, 60) == testBG {
		t.Error("ring band pixel was not drawn")
	}
	if float32(side-80) > hw || hh <= 0 {
		t.Error("ring extent inconsistent")
	}
}

func TestDegenerateRadiusDrawsNothing(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	before := snapshot(fb)
	c := utils.V2(80, 60)
	for _, r := range []float32{0, -10} {
		fb.DrawBody(c, r, 0, false, true)
		fb.DrawBody(c, r, 1, true, false)
		fb.DrawStar(c, r)
		fb.DrawOrbit(c, r)
	}
	for i, u := range fb.Buffer() {
		if u != before[i] {
			t.Fatalf("pixel %d changed for a degenerate radius", i)
		}
	}
}

func TestClippedAtEdges(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	fb.DrawBody(utils.V2(-5, -5), 20, 1, false, false)
	fb.DrawBody(utils.V2(testW+2, testH+2), 30, 1, true, true)
	fb.DrawStar(utils.V2(0, testH), 25)
	if fb.At(0, 0) == testBG {
		t.Error("body overlapping the corner should be visible")
	}
}

func TestRasterizeParallelMatchesSerial(t *testing.T) {
	draw := func(fb *Framebuffer) {
		sun := utils.V2(80, 60)
		fb.DrawStar(sun, 12)
		fb.DrawOrbit(sun, 35)
		fb.DrawOrbit(sun, 55)
		fb.DrawBody(utils.V2(115, 60), 9, 0, false, false)
		fb.DrawBody(utils.V2(40, 40), 14, 1, true, true)
	}
	serial := NewFramebuffer(testW, testH, testBG)
	draw(serial)
	parallel := NewFramebuffer(testW, testH, testBG)
	parallel.SetWorkers(8)
	draw(parallel)

	for i, u := range serial.Buffer() {
		if parallel.Buffer()[i] != u {
			t.Fatalf("pixel %d differs: serial %#06x parallel %#06x", i, u, parallel.Buffer()[i])
		}
	}
}

func TestRasterizeEmptyBounds(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	calls := 0
	f := func(utils.Vec2) shader.Color {
		calls++
		return shader.Opaque(1, 1, 1)
	}
	fb.Rasterize(image.Rectangle{}, f)
	fb.Rasterize(image.Rect(testW+10, 0, testW+20, 10), f)
	if calls != 0 {
		t.Errorf("shader called %d times for empty bounds", calls)
	}
	fb.Rasterize(image.Rect(-2, -2, 2, 2), f)
	if calls != 4 {
		t.Errorf("clipped bounds: %d calls, want 4", calls)
	}
	if fb.At(0, 0) != 0xffffff || fb.At(2, 2) != testBG {
		t.Error("clipped write landed in the wrong place")
	}
}

func TestImage(t *testing.T) {
	fb := NewFramebuffer(4, 3, 0x102030)
	fb.Rasterize(image.Rect(1, 1, 2, 2), func(utils.Vec2) shader.Color { return shader.Opaque(1, 0, 0) })
	img := fb.Image()
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if c := img.RGBAAt(0, 0); c.R != 0x10 || c.G != 0x20 || c.B != 0x30 || c.A != 0xff {
		t.Errorf("background pixel = %+v", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 0xff || c.G != 0 || c.B != 0 {
		t.Errorf("drawn pixel = %+v", c)
	}
}

func TestDarkenColor(t *testing.T) {
	c := DarkenColor(RGBToColor(shader.RGB{R: 1, G: 1, B: 1}))
	if c.R != 127 || c.G != 127 || c.B != 127 || c.A != 0xff {
		t.Errorf("DarkenColor(white) = %+v", c)
	}
}

func TestImageFromPixels(t *testing.T) {
	pix := []uint32{0xff0000, 0x00ff00, 0x0000ff, 0x123456, 0xdeadbeef}
	img := ImageFromPixels(pix, 2, 2)
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	want := []color.RGBA{
		{0xff, 0, 0, 0xff}, {0, 0xff, 0, 0xff},
		{0, 0, 0xff, 0xff}, {0x12, 0x34, 0x56, 0xff},
	}
	for i, w := range want {
		if got := img.RGBAAt(i%2, i/2); got != w {
			t.Errorf("pixel %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestHugeRadiusCoversBuffer(t *testing.T) {
	center := utils.V2(testW/2, testH/2)
	for _, r := range []float32{3e9, 1e20, 1e30} {
		fb := NewFramebuffer(testW, testH, testBG)
		fb.DrawBody(center, r, 1, false, false)
		for y := 0; y < testH; y++ {
			for x := 0; x < testW; x++ {
				p := utils.V2(float32(x), float32(y))
				want := shader.Pack(shader.Shade(p, center, r, 1, false))
				if got := fb.At(x, y); got != want {
					t.Fatalf("r=%v: (%d, %d) = %#06x, want %#06x", r, x, y, got, want)
				}
			}
		}
		if fb.At(0, 0) == testBG {
			t.Errorf("r=%v: body did not cover the corner", r)
		}
	}
}

func TestBoxBounds(t *testing.T) {
	fb := NewFramebuffer(testW, testH, testBG)
	nan := math32.NaN()
	tests := []struct {
		name   string
		center utils.Vec2
		hw, hh float32
		want   image.Rectangle
	}{
		{"inside", utils.V2(10, 10), 2, 3, image.Rect(8, 7, 13, 14)},
		{"huge", utils.V2(10, 10), 1e30, 1e30, image.Rect(-1, -1, testW+1, testH+1)},
		{"infinite", utils.V2(10, 10), math32.Inf(1), 1, image.Rect(-1, 9, testW+1, 12)},
		{"zero", utils.V2(10, 10), 0, 3, image.Rectangle{}},
		{"nan extent", utils.V2(10, 10), nan, 3, image.Rectangle{}},
		{"nan center", utils.V2(nan, 10), 2, 3, image.Rectangle{}},
		{"far away", utils.V2(-1e12, 10), 5, 5, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fb.boxBounds(tt.center, tt.hw, tt.hh); got != tt.want {
				t.Errorf("boxBounds = %v, want %v", got, tt.want)
			}
		})
	}
}
