// internal/display/terminal.go
package display

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"go-solar-system/internal/config"
)

// upperHalf paints the top pixel as foreground and the bottom as background,
// giving two square-ish pixels per terminal cell.
const upperHalf = '▀'

// TerminalPresenter previews the frame in a truecolor terminal.
type TerminalPresenter struct {
	opts Options
}

// Present blocks until Escape, q or Ctrl-C. The preview is rescaled on resize.
func (p *TerminalPresenter) Present(frame Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	defer s.Fini()

	src := frame.RGBA()
	redraw := func() {
		cols, rows := s.Size()
		cols = min(cols, config.TerminalMaxCols)
		paintCells(s, Downsample(src, cols, rows))
		s.Show()
	}
	redraw()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			redraw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

// FitSize returns the largest w x h that fits in cols x 2*rows pixels while
// keeping the aspect ratio of a srcW x srcH image.
func FitSize(srcW, srcH, cols, rows int) (int, int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxH := rows * 2
	w, h := cols, srcH*cols/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	return max(w, 1), max(h, 1)
}

// Downsample scales src to fit a cols x rows terminal, two pixels per cell.
func Downsample(src *image.RGBA, cols, rows int) *image.RGBA {
	w, h := FitSize(src.Bounds().Dx(), src.Bounds().Dy(), cols, rows)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w > 0 && h > 0 {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst
}

func paintCells(s tcell.Screen, img *image.RGBA) {
	s.Clear()
	b := img.Bounds()
	for cy := 0; cy*2 < b.Dy(); cy++ {
		for cx := 0; cx < b.Dx(); cx++ {
			top := img.RGBAAt(cx, cy*2)
			bot := top
			if cy*2+1 < b.Dy() {
				bot = img.RGBAAt(cx, cy*2+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			s.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}
