// internal/display/ebiten.go
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-solar-system/internal/config"
	"go-solar-system/pkg/render"
)

// EbitenPresenter shows the frame in a desktop window.
type EbitenPresenter struct {
	opts Options
}

// Present blocks until the window is closed or Escape is pressed.
func (p *EbitenPresenter) Present(frame Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	v := &frameViewer{frame: frame}
	if p.opts.HUD && frame.Caption != "" {
		face, err := loadHUDFace(config.HUDFontSize)
		if err != nil {
			p.opts.Log.Warn("HUD disabled: %v", err)
		} else {
			v.face = face
		}
	}

	ebiten.SetWindowSize(frame.Width, frame.Height)
	ebiten.SetWindowTitle(frame.Title)
	ebiten.SetTPS(config.TargetFPS)
	p.opts.Log.Debug("ebiten window %dx%d", frame.Width, frame.Height)
	return ebiten.RunGame(v)
}

// frameViewer is the ebiten.Game that keeps one static frame on screen.
type frameViewer struct {
	frame Frame
	img   *ebiten.Image
	face  font.Face
}

func (v *frameViewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *frameViewer) Draw(screen *ebiten.Image) {
	// upload once; the frame never changes
	if v.img == nil {
		v.img = ebiten.NewImage(v.frame.Width, v.frame.Height)
		v.img.WritePixels(v.frame.RGBA().Pix)
	}
	screen.DrawImage(v.img, nil)

	if v.face != nil {
		x := config.HUDMargin
		y := v.frame.Height - config.HUDMargin
		fg := render.RGBToColor(config.HUDTextColor)
		text.Draw(screen, v.frame.Caption, v.face, x+1, y+1, render.DarkenColor(render.DarkenColor(fg)))
		text.Draw(screen, v.frame.Caption, v.face, x, y, fg)
	}
}

func (v *frameViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.frame.Width, v.frame.Height
}
