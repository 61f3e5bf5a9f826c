// internal/display/raylib.go
package display

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-solar-system/internal/config"
	"go-solar-system/pkg/render"
)

// RaylibPresenter shows the frame in a raylib window.
type RaylibPresenter struct {
	opts Options
}

// Present blocks until the window is closed or Escape is pressed.
func (p *RaylibPresenter) Present(frame Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(frame.Width), int32(frame.Height), frame.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("raylib: window could not be created")
	}
	rl.SetTargetFPS(config.TargetFPS)

	img := rl.NewImageFromImage(frame.RGBA())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)
	p.opts.Log.Debug("raylib window %dx%d", frame.Width, frame.Height)

	fg := render.RGBToColor(config.HUDTextColor)
	for !rl.WindowShouldClose() && !rl.IsKeyDown(rl.KeyEscape) {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexture(tex, 0, 0, rl.White)
		if p.opts.HUD && frame.Caption != "" {
			y := int32(frame.Height - config.HUDMargin - config.HUDFontSize)
			rl.DrawText(frame.Caption, config.HUDMargin, y, config.HUDFontSize, fg)
		}
		rl.EndDrawing()
	}
	return nil
}
