// internal/config/config.go
package config

import "go-solar-system/internal/shader"

const (
	ScreenWidth  = 1024
	ScreenHeight = 640
	WindowTitle  = "Procedural Solar System"

	TargetFPS = 60

	StarRadius      = 90.0
	OrbitThickness  = 1.5 // pixels
	DefaultWorkers  = 1   // rows shaded per draw call in parallel; 1 = serial
	MaxWorkers      = 64
	DefaultScale    = 1
	MaxExportScale  = 8
	HUDFontSize     = 14
	HUDMargin       = 12
	TerminalMaxCols = 400
)

var (
	BackgroundColor = shader.RGB{R: 0.02, G: 0.02, B: 0.05}
	StarCoreColor   = shader.RGB{R: 1.0, G: 0.94, B: 0.72}
	StarGlowColor   = shader.RGB{R: 1.0, G: 0.68, B: 0.22}
	OrbitColor      = shader.RGB{R: 0.22, G: 0.24, B: 0.32}
	HUDTextColor    = shader.RGB{R: 0.85, G: 0.85, B: 0.9}

	// OrbitRadii are the default orbit rings around the star, in pixels.
	OrbitRadii = []float32{160, 230, 310, 400, 490}
)
