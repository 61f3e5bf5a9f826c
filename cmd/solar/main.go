// cmd/solar/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"go-solar-system/internal/config"
	"go-solar-system/internal/display"
	"go-solar-system/internal/export"
	"go-solar-system/internal/logging"
	"go-solar-system/internal/scene"
	"go-solar-system/pkg/render"
)

type options struct {
	scenePath string
	seed      int64
	backend   string
	out       string
	scale     int
	workers   int
	hud       bool
	pprofAddr string
	logLevel  string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("solar", flag.ContinueOnError)
	fs.StringVar(&o.scenePath, "scene", "", "Scene YAML file (default: built-in scene)")
	fs.Int64Var(&o.seed, "seed", 0, "Generate a random layout from this seed instead of loading a scene")
	fs.StringVar(&o.backend, "display", display.BackendEbiten, "Display backend: "+strings.Join(display.Backends, ", "))
	fs.StringVar(&o.out, "out", "", "Write the frame to this PNG file")
	fs.IntVar(&o.scale, "scale", config.DefaultScale, "Integer upscale factor for -out")
	fs.IntVar(&o.workers, "workers", config.DefaultWorkers, "Rows shaded in parallel per draw call")
	fs.BoolVar(&o.hud, "hud", false, "Show a caption over the window")
	fs.StringVar(&o.pprofAddr, "pprof", "", "Serve net/http/pprof on this address (e.g. localhost:6060)")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.scenePath != "" && o.seed != 0 {
		return o, fmt.Errorf("-scene and -seed are mutually exclusive")
	}
	o.scale = min(max(o.scale, 1), config.MaxExportScale)
	o.workers = min(max(o.workers, 1), config.MaxWorkers)
	return o, nil
}

func loadScene(o options) (*scene.Scene, error) {
	switch {
	case o.scenePath != "":
		return scene.Load(o.scenePath)
	case o.seed != 0:
		gen := scene.DefaultGenerateOptions()
		gen.Seed = o.seed
		return scene.Generate(gen)
	default:
		return scene.Default(), nil
	}
}

// renderScene draws every shape once; the buffer is final when it returns.
func renderScene(s *scene.Scene, workers int, log *logging.Logger) *render.Framebuffer {
	log = log.Named("render")
	defer log.Timed(logging.LevelInfo, fmt.Sprintf("%q", s.Name))()
	log.Debug("%dx%d, %d orbits, %d bodies, %d workers",
		s.Width, s.Height, len(s.Orbits), len(s.Bodies), workers)

	fb := s.NewFramebuffer()
	fb.SetWorkers(workers)
	s.Render(fb)
	return fb
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log := logging.New(logging.ParseLevel(o.logLevel))

	if o.pprofAddr != "" {
		go func() {
			log.Named("pprof").Warn("%v", http.ListenAndServe(o.pprofAddr, nil))
		}()
	}

	s, err := loadScene(o)
	log.Fatal(err)
	fb := renderScene(s, o.workers, log)

	if o.out != "" {
		elog := log.Named("export")
		elog.Fatal(export.SavePNG(fb, o.out, o.scale))
		elog.Info("wrote %s (scale %d)", o.out, o.scale)
	}

	presenter, err := display.New(o.backend, display.Options{HUD: o.hud, Log: log})
	log.Fatal(err)
	frame := display.FrameFrom(fb, config.WindowTitle)
	frame.Caption = fmt.Sprintf("%s  |  Esc to exit", s.Name)
	log.Debug("presenting with %s", o.backend)
	log.Named("display").Fatal(presenter.Present(frame))
}
