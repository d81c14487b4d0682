// stairgen generates parametric staircase geometry from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/blueloot/Stairs/internal/config"
	"github.com/blueloot/Stairs/internal/export"
	"github.com/blueloot/Stairs/internal/logger"
	"github.com/blueloot/Stairs/internal/scene"
	"github.com/blueloot/Stairs/internal/stair"
	"github.com/blueloot/Stairs/pkg/stairs"
)

func main() {
	config.ParseFlags()

	command := "generate"
	if args := config.Args(); len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(command, cfg); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		_ = logger.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	_ = logger.Close()
}

func run(command string, cfg *config.Config) error {
	switch command {
	case "generate", "gen":
		format, err := export.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		return cmdGenerate(cfg, format)
	case "obj":
		return cmdGenerate(cfg, export.FormatOBJ)
	case "info":
		return cmdInfo(cfg, os.Stdout)
	case "config":
		return cmdConfig(cfg)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println(`stairgen - parametric staircase generator

Usage:
  stairgen [flags] <command>

Commands:
  generate   Write step and ramp descriptors (yaml, json or obj)
  obj        Write a Wavefront OBJ mesh
  info       Summarize the stair and the units it builds
  config     Save the effective config (to -o, or the user config dir)

Flags:
  -config path       Config file (default ./stairgen.yaml, then user config dir)
  -height, -width, -length, -steps
  -floating, -spiral, -spiral-amount, -ramp
  -material name     Material for step units
  -format fmt        yaml, json or obj
  -o path            Output file (default stdout)
  -debug             Debug logging

Examples:
  stairgen -steps 12 -height 3 -length 4
  stairgen -floating -ramp -format json generate
  stairgen -spiral -spiral-amount 2 -o spiral.obj obj`)
}

func cmdGenerate(cfg *config.Config, format export.Format) error {
	res, err := stairs.Generate(cfg.Stair)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(cfg.Output.Path)
	if err != nil {
		return err
	}

	if err := export.Write(w, format, cfg.Stair, res); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.Output.Path, err)
	}

	logger.Info("stair generated",
		zap.String("format", string(format)),
		zap.Int("steps", len(res.Steps)),
		zap.Int("ramps", len(res.Ramps)),
		zap.String("output", outputName(cfg.Output.Path)),
	)
	return nil
}

// infoHost is a scene host that reports how many units it created.
type infoHost interface {
	scene.Host
	Stats() (created, destroyed, updated int)
}

var newInfoHost = func() infoHost { return scene.NewMemoryHost() }

func cmdInfo(cfg *config.Config, w io.Writer) (err error) {
	host := newInfoHost()
	s, err := stair.New(host, cfg.StairSettings())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing stair: %w", cerr))
		}
	}()

	g := s.Settings().Geometry
	res := s.Result()
	bounds := res.Bounds()
	size := bounds.Size()

	layout := "solid"
	switch {
	case g.Floating && g.Spiral:
		layout = "spiral"
	case g.Floating:
		layout = "floating"
	}

	fmt.Fprintf(w, "Layout:      %s\n", layout)
	fmt.Fprintf(w, "Dimensions:  %g x %g x %g (h x w x l)\n", g.Height, g.Width, g.Length)
	fmt.Fprintf(w, "Steps:       %d (rise %g, run %g)\n", g.Steps, g.StepHeight(), g.StepDepth())
	fmt.Fprintf(w, "Ramps:       %d\n", len(res.Ramps))
	fmt.Fprintf(w, "Bounds:      (%g, %g, %g) - (%g, %g, %g)\n",
		bounds.Min.X, bounds.Min.Y, bounds.Min.Z, bounds.Max.X, bounds.Max.Y, bounds.Max.Z)
	fmt.Fprintf(w, "Size:        %g x %g x %g\n", size.X, size.Y, size.Z)

	created, _, _ := host.Stats()
	fmt.Fprintf(w, "Scene units: %d (%d step, %d ramp)\n", created, len(s.StepHandles()), len(s.RampHandles()))
	return nil
}

func cmdConfig(cfg *config.Config) error {
	path := cfg.Output.Path
	if path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
	} else {
		saved, err := cfg.Save()
		if err != nil {
			return err
		}
		path = saved
	}
	logger.Info("config saved", zap.String("path", path))
	fmt.Println(path)
	return nil
}

// openOutput returns stdout when path is empty.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
