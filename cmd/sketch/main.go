// Command sketch replays a script of input events against the curve engine
// and writes the resulting drawing as a PNG image.
//
// Usage:
//
//	sketch [-config sketch.yaml] [-script events.txt] [-output sketch.png] [-strict] [-v]
//
// Each script line is one event, for example:
//
//	click 420 300   # place a point at a screen position
//	add 10 -5       # place a point at world coordinates
//	select 2        # make the second curve active
//	mode move
//	down 420 300
//	drag 450 280
//	up
//	key r           # clear everything
//
// Without -script, events are read from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"honnef.co/go/sketch"
	"honnef.co/go/sketch/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", config.FileName, "configuration file")
		scriptPath = flag.String("script", "", "event script (default: standard input)")
		output     = flag.String("output", "sketch.png", "output file")
		strict     = flag.Bool("strict", false, "stop at the first rejected event")
		verbose    = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("sketch: ")
	if err := run(*configPath, *scriptPath, *output, *strict, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, scriptPath, output string, strict, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sketch.SetLogger(logger)
	gg.SetLogger(logger)

	var in io.Reader = os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	events, err := ParseScript(in)
	if err != nil {
		return err
	}

	m := sketch.NewManager(cfg.Curves.Count, cfg.SlotOptions())
	s := NewSession(m, cfg.Viewport(), cfg.Style.MarkerRadius, os.Stdout)
	for _, ev := range events {
		if err := s.Apply(ev); err != nil {
			if strict {
				return err
			}
			logger.Warn("event rejected", "error", err)
		}
	}

	dc, err := s.Scene.Render(s.View, cfg.RenderStyle())
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}
	logger.Info("drawing saved",
		"output", output,
		"events", len(events),
		"curves", m.Len())
	return nil
}
