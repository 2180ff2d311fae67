package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/relight-mcp/internal/imaging"
	"github.com/ironsheep/relight-mcp/internal/relight"
	"github.com/ironsheep/relight-mcp/internal/server"
)

// runRender loads a layer directory, renders it once and writes a PNG.
func runRender(args []string, cfg server.Config, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	dir := fs.String("dir", "", "directory of .png layers")
	out := fs.String("out", "", "output PNG path")
	tintList := fs.String("tints", "", `per-layer tints "h,s,v;h,s,v" (default: neutral for every layer)`)
	gamma := fs.Float64("gamma", cfg.Gamma, "output gamma")
	level := fs.Float64("level", cfg.Level, "exposure level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dir == "" || *out == "" {
		return fmt.Errorf("-dir and -out are required")
	}

	r := relight.New(imaging.PNGCodec{})
	if err := r.Load(*dir); err != nil {
		return err
	}

	tints, err := parseTints(*tintList, r.Count())
	if err != nil {
		return err
	}
	if err := r.RenderToFile(tints, *out, *gamma, *level); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Rendered %d layers (%dx%d) → %s\n", r.Count(), r.Width(), r.Height(), *out)
	return nil
}

// parseTints parses "h,s,v;h,s,v". An empty list yields a neutral tint per layer.
func parseTints(list string, layers int) ([]relight.Tint, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		tints := make([]relight.Tint, layers)
		for i := range tints {
			tints[i] = relight.Neutral
		}
		return tints, nil
	}

	var params []float64
	for i, group := range strings.Split(list, ";") {
		fields := strings.Split(group, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("tint %d: want h,s,v, got %q", i, group)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("tint %d: %w", i, err)
			}
			params = append(params, v)
		}
	}
	return relight.TintsFromFlat(params, layers)
}
