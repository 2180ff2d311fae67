package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/relight-mcp/internal/relight"
	"github.com/ironsheep/relight-mcp/internal/server"
)

func TestParseTints(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		layers  int
		want    []relight.Tint
		wantErr bool
	}{
		{"empty is neutral", "", 2, []relight.Tint{relight.Neutral, relight.Neutral}, false},
		{"one layer", "0.5, 1, 0.25", 1, []relight.Tint{{Hue: 0.5, Saturation: 1, Value: 0.25}}, false},
		{"two layers", "0,0,1;0.3,0.2,2", 2, []relight.Tint{relight.Neutral, {Hue: 0.3, Saturation: 0.2, Value: 2}}, false},
		{"missing field", "0,0", 1, nil, true},
		{"not a number", "a,0,1", 1, nil, true},
		{"wrong count", "0,0,1", 2, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTints(tt.list, tt.layers)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len: got %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tint %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseTints_CountMismatchIsTyped(t *testing.T) {
	_, err := parseTints("0,0,1", 3)
	if !errors.Is(err, relight.ErrParameterMismatch) {
		t.Errorf("got %v, want ParameterMismatch", err)
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for _, name := range []string{"a.png", "b.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	out := filepath.Join(t.TempDir(), "out.png")

	var stdout bytes.Buffer
	args := []string{"-dir", dir, "-out", out, "-gamma", "1", "-tints", "0,0,1;0,0,1"}
	if err := runRender(args, server.DefaultConfig(), &stdout); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "2 layers") {
		t.Errorf("stdout: %q", stdout.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rendered, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := color.NRGBAModel.Convert(rendered.At(x, y)).(color.NRGBA); c != (color.NRGBA{255, 255, 255, 255}) {
				t.Fatalf("pixel (%d,%d): got %v", x, y, c)
			}
		}
	}
}

func TestRunRender_MissingFlags(t *testing.T) {
	if err := runRender([]string{"-dir", t.TempDir()}, server.DefaultConfig(), &bytes.Buffer{}); err == nil {
		t.Error("runRender should require -out")
	}
}
