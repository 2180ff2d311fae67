package relight

import (
	"errors"
	"strings"
	"testing"
)

func snapshotOf(layers ...*Image) Snapshot {
	s := NewLayerStore()
	for _, l := range layers {
		if err := s.Append(l); err != nil {
			panic(err)
		}
	}
	return s.Snapshot()
}

func TestComposite_Empty(t *testing.T) {
	_, err := Composite(Snapshot{}, nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want EmptyInput", err)
	}
}

func TestComposite_ParameterMismatch(t *testing.T) {
	snap := snapshotOf(solidImage(2, 2, 1, 1, 1), solidImage(2, 2, 1, 1, 1))

	_, err := Composite(snap, []Tint{Neutral})
	if !errors.Is(err, ErrParameterMismatch) {
		t.Fatalf("got %v, want ParameterMismatch", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "got 1") || !strings.Contains(msg, "expected 2") {
		t.Errorf("message should report both counts: %q", msg)
	}
}

func TestComposite_WeightedSum(t *testing.T) {
	snap := snapshotOf(
		solidImage(3, 2, 0.5, 0.25, 0.125),
		solidImage(3, 2, 0.1, 0.2, 0.4),
	)
	tints := []Tint{
		{Hue: 0, Saturation: 1, Value: 1},       // red
		{Hue: 2.0 / 3, Saturation: 1, Value: 2}, // over-bright blue
	}

	buf, err := Composite(snap, tints)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if buf.Width != 3 || buf.Height != 2 || len(buf.Pix) != 3*2*4 {
		t.Fatalf("buffer shape: %dx%d len %d", buf.Width, buf.Height, len(buf.Pix))
	}
	want := [4]float32{0.5, 0, 0.8, 1}
	for i := 0; i < len(buf.Pix); i += 4 {
		for c := 0; c < 4; c++ {
			if d := buf.Pix[i+c] - want[c]; d > 1e-6 || d < -1e-6 {
				t.Fatalf("pixel %d channel %d: got %v, want %v", i/4, c, buf.Pix[i+c], want[c])
			}
		}
	}
}

func TestComposite_OrderIndependent(t *testing.T) {
	a := solidImage(4, 4, 0.3, 0.6, 0.9)
	b := solidImage(4, 4, 0.7, 0.2, 0.1)
	ta := Tint{Hue: 0.1, Saturation: 0.5, Value: 1}
	tb := Tint{Hue: 0.6, Saturation: 0.8, Value: 0.7}

	ab, err := Composite(snapshotOf(a, b), []Tint{ta, tb})
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Composite(snapshotOf(b, a), []Tint{tb, ta})
	if err != nil {
		t.Fatal(err)
	}
	for i := range ab.Pix {
		if d := ab.Pix[i] - ba.Pix[i]; d > 1e-6 || d < -1e-6 {
			t.Fatalf("index %d: %v vs %v", i, ab.Pix[i], ba.Pix[i])
		}
	}
}

func TestComposite_AlphaOverwritten(t *testing.T) {
	img := solidImage(2, 2, 1, 1, 1)
	for i := 3; i < len(img.pix); i += 4 {
		img.pix[i] = 0.25
	}
	buf, err := Composite(snapshotOf(img, img, img), []Tint{Neutral, Neutral, Neutral})
	if err != nil {
		t.Fatal(err)
	}
	for i := 3; i < len(buf.Pix); i += 4 {
		if buf.Pix[i] != 1 {
			t.Fatalf("alpha at pixel %d: got %v, want 1", i/4, buf.Pix[i])
		}
	}
}

func TestComposite_DoesNotModifyLayers(t *testing.T) {
	img := solidImage(2, 2, 0.5, 0.5, 0.5)
	if _, err := Composite(snapshotOf(img), []Tint{{Hue: 0, Saturation: 1, Value: 3}}); err != nil {
		t.Fatal(err)
	}
	for i, v := range img.pix {
		if (i%4 == 3 && v != 1) || (i%4 != 3 && v != 0.5) {
			t.Fatalf("layer modified at %d: %v", i, v)
		}
	}
}

func TestComposite_LargeImageBands(t *testing.T) {
	// tall enough for parallel.Line to split into several bands
	snap := snapshotOf(solidImage(7, 503, 0.25, 0.5, 0.75))
	buf, err := Composite(snap, []Tint{Neutral})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(buf.Pix); i += 4 {
		if buf.Pix[i] != 0.25 || buf.Pix[i+1] != 0.5 || buf.Pix[i+2] != 0.75 || buf.Pix[i+3] != 1 {
			t.Fatalf("pixel %d: %v", i/4, buf.Pix[i:i+4])
		}
	}
}

func TestToneMap(t *testing.T) {
	buf := &AccumulationBuffer{
		Width:  2,
		Height: 1,
		Pix:    []float32{1, 0.5, 0, 1, 2, -1, 0.25, 0},
	}
	out := ToneMap(buf, 1, 1)
	want := []byte{255, 127, 0, 255, 255, 0, 63, 255}
	if out.Width != 2 || out.Height != 1 {
		t.Errorf("dimensions: got %dx%d", out.Width, out.Height)
	}
	for i := range want {
		if out.Pix[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d", i, out.Pix[i], want[i])
		}
	}
}

func TestToneMap_LevelAndGamma(t *testing.T) {
	buf := &AccumulationBuffer{Width: 1, Height: 1, Pix: []float32{0.5, 0.5, 0.5, 1}}
	out := ToneMap(buf, 2, 1)
	if out.Pix[0] != 63 {
		t.Errorf("gamma 2: got %d, want 63", out.Pix[0])
	}
	out = ToneMap(buf, 1, 2)
	if out.Pix[0] != 255 {
		t.Errorf("level 2: got %d, want 255", out.Pix[0])
	}
}
