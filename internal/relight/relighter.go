package relight

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Default tone mapping parameters.
const (
	DefaultGamma = 2.2
	DefaultLevel = 1.0
)

// LayerSuffix is the case-sensitive file name suffix selected by Load.
const LayerSuffix = ".png"

// Codec reads and writes the on-disk image container format as raw,
// non-premultiplied 8-bit RGBA buffers.
type Codec interface {
	Decode(path string) (pix []byte, width, height int, err error)
	Encode(path string, pix []byte, width, height int) error
}

// Relighter owns a LayerStore and runs the render pipeline against it.
type Relighter struct {
	codec  Codec
	store  *LayerStore
	loadMu sync.Mutex
}

// New returns a Relighter with an empty layer store that uses codec for
// all file I/O.
func New(codec Codec) *Relighter {
	return &Relighter{
		codec: codec,
		store: NewLayerStore(),
	}
}

// Store exposes the underlying layer store.
func (r *Relighter) Store() *LayerStore { return r.store }

// Count returns the number of loaded layers.
func (r *Relighter) Count() int { return r.store.Count() }

// Width returns the layer width, or 0 when nothing is loaded.
func (r *Relighter) Width() int { return r.store.Width() }

// Height returns the layer height, or 0 when nothing is loaded.
func (r *Relighter) Height() int { return r.store.Height() }

// Descriptors returns the parameter descriptors for the loaded layers.
func (r *Relighter) Descriptors() []Descriptor { return Descriptors(r.store.Count()) }

// Load replaces the loaded layers with every "*.png" entry directly inside
// dir (non-recursive, subdirectories skipped).
//
// Files are taken in the order os.ReadDir returns them, which is sorted by
// name, so layer indices are stable across platforms. Layers are decoded
// into a staging store and committed only when every file succeeds; on
// error the previously loaded layers remain in place.
//
// # Errors
//
//   - KindInvalidDirectory if dir cannot be read or is not a directory.
//   - KindImageDecode if the codec rejects a file.
//   - KindDimensionMismatch if a file's size differs from the first layer.
func (r *Relighter) Load(dir string) error {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()

	log := Logger().With("dir", dir)
	began := time.Now()

	info, err := os.Stat(dir)
	if err != nil {
		return &Error{Kind: KindInvalidDirectory, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &Error{Kind: KindInvalidDirectory, Path: dir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &Error{Kind: KindInvalidDirectory, Path: dir, Err: err}
	}

	staging := NewLayerStore()
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, LayerSuffix) {
			continue
		}
		if entry.IsDir() {
			log.Warn("skipping directory with layer suffix", "name", name)
			continue
		}
		path := filepath.Join(dir, name)

		img, err := r.decodeLayer(path)
		if err != nil {
			log.Warn("layer load failed", "path", path, "err", err)
			return err
		}
		if err := staging.Append(img); err != nil {
			if e, ok := err.(*Error); ok {
				e.Path = path
			}
			log.Warn("layer rejected", "path", path, "err", err)
			return err
		}
		log.Debug("layer decoded", "path", path, "index", staging.Count()-1,
			"width", img.Width(), "height", img.Height())
	}

	r.store.Replace(staging)
	log.Info("layers loaded", "count", r.store.Count(),
		"width", r.store.Width(), "height", r.store.Height(),
		"elapsed", time.Since(began))
	return nil
}

func (r *Relighter) decodeLayer(path string) (*Image, error) {
	raw, w, h, err := r.codec.Decode(path)
	if err != nil {
		return nil, &Error{Kind: KindImageDecode, Path: path, Err: err}
	}
	img, err := DecodeImage(raw, w, h)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Path = path
		}
		return nil, err
	}
	return img, nil
}

// RenderSnapshot composites snap under tints and tone maps the result.
func RenderSnapshot(snap Snapshot, tints []Tint, gamma, level float64) (*DisplayImage, error) {
	began := time.Now()
	buf, err := Composite(snap, tints)
	if err != nil {
		return nil, err
	}
	out := ToneMap(buf, gamma, level)
	Logger().Debug("render complete", "layers", len(snap.Layers),
		"width", out.Width, "height", out.Height,
		"gamma", gamma, "level", level, "elapsed", time.Since(began))
	return out, nil
}

// Render composites the loaded layers, one tint per layer in store order,
// and tone maps the sum with gamma and level.
func (r *Relighter) Render(tints []Tint, gamma, level float64) (*DisplayImage, error) {
	return RenderSnapshot(r.store.Snapshot(), tints, gamma, level)
}

// RenderFlat is Render with tints given as a flat hue, saturation, value
// sequence of length 3×Count().
func (r *Relighter) RenderFlat(params []float64, gamma, level float64) (*DisplayImage, error) {
	snap := r.store.Snapshot()
	if len(snap.Layers) == 0 {
		return nil, &Error{Kind: KindEmptyInput}
	}
	tints, err := TintsFromFlat(params, len(snap.Layers))
	if err != nil {
		return nil, err
	}
	return RenderSnapshot(snap, tints, gamma, level)
}

// RenderToFile renders and hands the result to the codec for writing at path.
//
// # Errors
//
// Any Render error, or KindImageEncode if the codec fails.
func (r *Relighter) RenderToFile(tints []Tint, path string, gamma, level float64) error {
	out, err := r.Render(tints, gamma, level)
	if err != nil {
		return err
	}
	if err := r.codec.Encode(path, out.Pix, out.Width, out.Height); err != nil {
		return &Error{Kind: KindImageEncode, Path: path, Err: err}
	}
	return nil
}

// RenderToBuffer renders and copies the RGBA bytes into dst, which must be
// exactly Width()×Height()×4 bytes long.
//
// # Errors
//
// Any Render error, or KindBufferSizeMismatch if len(dst) is wrong. The size
// is checked before rendering.
func (r *Relighter) RenderToBuffer(tints []Tint, dst []byte, gamma, level float64) error {
	snap := r.store.Snapshot()
	if len(snap.Layers) == 0 {
		return &Error{Kind: KindEmptyInput}
	}
	if want := snap.Width * snap.Height * 4; len(dst) != want {
		return &Error{Kind: KindBufferSizeMismatch, Got: len(dst), Want: want}
	}
	out, err := RenderSnapshot(snap, tints, gamma, level)
	if err != nil {
		return err
	}
	copy(dst, out.Pix)
	return nil
}

// RenderResult is delivered by RenderAsync. Exactly one of Image and Err is
// set.
type RenderResult struct {
	Image *DisplayImage
	Err   error
}

// RenderAsync snapshots the current layers and renders them on a new
// goroutine. The returned channel receives one result and is then closed.
// A render cannot be canceled once submitted; loads that happen after the
// call do not affect it.
func (r *Relighter) RenderAsync(tints []Tint, gamma, level float64) <-chan RenderResult {
	snap := r.store.Snapshot()
	own := make([]Tint, len(tints))
	copy(own, tints)

	ch := make(chan RenderResult, 1)
	go func() {
		defer close(ch)
		out, err := RenderSnapshot(snap, own, gamma, level)
		ch <- RenderResult{Image: out, Err: err}
	}()
	return ch
}
