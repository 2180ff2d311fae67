package relight

import "sync"

// LayerStore holds an ordered set of Images sharing one width and height.
//
// The dimensions are fixed by the first Image appended; every later append
// must match them. An empty store reports a width and height of 0.
//
// LayerStore is safe for concurrent use. Mutations take the write lock and
// queries take the read lock. Snapshot hands renders a stable view that later
// mutations cannot affect.
type LayerStore struct {
	mu     sync.RWMutex
	layers []*Image
	width  int
	height int
}

// NewLayerStore creates an empty store.
func NewLayerStore() *LayerStore {
	return &LayerStore{}
}

// Append adds img after the existing layers.
//
// # Errors
//
//   - KindDimensionMismatch if the store is non-empty and img has a
//     different size.
func (s *LayerStore) Append(img *Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.layers) > 0 && (img.width != s.width || img.height != s.height) {
		return &Error{
			Kind:       KindDimensionMismatch,
			Width:      img.width,
			Height:     img.height,
			WantWidth:  s.width,
			WantHeight: s.height,
		}
	}
	if len(s.layers) == 0 {
		s.width, s.height = img.width, img.height
	}
	s.layers = append(s.layers, img)
	return nil
}

// Clear removes all layers and resets the dimensions.
func (s *LayerStore) Clear() {
	s.mu.Lock()
	s.layers = nil
	s.width, s.height = 0, 0
	s.mu.Unlock()
}

// Replace discards the current layers and adopts the contents of other.
// other is a staging store and must not be used afterwards.
func (s *LayerStore) Replace(other *LayerStore) {
	other.mu.Lock()
	layers, w, h := other.layers, other.width, other.height
	other.layers = nil
	other.mu.Unlock()

	s.mu.Lock()
	s.layers, s.width, s.height = layers, w, h
	s.mu.Unlock()
}

// Count returns the number of layers.
func (s *LayerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.layers)
}

// Width returns the shared layer width, or 0 when empty.
func (s *LayerStore) Width() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width
}

// Height returns the shared layer height, or 0 when empty.
func (s *LayerStore) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.height
}

// Snapshot is an immutable view of a LayerStore at one point in time.
type Snapshot struct {
	Layers []*Image
	Width  int
	Height int
}

// Snapshot copies the current layer list under the read lock. Images are
// immutable, so the snapshot stays valid after the store is cleared or
// replaced.
func (s *LayerStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	layers := make([]*Image, len(s.layers))
	copy(layers, s.layers)
	return Snapshot{Layers: layers, Width: s.width, Height: s.height}
}
