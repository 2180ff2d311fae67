package relight

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures the pipeline can report.
type ErrorKind int

const (
	// KindUnknown is the zero value and never produced by this package.
	KindUnknown ErrorKind = iota
	// KindEmptyInput: render with zero layers loaded.
	KindEmptyInput
	// KindParameterMismatch: tint or parameter count differs from the layer count.
	KindParameterMismatch
	// KindDimensionMismatch: a layer's size disagrees with the store.
	KindDimensionMismatch
	// KindImageDecode: the codec could not read a layer file.
	KindImageDecode
	// KindImageEncode: the codec could not write the rendered image.
	KindImageEncode
	// KindInvalidDirectory: the load path is not a readable directory.
	KindInvalidDirectory
	// KindBufferSizeMismatch: a render-to-buffer target has the wrong length.
	KindBufferSizeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindParameterMismatch:
		return "ParameterMismatch"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindImageDecode:
		return "ImageDecode"
	case KindImageEncode:
		return "ImageEncode"
	case KindInvalidDirectory:
		return "InvalidDirectory"
	case KindBufferSizeMismatch:
		return "BufferSizeMismatch"
	default:
		return "Unknown"
	}
}

// Error is the structured error returned by every fallible operation in
// this package. Only the fields relevant to Kind are populated.
type Error struct {
	Kind ErrorKind

	// Got and Want hold the received and expected counts for
	// KindParameterMismatch and KindBufferSizeMismatch.
	Got  int
	Want int

	// Width/Height is the offending size and WantWidth/WantHeight the
	// store's size for KindDimensionMismatch.
	Width, Height         int
	WantWidth, WantHeight int

	// Path names the file or directory involved, if any.
	Path string

	// Err is the underlying cause (codec or filesystem), if any.
	Err error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrEmptyInput         = &Error{Kind: KindEmptyInput}
	ErrParameterMismatch  = &Error{Kind: KindParameterMismatch}
	ErrDimensionMismatch  = &Error{Kind: KindDimensionMismatch}
	ErrImageDecode        = &Error{Kind: KindImageDecode}
	ErrImageEncode        = &Error{Kind: KindImageEncode}
	ErrInvalidDirectory   = &Error{Kind: KindInvalidDirectory}
	ErrBufferSizeMismatch = &Error{Kind: KindBufferSizeMismatch}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "need at least one input image to render"
	case KindParameterMismatch:
		return fmt.Sprintf("parameter count does not match layers: got %d, expected %d", e.Got, e.Want)
	case KindDimensionMismatch:
		msg := fmt.Sprintf("layer is %dx%d, expected %dx%d", e.Width, e.Height, e.WantWidth, e.WantHeight)
		if e.Path != "" {
			msg = e.Path + ": " + msg
		}
		return msg
	case KindImageDecode, KindImageEncode:
		// codec messages pass through verbatim
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String() + " failed: " + e.Path
	case KindInvalidDirectory:
		if e.Err != nil {
			return fmt.Sprintf("invalid directory %q: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("invalid directory %q: not a directory", e.Path)
	case KindBufferSizeMismatch:
		return fmt.Sprintf("buffer size mismatch: got %d bytes, expected %d", e.Got, e.Want)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "relight: unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
