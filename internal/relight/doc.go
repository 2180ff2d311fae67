// Package relight composites pre-rendered image layers under per-layer HSV
// tints and tone maps the linear-light result to a display-ready RGBA buffer.
//
// # Pipeline
//
// Loading decodes every 8-bit color channel to linear light with a fixed
// 2.2 gamma (alpha is kept linear) and appends one Image per file to a
// LayerStore. Rendering converts each layer's Tint to a linear RGB
// multiplier, sums the tinted layers into an AccumulationBuffer, and tone
// maps that buffer with an exposure level and gamma into a DisplayImage.
//
//	r := relight.New(imaging.PNGCodec{})
//	if err := r.Load("/renders/shot01"); err != nil {
//	    return err
//	}
//	out, err := r.Render(tints, relight.DefaultGamma, relight.DefaultLevel)
//
// # Thread Safety
//
// A Relighter is safe for concurrent use. Loads take exclusive access to the
// layer store; renders take a snapshot under shared access and then run
// without holding any lock, so concurrent renders never block each other.
// Every render owns its accumulation buffer.
//
// # Errors
//
// Failures are reported as *Error values tagged with an ErrorKind. Use
// errors.Is with the Err* sentinels to test the kind and errors.As to read
// the structured fields.
package relight
