// Package imaging is the PNG codec used by the relighting pipeline.
//
// It converts between files on disk and the raw buffers the relight package
// works with: 8-bit, non-premultiplied RGBA, four bytes per pixel, row-major,
// with no padding between rows.
//
// # Decoding
//
// Any image the standard decoders understand is normalized to *image.NRGBA
// before its bytes are returned, so palette, grayscale and 16-bit PNGs all
// come back in the same layout. 16-bit channels are reduced to 8 bits.
//
// # Encoding
//
// Rendered buffers are wrapped as *image.NRGBA without copying and written
// either to a file or to an in-memory PNG (for base64 transport).
//
// # Error Handling
//
// Errors from the underlying decoders and encoders are wrapped with %w and
// otherwise passed through unchanged.
package imaging
