package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// PNGCodec reads and writes PNG files as raw RGBA buffers.
// The zero value is ready to use and safe for concurrent use.
type PNGCodec struct{}

// Decode loads the image at path and returns its pixels as non-premultiplied
// 8-bit RGBA.
//
// # Errors
//
//   - Returns error if the file cannot be opened
//   - Returns error if the file is not a decodable image
func (PNGCodec) Decode(path string) ([]byte, int, int, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	pix, w, h := RawRGBA(img)
	return pix, w, h, nil
}

// Encode writes a raw RGBA buffer of width×height pixels to path as PNG.
func (PNGCodec) Encode(path string, pix []byte, width, height int) error {
	img, err := WrapNRGBA(pix, width, height)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// RawRGBA returns the tightly packed NRGBA bytes of img with its dimensions.
// The bounds origin is discarded.
func RawRGBA(img image.Image) ([]byte, int, int) {
	// Clone always returns a fresh NRGBA with Stride == 4*width at origin.
	n := imaging.Clone(img)
	b := n.Bounds()
	return n.Pix, b.Dx(), b.Dy()
}

// WrapNRGBA views pix as an *image.NRGBA without copying.
func WrapNRGBA(pix []byte, width, height int) (*image.NRGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer has %d bytes, expected %d for %dx%d",
			len(pix), width*height*4, width, height)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// EncodedImage is a PNG carried inline as base64.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes a raw RGBA buffer as a base64 PNG.
func EncodePNGBase64(pix []byte, width, height int) (*EncodedImage, error) {
	img, err := WrapNRGBA(pix, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
