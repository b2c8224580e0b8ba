package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	// Registered decoders for the default suffixes
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	// Extra formats for user-configured suffixes
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxDimension caps the longest side of a decoded image (4K UHD).
const DefaultMaxDimension = 3840

// ErrEmptyData is returned when there are no bytes to decode
var ErrEmptyData = errors.New("empty image data")

// Decode decodes an image from memory using the registered formats.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Fit downsizes img so that neither side exceeds maxDim, keeping the aspect
// ratio. Images already small enough, or maxDim <= 0, are returned unchanged.
func Fit(img image.Image, maxDim int) image.Image {
	if img == nil || maxDim <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
}

// DecodeFit decodes data and applies Fit
func DecodeFit(data []byte, maxDim int) (image.Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Fit(img, maxDim), nil
}
