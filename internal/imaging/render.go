package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// RenderPath paints every point of path onto dst using gradient g.
//
// Point i receives g.ColorAt(i, len(path)). dst is modified in place and no
// bounds checking is done beyond what dst.Set itself performs; callers pass
// paths produced from a grid decoded out of an image with the same bounds.
func RenderPath(dst draw.Image, path []image.Point, g Gradient) {
	total := float64(len(path))
	for i, p := range path {
		dst.Set(p.X, p.Y, g.ColorAt(float64(i), total))
	}
}

// Mutable returns a writable copy of img with bounds starting at (0,0).
//
// Decoded images may be YCbCr, paletted or otherwise awkward to write into,
// so rendering always happens on an NRGBA copy.
func Mutable(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Upscale enlarges img by an integer factor using nearest-neighbour sampling
// so each maze cell stays a crisp square. Factors below 2 return img as is.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	bounds := img.Bounds()
	return imaging.Resize(img, bounds.Dx()*factor, bounds.Dy()*factor, imaging.NearestNeighbor)
}

// EncodedImage contains a PNG image encoded as base64.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
