package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"net/http"

	"golang.org/x/image/draw"
)

// CoverOptions controls how PrepareCover treats downloaded cover art.
type CoverOptions struct {
	// ConvertToJPEG re-encodes covers that are not JPEG already, so that
	// the embedded data matches the "image/jpeg" MIME type of the frame.
	ConvertToJPEG bool

	// Resize shrinks covers larger than MaxSize x MaxSize.
	Resize  bool
	MaxSize int
}

// ImageService turns downloaded cover art into the JPEG stored in the APIC
// frame.
//
// Example:
//
//	svc := NewImageService()
//	cover, err := svc.PrepareCover(ctx, data, CoverOptions{
//	    ConvertToJPEG: true,
//	    Resize:        true,
//	    MaxSize:       1000,
//	})
type ImageService struct{}

// NewImageService returns an ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// IsJPEG reports whether data starts like a JPEG image.
func IsJPEG(data []byte) bool {
	return http.DetectContentType(data) == "image/jpeg"
}

// PrepareCover applies opts to a cover image.
//
// JPEG data that needs no resizing is returned untouched. Everything else is
// decoded, scaled if requested and encoded as JPEG. Returns an error when
// work is needed but the data cannot be decoded.
func (s *ImageService) PrepareCover(ctx context.Context, data []byte, opts CoverOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needsConvert := opts.ConvertToJPEG && !IsJPEG(data)
	if !opts.Resize && !needsConvert {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding cover art: %w", err)
	}

	if opts.Resize && opts.MaxSize > 0 {
		b := img.Bounds()
		switch {
		case b.Dx() > opts.MaxSize || b.Dy() > opts.MaxSize:
			img = fitWithin(img, opts.MaxSize)
		case !needsConvert:
			return data, nil
		}
	}

	return encodeJPEG(img)
}

// fitWithin scales img down so that neither side exceeds edge, keeping
// the aspect ratio.
func fitWithin(img image.Image, edge int) image.Image {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w >= h {
		w, h = edge, max(1, h*edge/w)
	} else {
		w, h = max(1, w*edge/h), edge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
