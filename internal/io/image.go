package ioutils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// thumbnailQuality is the JPEG quality used for every thumbnail.
const thumbnailQuality = 90

// ImageService produces the optional thumbnails stored next to each year's
// wallpapers.
//
// Example usage:
//
//	svc := NewImageService()
//	data, _ := os.ReadFile(savePath)
//	thumb, _ := svc.ResizeImage(ctx, data, 480, 480)
type ImageService struct {
	scaler draw.Scaler
}

// NewImageService creates an ImageService scaling with Catmull-Rom.
func NewImageService() *ImageService {
	return &ImageService{scaler: draw.CatmullRom}
}

// ResizeImage decodes a wallpaper and re-encodes it as a JPEG no larger than
// maxWidth x maxHeight.
//
// The aspect ratio is kept and images are never enlarged: a wallpaper that
// already fits keeps its size and is only re-encoded.
//
//	// A 1920x1080 wallpaper becomes 480x270
//	thumb, err := svc.ResizeImage(ctx, imageData, 480, 480)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("resize: invalid bounds %dx%d", maxWidth, maxHeight)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("resize: decode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sb := src.Bounds()
	if sb.Empty() {
		return nil, errors.New("resize: empty image")
	}

	w, h := fitWithin(sb.Dx(), sb.Dy(), maxWidth, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	s.scaler.Scale(dst, dst.Rect, src, sb, draw.Src, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("resize: encode: %w", err)
	}
	return out.Bytes(), nil
}

// fitWithin returns the largest size with the aspect ratio of w x h that fits
// in maxW x maxH, without enlarging. Neither edge drops below one pixel.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Compare w/h against maxW/maxH without floating point.
	if w*maxH >= h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}
