package attack

import (
	"bytes"
	"fmt"
	"github.com/nfnt/resize"
	"image/jpeg"
	"stegbench/pkg/model"
)

// LossyRecompress round-trips img through the JPEG codec at the given quality. The round-trip happens in memory.
// Grayscale images stay grayscale.
func LossyRecompress(img *model.Raster, quality int) (*model.Raster, error) {
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: jpeg quality must be between 1 and 100, got %d", ErrInvalidParameter, quality)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("jpeg decode: %w", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != img.Width || bounds.Dy() != img.Height {
		decoded = resize.Resize(uint(img.Width), uint(img.Height), decoded, resize.Bilinear)
	}
	return model.FromImage(decoded, img.Channels)
}
