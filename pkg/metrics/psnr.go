package metrics

import (
	"fmt"
	"math"
	"stegbench/pkg/model"
)

const maxSample = 255

func checkShapes(a, b *model.Raster) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if !a.SameShape(b) {
		return fmt.Errorf("%w: %s and %s", ErrShapeMismatch, a.Shape(), b.Shape())
	}
	return nil
}

// PSNR returns the peak signal to noise ratio of b against a in decibels, or +Inf when the images are identical.
func PSNR(a, b *model.Raster) (float64, error) {
	if err := checkShapes(a, b); err != nil {
		return 0, err
	}

	var sumSquares float64
	for i := range a.Pix {
		d := float64(a.Pix[i]) - float64(b.Pix[i])
		sumSquares += d * d
	}
	mse := sumSquares / float64(len(a.Pix))
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 20 * math.Log10(maxSample/math.Sqrt(mse)), nil
}

// Evaluate computes PSNR and SSIM of modified against original.
func Evaluate(original, modified *model.Raster) (model.Quality, error) {
	psnr, err := PSNR(original, modified)
	if err != nil {
		return model.Quality{}, err
	}
	ssim, err := SSIM(original, modified)
	if err != nil {
		return model.Quality{}, err
	}
	return model.Quality{PSNR: psnr, SSIM: ssim}, nil
}
