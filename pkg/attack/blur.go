package attack

import (
	"fmt"
	"math"
	"stegbench/internal/filter"
	"stegbench/pkg/model"
)

// Blur smooths every channel with a separable Gaussian kernel. Even kernel sizes are rounded up to the next odd size.
// Kernels may be at most 2*max(width, height)+1 wide.
func Blur(img *model.Raster, kernelSize int, sigma float64) (*model.Raster, error) {
	if kernelSize < 1 {
		return nil, fmt.Errorf("%w: kernel size must be at least 1, got %d", ErrInvalidParameter, kernelSize)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, fmt.Errorf("%w: sigma must be positive and finite, got %g", ErrInvalidParameter, sigma)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if limit := 2*max(img.Width, img.Height) + 1; kernelSize > limit {
		return nil, fmt.Errorf("%w: kernel size %d exceeds %d for a %dx%d image", ErrInvalidParameter, kernelSize, limit,
			img.Width, img.Height)
	}
	if kernelSize%2 == 0 {
		kernelSize++
	}

	kernel := filter.Gaussian(kernelSize, sigma)
	blurred := img.Clone()
	plane := make([]float64, img.Pixels())
	for c := 0; c < img.Channels; c++ {
		for p := range plane {
			plane[p] = float64(img.Pix[p*img.Channels+c])
		}
		smoothed := filter.Separable(plane, img.Width, img.Height, kernel, kernel)
		for p, v := range smoothed {
			blurred.Pix[p*img.Channels+c] = clampRound(v)
		}
	}
	return blurred, nil
}
