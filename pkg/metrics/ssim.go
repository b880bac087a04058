package metrics

import (
	"fmt"
	"gonum.org/v1/gonum/stat"
	"stegbench/internal/filter"
	"stegbench/pkg/model"
)

const (
	DefaultWindowSize = 11
	DefaultSigma      = 1.5
)

var (
	c1 = (0.01 * maxSample) * (0.01 * maxSample)
	c2 = (0.03 * maxSample) * (0.03 * maxSample)
)

func SSIM(a, b *model.Raster) (float64, error) {
	return SSIMWithWindow(a, b, DefaultWindowSize, DefaultSigma)
}

// SSIMWithWindow computes the mean structural similarity of the grayscale versions of a and b. Local statistics use
// a normalized Gaussian window and only positions where the window fits inside the image.
func SSIMWithWindow(a, b *model.Raster, windowSize int, sigma float64) (float64, error) {
	if windowSize < 1 || windowSize%2 == 0 || sigma <= 0 {
		return 0, fmt.Errorf("%w: window %d, sigma %g", ErrInvalidWindow, windowSize, sigma)
	}
	if err := checkShapes(a, b); err != nil {
		return 0, err
	}
	if windowSize > a.Width || windowSize > a.Height {
		return 0, fmt.Errorf("%w: window %d for a %dx%d image", ErrWindowTooLarge, windowSize, a.Width, a.Height)
	}

	x, y := grayPlane(a), grayPlane(b)
	xx, yy, xy := make([]float64, len(x)), make([]float64, len(x)), make([]float64, len(x))
	for i := range x {
		xx[i] = x[i] * x[i]
		yy[i] = y[i] * y[i]
		xy[i] = x[i] * y[i]
	}

	window := filter.Gaussian(windowSize, sigma)
	local := func(plane []float64) []float64 {
		out, _, _ := filter.ValidSeparable(plane, a.Width, a.Height, window)
		return out
	}
	muX, muY := local(x), local(y)
	sumXX, sumYY, sumXY := local(xx), local(yy), local(xy)

	ssimMap := make([]float64, len(muX))
	for i := range ssimMap {
		muXX, muYY, muXY := muX[i]*muX[i], muY[i]*muY[i], muX[i]*muY[i]
		varX, varY, covXY := sumXX[i]-muXX, sumYY[i]-muYY, sumXY[i]-muXY
		ssimMap[i] = ((2*muXY + c1) * (2*covXY + c2)) / ((muXX + muYY + c1) * (varX + varY + c2))
	}
	return stat.Mean(ssimMap, nil), nil
}

func grayPlane(r *model.Raster) []float64 {
	gray := r.Gray()
	plane := make([]float64, len(gray.Pix))
	for i, v := range gray.Pix {
		plane[i] = float64(v)
	}
	return plane
}
