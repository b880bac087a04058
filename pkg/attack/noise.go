package attack

import (
	"fmt"
	"gonum.org/v1/gonum/stat/distuv"
	"math"
	"math/rand/v2"
	"stegbench/pkg/model"
)

// AddGaussianNoise adds independent normally distributed noise to every sample, then clamps and rounds. The same
// seed always produces the same noise.
func AddGaussianNoise(img *model.Raster, mean, sigma float64, seed uint64) (*model.Raster, error) {
	if !(sigma >= 0) || math.IsInf(sigma, 1) {
		return nil, fmt.Errorf("%w: sigma must be finite and not negative, got %g", ErrInvalidParameter, sigma)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("%w: mean must be finite, got %g", ErrInvalidParameter, mean)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	dist := distuv.Normal{Mu: mean, Sigma: sigma, Src: rand.NewPCG(seed, seed)}
	noisy := img.Clone()
	for i, v := range img.Pix {
		noisy.Pix[i] = clampRound(float64(v) + dist.Rand())
	}
	return noisy, nil
}

func clampRound(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
