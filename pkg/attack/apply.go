package attack

import (
	"fmt"
	"math"
	"slices"
	"stegbench/pkg/model"
)

const (
	KindJPEG  = "jpeg"
	KindBlur  = "blur"
	KindCrop  = "crop"
	KindNoise = "noise"
)

const (
	ParamQuality    = "quality"
	ParamKernelSize = "kernel_size"
	ParamSigma      = "sigma"
	ParamCropRatio  = "crop_ratio"
	ParamMean       = "mean"
	ParamSeed       = "seed"
)

// Params maps parameter names to values. Integral parameters must hold whole numbers.
type Params map[string]float64

var defaultParams = map[string]Params{
	KindJPEG:  {ParamQuality: 75},
	KindBlur:  {ParamKernelSize: 3, ParamSigma: 1},
	KindCrop:  {ParamCropRatio: 0.9},
	KindNoise: {ParamMean: 0, ParamSigma: 10, ParamSeed: 1},
}

// Kinds lists the supported attack kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(defaultParams))
	for kind := range defaultParams {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// DefaultParams returns a fresh copy of the parameters used for kind when none are given.
func DefaultParams(kind string) (Params, error) {
	defaults, ok := defaultParams[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAttack, kind)
	}
	params := make(Params, len(defaults))
	for k, v := range defaults {
		params[k] = v
	}
	return params, nil
}

// Apply runs the attack named by kind. Parameters missing from params take their default values, and parameters the
// attack does not use are ignored.
func Apply(img *model.Raster, kind string, params Params) (*model.Raster, error) {
	merged, err := DefaultParams(kind)
	if err != nil {
		return nil, err
	}
	for k, v := range params {
		merged[k] = v
	}

	switch kind {
	case KindJPEG:
		quality, err := merged.integer(ParamQuality)
		if err != nil {
			return nil, err
		}
		return LossyRecompress(img, quality)
	case KindBlur:
		kernelSize, err := merged.integer(ParamKernelSize)
		if err != nil {
			return nil, err
		}
		return Blur(img, kernelSize, merged[ParamSigma])
	case KindCrop:
		return CropAndRestore(img, merged[ParamCropRatio])
	default:
		seed, err := merged.integer(ParamSeed)
		if err != nil {
			return nil, err
		}
		if seed < 0 {
			return nil, fmt.Errorf("%w: seed must not be negative, got %d", ErrInvalidParameter, seed)
		}
		return AddGaussianNoise(img, merged[ParamMean], merged[ParamSigma], uint64(seed))
	}
}

func (p Params) integer(name string) (int, error) {
	v := p[name]
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a whole number in range, got %g", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
