package stego

import (
	"math"
	"stegbench/internal/filter"
	"stegbench/pkg/model"
)

// Gradient returns the texture strength of every pixel as a single channel raster. The image is reduced to gray,
// differentiated with 3x3 Sobel kernels, and the Euclidean magnitude is stretched linearly so its minimum maps to 0
// and its maximum to 255. A flat image has an all-zero gradient.
func Gradient(img *model.Raster) *model.Raster {
	gray := img.Gray()
	plane := make([]float64, len(gray.Pix))
	for i, v := range gray.Pix {
		plane[i] = float64(v)
	}

	gradX, gradY := filter.Sobel(plane, gray.Width, gray.Height)
	magnitude := make([]float64, len(plane))
	minMagnitude, maxMagnitude := math.Inf(1), math.Inf(-1)
	for i := range magnitude {
		magnitude[i] = math.Hypot(gradX[i], gradY[i])
		minMagnitude = math.Min(minMagnitude, magnitude[i])
		maxMagnitude = math.Max(maxMagnitude, magnitude[i])
	}

	gradient := &model.Raster{Width: gray.Width, Height: gray.Height, Channels: model.GrayChannels, Pix: gray.Pix}
	magnitudeRange := maxMagnitude - minMagnitude
	for i, m := range magnitude {
		switch {
		case magnitudeRange == 0:
			gradient.Pix[i] = 0
		case m == maxMagnitude:
			gradient.Pix[i] = 255
		default:
			gradient.Pix[i] = uint8(math.Min((m-minMagnitude)*255/magnitudeRange, 255))
		}
	}
	return gradient
}

// EmbeddingMask selects the pixels whose gradient is strictly above threshold.
func EmbeddingMask(gradient *model.Raster, threshold int) *model.Mask {
	mask := model.NewMask(gradient.Width, gradient.Height)
	for p, g := range gradient.Pix {
		mask.Bits[p] = int(g) > threshold
	}
	return mask
}
