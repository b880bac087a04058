// Package filter holds the small set of linear filters shared by the gradient engine, the blur attack and SSIM.
// Planes are float64 slices in row-major order.
package filter

import (
	"gonum.org/v1/gonum/floats"
	"math"
)

// Gaussian returns a normalized 1D Gaussian kernel of the given odd size.
func Gaussian(size int, sigma float64) []float64 {
	kernel := make([]float64, size)
	center := float64(size-1) / 2
	for i := range kernel {
		d := float64(i) - center
		kernel[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// Reflect101 maps an out of range index back into [0, n) by mirroring around the edge samples without repeating
// them, so -1 maps to 1 and n maps to n-2.
func Reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}
