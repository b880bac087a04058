package filter

// Separable correlates a plane with kernelX along rows and kernelY along columns, keeping the plane size. Borders are
// handled with Reflect101.
func Separable(plane []float64, width, height int, kernelX, kernelY []float64) []float64 {
	tmp := make([]float64, len(plane))
	rx := len(kernelX) / 2
	for y := 0; y < height; y++ {
		row := plane[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var acc float64
			for k, weight := range kernelX {
				acc += weight * row[Reflect101(x+k-rx, width)]
			}
			tmp[y*width+x] = acc
		}
	}

	out := make([]float64, len(plane))
	ry := len(kernelY) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var acc float64
			for k, weight := range kernelY {
				acc += weight * tmp[Reflect101(y+k-ry, height)*width+x]
			}
			out[y*width+x] = acc
		}
	}
	return out
}

// ValidSeparable correlates a plane with the outer product of kernel with itself, producing only the positions where
// the window fits entirely inside the plane. The output is (width-len(kernel)+1) x (height-len(kernel)+1); callers
// must make sure the kernel fits.
func ValidSeparable(plane []float64, width, height int, kernel []float64) (out []float64, outWidth, outHeight int) {
	size := len(kernel)
	outWidth, outHeight = width-size+1, height-size+1

	tmp := make([]float64, outWidth*height)
	for y := 0; y < height; y++ {
		for x := 0; x < outWidth; x++ {
			var acc float64
			for k, weight := range kernel {
				acc += weight * plane[y*width+x+k]
			}
			tmp[y*outWidth+x] = acc
		}
	}

	out = make([]float64, outWidth*outHeight)
	for y := 0; y < outHeight; y++ {
		for x := 0; x < outWidth; x++ {
			var acc float64
			for k, weight := range kernel {
				acc += weight * tmp[(y+k)*outWidth+x]
			}
			out[y*outWidth+x] = acc
		}
	}
	return out, outWidth, outHeight
}
