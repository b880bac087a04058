package filter

var (
	sobelDerivative = []float64{-1, 0, 1}
	sobelSmoothing  = []float64{1, 2, 1}
)

// Sobel returns the 3x3 Sobel first derivatives of a plane along x and y.
func Sobel(plane []float64, width, height int) (gradX, gradY []float64) {
	gradX = Separable(plane, width, height, sobelDerivative, sobelSmoothing)
	gradY = Separable(plane, width, height, sobelSmoothing, sobelDerivative)
	return gradX, gradY
}
