package filter

import (
	"math"
	"testing"
)

func TestGaussianIsNormalizedAndSymmetric(t *testing.T) {
	for _, size := range []int{1, 3, 5, 11} {
		k := Gaussian(size, 1.5)
		var sum float64
		for i := range k {
			sum += k[i]
			if math.Abs(k[i]-k[size-1-i]) > 1e-15 {
				t.Errorf("Kernel of size %d is not symmetric at %d", size, i)
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("Kernel of size %d sums to %f", size, sum)
		}
	}
}

func TestReflect101(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{-1, 5, 1}, {-2, 5, 2}, {5, 5, 3}, {6, 5, 2}, {2, 5, 2}, {-3, 2, 1}, {4, 1, 0}, {9, 3, 1},
	}
	for _, tt := range tests {
		if got := Reflect101(tt.i, tt.n); got != tt.want {
			t.Errorf("Reflect101(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestSeparableKeepsConstantPlane(t *testing.T) {
	plane := make([]float64, 6*4)
	for i := range plane {
		plane[i] = 42
	}
	k := Gaussian(5, 2)
	for i, v := range Separable(plane, 6, 4, k, k) {
		if math.Abs(v-42) > 1e-9 {
			t.Fatalf("Sample %d changed to %f", i, v)
		}
	}
}

func TestValidSeparableShape(t *testing.T) {
	plane := make([]float64, 13*12)
	for i := range plane {
		plane[i] = 1
	}
	out, w, h := ValidSeparable(plane, 13, 12, Gaussian(11, 1.5))
	if w != 3 || h != 2 || len(out) != 6 {
		t.Fatalf("Unexpected valid output shape %dx%d (%d samples)", w, h, len(out))
	}
	for _, v := range out {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("Expected mean of ones to be 1, got %f", v)
		}
	}
}

func TestSobelOnVerticalEdge(t *testing.T) {
	// columns 0-1 are 0, columns 2-3 are 100
	width, height := 4, 3
	plane := make([]float64, width*height)
	for y := 0; y < height; y++ {
		plane[y*width+2], plane[y*width+3] = 100, 100
	}
	gx, gy := Sobel(plane, width, height)
	for y := 0; y < height; y++ {
		if gx[y*width+1] != 400 || gx[y*width+2] != 400 {
			t.Errorf("Expected horizontal derivative 400 at the edge in row %d, got %v", y, gx[y*width:(y+1)*width])
		}
		if gx[y*width] != 0 || gx[y*width+3] != 0 {
			t.Errorf("Expected no horizontal derivative away from the edge in row %d, got %v", y, gx[y*width:(y+1)*width])
		}
	}
	for i, v := range gy {
		if v != 0 {
			t.Errorf("Expected no vertical derivative, got %f at %d", v, i)
		}
	}
}
