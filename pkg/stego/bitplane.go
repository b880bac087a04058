package stego

import (
	"fmt"
	"stegbench/pkg/model"
)

// BitPlane renders one bit plane of the grayscale version of img, 255 where the bit is set and 0 elsewhere. Bit 0 is
// the least significant plane, where LSB embedding shows up as noise.
func BitPlane(img *model.Raster, bit int) (*model.Raster, error) {
	if bit < 0 || bit > 7 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidBitPosition, bit)
	}
	if err := validateRaster(img); err != nil {
		return nil, err
	}

	plane := img.Gray()
	for i, v := range plane.Pix {
		plane.Pix[i] = ((v >> bit) & 1) * 255
	}
	return plane, nil
}
