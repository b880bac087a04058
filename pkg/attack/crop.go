package attack

import (
	"fmt"
	"github.com/nfnt/resize"
	"stegbench/pkg/model"
)

// CropAndRestore keeps the centered region covering ratio of both dimensions and scales it back up to the original
// size with bilinear interpolation.
func CropAndRestore(img *model.Raster, ratio float64) (*model.Raster, error) {
	if !(ratio > 0 && ratio < 1) {
		return nil, fmt.Errorf("%w: crop ratio must be strictly between 0 and 1, got %g", ErrInvalidParameter, ratio)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	cropWidth := max(int(float64(img.Width)*ratio), 1)
	cropHeight := max(int(float64(img.Height)*ratio), 1)
	left, top := (img.Width-cropWidth)/2, (img.Height-cropHeight)/2

	cropped := &model.Raster{
		Width:    cropWidth,
		Height:   cropHeight,
		Channels: img.Channels,
		Pix:      make([]uint8, cropWidth*cropHeight*img.Channels),
	}
	rowLen := cropWidth * img.Channels
	for y := 0; y < cropHeight; y++ {
		src := img.PixOffset(left, top+y)
		copy(cropped.Pix[y*rowLen:(y+1)*rowLen], img.Pix[src:src+rowLen])
	}

	restored := resize.Resize(uint(img.Width), uint(img.Height), cropped.ToImage(), resize.Bilinear)
	return model.FromImage(restored, img.Channels)
}
