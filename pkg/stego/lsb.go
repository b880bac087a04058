package stego

import (
	"stegbench/pkg/model"
)

// LSBEngine hides a payload in the least significant bit of every sample, in raster order.
type LSBEngine struct {
	options options
}

func NewLSBEngine(opts ...Option) *LSBEngine {
	return &LSBEngine{options: buildOptions(opts)}
}

// Embed returns a copy of cover carrying payload. The cover is never modified.
func (e *LSBEngine) Embed(cover *model.Raster, payload []byte) (*model.Raster, model.EmbedStats, error) {
	if err := validateRaster(cover); err != nil {
		return nil, model.EmbedStats{}, err
	}
	if err := checkCapacity(cover, nil, len(payload), e.options.framing); err != nil {
		return nil, model.EmbedStats{}, err
	}
	stegoImage, stats := embedPayload(cover, nil, payload, e.options)
	return stegoImage, stats, nil
}

func (e *LSBEngine) Extract(stegoImage *model.Raster) ([]byte, error) {
	if err := validateRaster(stegoImage); err != nil {
		return nil, err
	}
	return extractPayload(stegoImage, nil, e.options), nil
}

// Capacity returns the number of framed bytes the image can carry: one slot per grayscale pixel, three per color
// pixel, eight slots per byte.
func (e *LSBEngine) Capacity(img *model.Raster) (int, error) {
	if err := validateRaster(img); err != nil {
		return 0, err
	}
	return slotCount(img, nil) / 8, nil
}
