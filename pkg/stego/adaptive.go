package stego

import (
	"fmt"
	"stegbench/pkg/config"
	"stegbench/pkg/model"
)

const (
	DefaultThreshold = config.DefaultThreshold
	MaxThreshold     = config.MaxThreshold
	// RelaxStep is how much the threshold is lowered per attempt when the textured region is too small.
	RelaxStep = 5
)

// AdaptiveEngine hides a payload only in textured pixels, those whose Sobel gradient exceeds a threshold. Nothing
// about the mask is stored in the image: extraction recomputes it from the image it is given, so it must use the
// threshold that was effectively used at embed time, and any change to the pixels may change the selection.
type AdaptiveEngine struct {
	threshold int
	options   options
}

func NewAdaptiveEngine(threshold int, opts ...Option) (*AdaptiveEngine, error) {
	if threshold < 0 || threshold > MaxThreshold {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidThreshold, threshold)
	}
	return &AdaptiveEngine{threshold: threshold, options: buildOptions(opts)}, nil
}

func (e *AdaptiveEngine) Threshold() int {
	return e.threshold
}

// Embed returns a copy of cover carrying payload. When the textured region at the configured threshold is too small
// the threshold is lowered by RelaxStep until the payload fits or the threshold reaches 0. The threshold actually
// used is reported in the returned stats.
func (e *AdaptiveEngine) Embed(cover *model.Raster, payload []byte) (*model.Raster, model.EmbedStats, error) {
	if err := validateRaster(cover); err != nil {
		return nil, model.EmbedStats{}, err
	}

	gradient := Gradient(cover)
	threshold := e.threshold
	mask := EmbeddingMask(gradient, threshold)
	err := checkCapacity(cover, mask, len(payload), e.options.framing)
	for err != nil && threshold > 0 {
		threshold = max(threshold-RelaxStep, 0)
		mask = EmbeddingMask(gradient, threshold)
		err = checkCapacity(cover, mask, len(payload), e.options.framing)
		e.options.sink.Debug("relaxed gradient threshold",
			"requested_threshold", e.threshold,
			"threshold", threshold,
			"capacity_bytes", slotCount(cover, mask)/8)
	}
	if err != nil {
		return nil, model.EmbedStats{}, err
	}

	stegoImage, stats := embedPayload(cover, mask, payload, e.options)
	stats.Threshold = &threshold
	return stegoImage, stats, nil
}

func (e *AdaptiveEngine) Extract(stegoImage *model.Raster) ([]byte, error) {
	if err := validateRaster(stegoImage); err != nil {
		return nil, err
	}
	mask := EmbeddingMask(Gradient(stegoImage), e.threshold)
	return extractPayload(stegoImage, mask, e.options), nil
}

// Capacity returns the number of framed bytes the textured pixels can carry at the engine's threshold.
func (e *AdaptiveEngine) Capacity(img *model.Raster) (int, error) {
	if err := validateRaster(img); err != nil {
		return 0, err
	}
	return slotCount(img, EmbeddingMask(Gradient(img), e.threshold)) / 8, nil
}
