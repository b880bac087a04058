package stego

import (
	"fmt"
	"stegbench/pkg/config"
	"stegbench/pkg/model"
)

// Engine is the functional surface shared by the embedding methods.
type Engine interface {
	Embed(cover *model.Raster, payload []byte) (*model.Raster, model.EmbedStats, error)
	Extract(stegoImage *model.Raster) ([]byte, error)
	Capacity(img *model.Raster) (int, error)
}

var (
	_ Engine = (*LSBEngine)(nil)
	_ Engine = (*AdaptiveEngine)(nil)
)

// NewEngine builds the engine described by an embed config. Extra options are applied after the config's framing.
func NewEngine(c config.EmbedConfig, opts ...Option) (Engine, error) {
	c.PopulateUnsetConfigVars()

	var engineOpts []Option
	switch c.Framing {
	case config.FramingTerminator:
	case config.FramingLengthPrefix:
		engineOpts = append(engineOpts, WithLengthPrefix())
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFraming, c.Framing)
	}
	engineOpts = append(engineOpts, opts...)

	switch c.Method {
	case config.MethodLSB:
		return NewLSBEngine(engineOpts...), nil
	case config.MethodAdaptive:
		return NewAdaptiveEngine(c.Threshold, engineOpts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, c.Method)
	}
}
