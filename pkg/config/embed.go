package config

import (
	"errors"
	"fmt"
	"image/png"
)

const (
	DefaultThreshold = 30
	MaxThreshold     = 255
)

type Method string

const (
	MethodLSB      Method = "lsb"
	MethodAdaptive Method = "adaptive"
)

// Framing selects how the end of the embedded payload is marked.
type Framing string

const (
	// FramingTerminator appends a single zero byte. Payloads containing a zero byte are truncated on extraction.
	FramingTerminator Framing = "terminator"
	// FramingLengthPrefix stores the payload length in an 8 byte header.
	FramingLengthPrefix Framing = "length-prefix"
)

var (
	ErrUnknownMethod  = errors.New("unknown embedding method")
	ErrUnknownFraming = errors.New("unknown payload framing")
	ErrBadThreshold   = errors.New("gradient threshold must be between 0 and 255")
)

type EmbedConfig struct {
	Method              Method               `toml:"method" json:"method"`
	Threshold           int                  `toml:"threshold" json:"threshold"`
	Framing             Framing              `toml:"framing" json:"framing"`
	PngCompressionLevel png.CompressionLevel `toml:"-" json:"-"`
}

func DefaultEmbedConfig() EmbedConfig {
	return EmbedConfig{
		Method:    MethodLSB,
		Threshold: DefaultThreshold,
		Framing:   FramingTerminator,
	}
}

// PopulateUnsetConfigVars fills empty string settings with their defaults. A zero threshold is a valid setting and is
// left untouched.
func (c *EmbedConfig) PopulateUnsetConfigVars() {
	if c.Method == "" {
		c.Method = MethodLSB
	}
	if c.Framing == "" {
		c.Framing = FramingTerminator
	}
}

func (c EmbedConfig) Validate() error {
	switch c.Method {
	case MethodLSB, MethodAdaptive:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, c.Method)
	}
	switch c.Framing {
	case FramingTerminator, FramingLengthPrefix:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFraming, c.Framing)
	}
	if c.Method == MethodAdaptive && (c.Threshold < 0 || c.Threshold > MaxThreshold) {
		return fmt.Errorf("%w, got %d", ErrBadThreshold, c.Threshold)
	}
	return nil
}
