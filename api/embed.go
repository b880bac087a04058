package api

import (
	"stegbench/pkg/config"
	"stegbench/pkg/model"
)

// EmbedSettings selects the embedding engine. Threshold is only used by the adaptive method and defaults to 30.
type EmbedSettings struct {
	Method    config.Method  `json:"method" example:"adaptive"`
	Threshold *int           `json:"threshold,omitempty" example:"30"`
	Framing   config.Framing `json:"framing" example:"terminator"`
}

func (s EmbedSettings) ToEmbedConfig() config.EmbedConfig {
	c := config.DefaultEmbedConfig()
	if s.Method != "" {
		c.Method = s.Method
	}
	if s.Framing != "" {
		c.Framing = s.Framing
	}
	if s.Threshold != nil {
		c.Threshold = *s.Threshold
	}
	return c
}

type EmbedRequest struct {
	EmbedSettings
	CoverImage []byte `json:"cover_image" binding:"required"`
	Payload    []byte `json:"payload"`
	// Text is embedded one byte per character when Payload is absent.
	Text string `json:"text,omitempty" example:"meet at dawn"`
	// OutputFormat is png or bmp. Lossy formats would destroy the payload.
	OutputFormat string `json:"output_format,omitempty" example:"png"`
}

type EmbedResponse struct {
	StegoImage []byte        `json:"stego_image"`
	Stats      EmbedStats    `json:"stats"`
	Quality    model.Quality `json:"quality"`
}

type EmbedStats struct {
	model.EmbedStats
	SetupHuman         string `json:"setup_human"`
	DataEmbeddingHuman string `json:"data_embedding_human"`
}

type ExtractRequest struct {
	EmbedSettings
	StegoImage []byte `json:"stego_image" binding:"required"`
}

type ExtractResponse struct {
	Payload []byte `json:"payload"`
	Text    string `json:"text"`
}

type CapacityRequest struct {
	EmbedSettings
	Image []byte `json:"image" binding:"required"`
}

type CapacityResponse struct {
	Bytes int    `json:"bytes"`
	Human string `json:"human"`
}
