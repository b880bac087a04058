package api

import (
	"stegbench/pkg/model"
)

type AttackRequest struct {
	Image  []byte             `json:"image" binding:"required"`
	Kind   string             `json:"kind" binding:"required" example:"jpeg"`
	Params map[string]float64 `json:"params,omitempty"`
	// OutputFormat is png, bmp or jpeg and defaults to png.
	OutputFormat string `json:"output_format,omitempty" example:"png"`
}

type AttackResponse struct {
	Image []byte `json:"image"`
}

// MetricsRequest compares two images, two texts, or both.
type MetricsRequest struct {
	Original      []byte  `json:"original,omitempty"`
	Modified      []byte  `json:"modified,omitempty"`
	TextOriginal  *string `json:"text_original,omitempty"`
	TextExtracted *string `json:"text_extracted,omitempty"`
}

type MetricsResponse struct {
	Quality *model.Quality `json:"quality,omitempty"`
	BERText *float64       `json:"ber_text,omitempty"`
}
