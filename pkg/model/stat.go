package model

import (
	"encoding/json"
	"math"
	"time"
)

type EmbedStats struct {
	Setup         time.Duration `json:"setup"`
	DataEmbedding time.Duration `json:"data_embedding"`
	BitsEmbedded  int           `json:"bits_embedded"`
	// Threshold is the gradient threshold the adaptive engine actually used, which may be lower than the requested
	// one. Extraction must be given this value. Nil for plain LSB embedding.
	Threshold *int `json:"threshold,omitempty"`
}

// Quality holds the fidelity of a modified image compared with its original.
type Quality struct {
	PSNR float64 `json:"psnr"`
	SSIM float64 `json:"ssim"`
}

type jsonQuality struct {
	PSNR         *float64 `json:"psnr"`
	PSNRInfinite bool     `json:"psnr_infinite,omitempty"`
	SSIM         float64  `json:"ssim"`
}

// MarshalJSON encodes an infinite PSNR (identical images) as a null value plus a psnr_infinite flag, since JSON
// has no representation for infinity.
func (q Quality) MarshalJSON() ([]byte, error) {
	out := jsonQuality{SSIM: q.SSIM}
	if math.IsInf(q.PSNR, 1) {
		out.PSNRInfinite = true
	} else {
		psnr := q.PSNR
		out.PSNR = &psnr
	}
	return json.Marshal(out)
}

func (q *Quality) UnmarshalJSON(data []byte) error {
	var in jsonQuality
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	q.SSIM = in.SSIM
	switch {
	case in.PSNRInfinite:
		q.PSNR = math.Inf(1)
	case in.PSNR != nil:
		q.PSNR = *in.PSNR
	default:
		q.PSNR = 0
	}
	return nil
}
