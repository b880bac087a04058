// Package bench measures how well an embedded payload survives the attack simulator.
package bench

import (
	"bytes"
	"errors"
	"fmt"
	"stegbench/pkg/attack"
	"stegbench/pkg/config"
	"stegbench/pkg/metrics"
	"stegbench/pkg/model"
	"stegbench/pkg/stego"
	"time"
)

var (
	ErrEmptyPayload = errors.New("bench payload must not be empty")
)

// Trial is the outcome of one attack against the stego image. Quality compares the attacked image with the stego
// image. Error is set instead of the measurements when the attack itself failed.
type Trial struct {
	Kind      string         `json:"kind"`
	Params    attack.Params  `json:"params"`
	Quality   *model.Quality `json:"quality,omitempty"`
	BER       float64        `json:"ber"`
	Survived  bool           `json:"survived"`
	Extracted string         `json:"extracted,omitempty"`
	Duration  time.Duration  `json:"duration"`
	Error     string         `json:"error,omitempty"`
}

type Report struct {
	Method       config.Method    `json:"method"`
	Framing      config.Framing   `json:"framing"`
	Shape        string           `json:"shape"`
	Capacity     int              `json:"capacity"`
	PayloadBytes int              `json:"payload_bytes"`
	Embed        model.EmbedStats `json:"embed"`
	// StegoQuality compares the stego image with the cover.
	StegoQuality model.Quality `json:"stego_quality"`
	Trials       []Trial       `json:"trials"`
	// SurvivalRate is the share of trials whose payload was extracted unchanged.
	SurvivalRate float64 `json:"survival_rate"`
}

type options struct {
	engineOpts []stego.Option
	onTrial    func(done, total int, trial Trial)
}

type Option func(*options)

func WithEngineOptions(opts ...stego.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithProgress registers a callback invoked after every trial.
func WithProgress(onTrial func(done, total int, trial Trial)) Option {
	return func(o *options) {
		o.onTrial = onTrial
	}
}

// Run embeds payload into cover once and then runs every configured attack against the resulting stego image,
// extracting with the threshold that was effectively used at embed time. A failing attack is recorded in its trial
// and does not stop the sweep. Errors are only returned when the embedding itself fails.
func Run(cover *model.Raster, payload []byte, cfg config.BenchConfig, opts ...Option) (*Report, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	embedCfg := cfg.Embed
	embedCfg.PopulateUnsetConfigVars()
	if err := embedCfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := stego.NewEngine(embedCfg, o.engineOpts...)
	if err != nil {
		return nil, err
	}

	capacity, err := engine.Capacity(cover)
	if err != nil {
		return nil, err
	}
	stegoImage, stats, err := engine.Embed(cover, payload)
	if err != nil {
		return nil, err
	}
	stegoQuality, err := metrics.Evaluate(cover, stegoImage)
	if err != nil {
		return nil, fmt.Errorf("measuring stego image quality: %w", err)
	}

	if stats.Threshold != nil {
		embedCfg.Threshold = *stats.Threshold
	}
	extractor, err := stego.NewEngine(embedCfg, o.engineOpts...)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Method:       embedCfg.Method,
		Framing:      embedCfg.Framing,
		Shape:        cover.Shape(),
		Capacity:     capacity,
		PayloadBytes: len(payload),
		Embed:        stats,
		StegoQuality: stegoQuality,
		Trials:       make([]Trial, 0, len(cfg.Attacks)),
	}
	for i, attackCfg := range cfg.Attacks {
		trial := runTrial(stegoImage, payload, extractor, attackCfg)
		report.Trials = append(report.Trials, trial)
		if o.onTrial != nil {
			o.onTrial(i+1, len(cfg.Attacks), trial)
		}
	}
	report.SurvivalRate = survivalRate(report.Trials)
	return report, nil
}

func runTrial(stegoImage *model.Raster, payload []byte, extractor stego.Engine, attackCfg config.AttackConfig) (trial Trial) {
	start := time.Now()
	trial = Trial{Kind: attackCfg.Kind, Params: attack.Params(attackCfg.Params)}
	defer func() {
		trial.Duration = time.Since(start)
	}()

	attacked, err := attack.Apply(stegoImage, attackCfg.Kind, trial.Params)
	if err != nil {
		trial.Error = err.Error()
		trial.BER = 1
		return trial
	}

	extracted, err := extractor.Extract(attacked)
	if err != nil {
		trial.Error = err.Error()
		trial.BER = 1
		return trial
	}
	trial.Extracted = stego.TextFromPayload(extracted)
	trial.Survived = bytes.Equal(payload, extracted)
	trial.BER = metrics.BERText(stego.TextFromPayload(payload), trial.Extracted)

	if quality, err := metrics.Evaluate(stegoImage, attacked); err == nil {
		trial.Quality = &quality
	} else {
		trial.Error = err.Error()
	}
	return trial
}
