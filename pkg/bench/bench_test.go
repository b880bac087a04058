package bench

import (
	"bytes"
	"encoding/csv"
	"errors"
	"github.com/google/go-cmp/cmp"
	"math"
	"stegbench/pkg/config"
	"stegbench/pkg/model"
	"stegbench/pkg/stego"
	"stegbench/test"
	"strings"
	"testing"
)

func benchConfig(method config.Method, attacks ...config.AttackConfig) config.BenchConfig {
	return config.BenchConfig{
		Embed:   config.EmbedConfig{Method: method, Threshold: config.DefaultThreshold},
		Attacks: attacks,
	}
}

func TestRunRecordsTrials(t *testing.T) {
	cover := test.GenerateNoiseRaster(32, 32, model.ColorChannels, 1)
	cfg := benchConfig(config.MethodLSB,
		config.AttackConfig{Kind: "noise", Params: map[string]float64{"sigma": 0}},
		config.AttackConfig{Kind: "jpeg", Params: map[string]float64{"quality": 30}},
		config.AttackConfig{Kind: "blur", Params: map[string]float64{"sigma": -1}},
		config.AttackConfig{Kind: "rotate"},
	)

	var progress []int
	report, err := Run(cover, []byte("robustness"), cfg, WithProgress(func(done, total int, _ Trial) {
		if total != 4 {
			t.Errorf("Expected 4 trials in total, got %d", total)
		}
		progress = append(progress, done)
	}))
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	if report.Capacity != 384 || report.PayloadBytes != 10 {
		t.Errorf("Unexpected capacity %d or payload size %d", report.Capacity, report.PayloadBytes)
	}
	if math.IsInf(report.StegoQuality.PSNR, 1) || report.StegoQuality.PSNR < 40 {
		t.Errorf("Expected a finite, high stego PSNR, got %g", report.StegoQuality.PSNR)
	}
	if len(report.Trials) != 4 || len(progress) != 4 || progress[3] != 4 {
		t.Fatalf("Expected 4 trials and 4 progress calls, got %d and %v", len(report.Trials), progress)
	}

	identity := report.Trials[0]
	if !identity.Survived || identity.BER != 0 || identity.Error != "" || identity.Extracted != "robustness" {
		t.Errorf("Expected the payload to survive a no-op attack, got %+v", identity)
	}
	if identity.Quality == nil || !math.IsInf(identity.Quality.PSNR, 1) {
		t.Errorf("Expected a no-op attack to leave the stego image untouched, got %+v", identity.Quality)
	}

	if jpeg := report.Trials[1]; jpeg.Survived || jpeg.BER == 0 {
		t.Errorf("Expected JPEG recompression to destroy the payload, got %+v", jpeg)
	}
	for _, trial := range report.Trials[2:] {
		if trial.Error == "" || trial.BER != 1 || trial.Survived {
			t.Errorf("Expected %s to be recorded as a failed trial, got %+v", trial.Kind, trial)
		}
	}
	if report.SurvivalRate != 0.25 {
		t.Errorf("Expected a survival rate of 0.25, got %g", report.SurvivalRate)
	}

	var out bytes.Buffer
	if err = report.WriteText(&out); err != nil {
		t.Fatalf("WriteText: %s", err)
	}
	for _, want := range []string{"lsb (terminator framing)", "384 B", "sigma=0", "error: ", "survival rate:  25%"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected the text report to contain %q:\n%s", want, out.String())
		}
	}
}

func TestWriteCSV(t *testing.T) {
	cover := test.GenerateNoiseRaster(32, 32, model.GrayChannels, 3)
	cfg := benchConfig(config.MethodLSB,
		config.AttackConfig{Kind: "noise", Params: map[string]float64{"sigma": 0}},
		config.AttackConfig{Kind: "rotate"},
	)
	report, err := Run(cover, []byte("csv, please"), cfg)
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	var out bytes.Buffer
	if err = report.WriteCSV(&out); err != nil {
		t.Fatalf("WriteCSV: %s", err)
	}
	rows, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %s", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected a header and 2 rows, got %v", rows)
	}
	if diff := cmp.Diff(csvHeader, rows[0]); diff != "" {
		t.Errorf("Unexpected header (-want +got):\n%s", diff)
	}
	identity := rows[1]
	if diff := cmp.Diff([]string{"noise", "sigma=0", "inf", "1.000000", "0.000000", "true", "csv, please"}, identity[:7]); diff != "" {
		t.Errorf("Unexpected no-op attack row (-want +got):\n%s", diff)
	}
	if failed := rows[2]; failed[0] != "rotate" || failed[1] != "defaults" || failed[2] != "" || failed[5] != "false" || failed[8] == "" {
		t.Errorf("Unexpected failed attack row %v", failed)
	}
}

func TestRunAdaptiveUsesEffectiveThreshold(t *testing.T) {
	cover := test.GenerateStripedRaster(32, 16, model.GrayChannels, 100)
	cfg := benchConfig(config.MethodAdaptive, config.AttackConfig{Kind: "noise", Params: map[string]float64{"sigma": 0}})
	cfg.Embed.Threshold = 200

	report, err := Run(cover, test.GeneratePayload(29), cfg)
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if report.Embed.Threshold == nil || *report.Embed.Threshold != 125 {
		t.Fatalf("Expected the embed threshold to relax to 125, got %v", report.Embed.Threshold)
	}
	if report.Capacity != 28 {
		t.Errorf("Expected the capacity at the requested threshold, got %d", report.Capacity)
	}
}

func TestRunFailsWhenEmbeddingFails(t *testing.T) {
	cover := test.GenerateUniformRaster(16, 16, model.GrayChannels, 0)
	if _, err := Run(cover, test.GeneratePayload(100), benchConfig(config.MethodLSB)); !errors.Is(err, stego.ErrImageNotBigEnough) {
		t.Errorf("Expected ErrImageNotBigEnough, got %v", err)
	}
	if _, err := Run(cover, nil, benchConfig(config.MethodLSB)); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("Expected ErrEmptyPayload, got %v", err)
	}
	if _, err := Run(cover, []byte("x"), benchConfig("dct")); !errors.Is(err, config.ErrUnknownMethod) {
		t.Errorf("Expected ErrUnknownMethod, got %v", err)
	}
}
