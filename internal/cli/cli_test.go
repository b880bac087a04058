package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"stegbench/pkg/imageio"
	"stegbench/pkg/model"
	"stegbench/test"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand()
	defer rootCmd.Stop()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeImage(t *testing.T, dir, name string, raster *model.Raster) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imageio.Save(path, raster, imageio.EncodeOptions{}); err != nil {
		t.Fatalf("Save: %s", err)
	}
	return path
}

func TestEmbedExtract(t *testing.T) {
	dir := t.TempDir()
	cover := writeImage(t, dir, "cover.png", test.GenerateStripedRaster(64, 32, model.ColorChannels, 200))
	stegoPath := filepath.Join(dir, "stego.bmp")

	out, err := run(t, "embed", "--image", cover, "--output", stegoPath, "--payload", "meet at dawn",
		"--method", "adaptive", "--threshold", "30", "--png-compression", "best")
	if err != nil {
		t.Fatalf("embed: %s", err)
	}
	if !strings.Contains(out, "Threshold used: 30") {
		t.Errorf("Expected the effective threshold to be printed, got %q", out)
	}

	out, err = run(t, "extract", "--image", stegoPath, "--method", "adaptive", "--threshold", "30")
	if err != nil {
		t.Fatalf("extract: %s", err)
	}
	if strings.TrimSpace(out) != "meet at dawn" {
		t.Errorf("Expected to extract the payload, got %q", out)
	}
}

func TestEmbedExtractLatin1Text(t *testing.T) {
	dir := t.TempDir()
	cover := writeImage(t, dir, "cover.png", test.GenerateNoiseRaster(32, 32, model.ColorChannels, 4))
	stegoPath := filepath.Join(dir, "stego.png")

	out, err := run(t, "embed", "--image", cover, "--output", stegoPath, "--payload", "héllo")
	if err != nil {
		t.Fatalf("embed: %s", err)
	}
	if !strings.Contains(out, "(48 bits)") {
		t.Errorf("Expected one byte per character plus the terminator, got %q", out)
	}

	out, err = run(t, "extract", "--image", stegoPath)
	if err != nil {
		t.Fatalf("extract: %s", err)
	}
	if strings.TrimSpace(out) != "héllo" {
		t.Errorf("Expected to extract %q, got %q", "héllo", out)
	}
}

func TestEmbedPayloadFileWithLengthPrefix(t *testing.T) {
	dir := t.TempDir()
	cover := writeImage(t, dir, "cover.png", test.GenerateNoiseRaster(32, 32, model.GrayChannels, 1))
	payloadFile := filepath.Join(dir, "payload.bin")
	payload := []byte{1, 0, 2, 0, 3}
	if err := os.WriteFile(payloadFile, payload, 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	stegoPath := filepath.Join(dir, "stego.png")
	extractedPath := filepath.Join(dir, "extracted.bin")

	if _, err := run(t, "embed", "--image", cover, "--output", stegoPath, "--payload-file", payloadFile, "--framing", "length-prefix"); err != nil {
		t.Fatalf("embed: %s", err)
	}
	if _, err := run(t, "extract", "--image", stegoPath, "--framing", "length-prefix", "--output-file", extractedPath); err != nil {
		t.Fatalf("extract: %s", err)
	}
	extracted, err := os.ReadFile(extractedPath)
	if err != nil {
		t.Fatalf("ReadFile: %s", err)
	}
	if !bytes.Equal(payload, extracted) {
		t.Errorf("Expected %v, got %v", payload, extracted)
	}
}

func TestEmbedRejections(t *testing.T) {
	dir := t.TempDir()
	cover := writeImage(t, dir, "cover.png", test.GenerateUniformRaster(8, 8, model.GrayChannels, 0))

	tests := map[string][]string{
		"jpeg output":    {"embed", "--image", cover, "--output", filepath.Join(dir, "out.jpg"), "--payload", "a"},
		"no payload":     {"embed", "--image", cover, "--output", filepath.Join(dir, "out.png")},
		"too big":        {"embed", "--image", cover, "--output", filepath.Join(dir, "out.png"), "--payload", "12345678"},
		"unknown method": {"embed", "--image", cover, "--output", filepath.Join(dir, "out.png"), "--payload", "a", "--method", "dct"},
		"bad level":      {"embed", "--image", cover, "--output", filepath.Join(dir, "out.png"), "--payload", "a", "--log-level", "loud"},
		"missing image":  {"embed", "--output", filepath.Join(dir, "out.png"), "--payload", "a"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := run(t, args...); err == nil {
				t.Errorf("Expected %v to fail", args)
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); !os.IsNotExist(err) {
		t.Errorf("Expected no output image to be written by failing commands")
	}
}

func TestCapacity(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "cover.png", test.GenerateUniformRaster(100, 100, model.ColorChannels, 3))
	out, err := run(t, "capacity", "--image", img)
	if err != nil {
		t.Fatalf("capacity: %s", err)
	}
	if strings.TrimSpace(out) != "3750 bytes (3.8 kB)" {
		t.Errorf("Unexpected capacity output %q", out)
	}
}

func TestAttackAndMetrics(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "img.png", test.GenerateNoiseRaster(32, 32, model.ColorChannels, 6))
	attacked := filepath.Join(dir, "attacked.png")

	if _, err := run(t, "attack", "--image", img, "--output", attacked, "--kind", "noise", "--param", "sigma=0", "--param", "mean=0"); err != nil {
		t.Fatalf("attack: %s", err)
	}
	out, err := run(t, "metrics", "--original", img, "--modified", attacked, "--text-original", "abcd", "--text-extracted", "abXd", "--json")
	if err != nil {
		t.Fatalf("metrics: %s", err)
	}
	var result struct {
		Quality model.Quality `json:"quality"`
		BERText float64       `json:"ber_text"`
	}
	if err = json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Unmarshal %q: %s", out, err)
	}
	if result.BERText != 0.25 || result.Quality.SSIM < 0.999 {
		t.Errorf("Unexpected metrics %s", out)
	}

	if _, err = run(t, "attack", "--image", img, "--output", attacked, "--kind", "jpeg", "--param", "quality=abc"); err == nil {
		t.Errorf("Expected a non numeric parameter to be rejected")
	}
	if _, err = run(t, "attack", "--image", img, "--output", attacked, "--kind", "rotate"); err == nil {
		t.Errorf("Expected an unknown attack to be rejected")
	}
	if _, err = run(t, "metrics"); err == nil {
		t.Errorf("Expected metrics without inputs to fail")
	}
}

func TestGradientAndBitPlane(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "img.png", test.GenerateStripedRaster(32, 16, model.GrayChannels, 200))
	gradientPath, maskPath, planePath := filepath.Join(dir, "g.png"), filepath.Join(dir, "m.png"), filepath.Join(dir, "p.png")

	out, err := run(t, "gradient", "--image", img, "--output", gradientPath, "--mask-output", maskPath)
	if err != nil {
		t.Fatalf("gradient: %s", err)
	}
	if !strings.Contains(out, "256 of 512 pixels") {
		t.Errorf("Unexpected gradient output %q", out)
	}
	mask, err := imageio.Load(maskPath)
	if err != nil || mask.Channels != model.GrayChannels {
		t.Fatalf("Expected a grayscale mask image, got %v", err)
	}

	if _, err = run(t, "bitplane", "--image", img, "--output", planePath, "--bit", "3"); err != nil {
		t.Fatalf("bitplane: %s", err)
	}
	plane, _ := imageio.Load(planePath)
	// 200 has bit 3 set, 0 does not
	if plane.Pix[0] != 255 || plane.Pix[plane.PixOffset(16, 0)] != 0 {
		t.Errorf("Unexpected bit plane samples %d and %d", plane.Pix[0], plane.Pix[plane.PixOffset(16, 0)])
	}
	if _, err = run(t, "bitplane", "--image", img, "--output", planePath, "--bit", "9"); err == nil {
		t.Errorf("Expected bit 9 to be rejected")
	}
}

func TestBench(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "cover.png", test.GenerateNoiseRaster(32, 32, model.ColorChannels, 7))
	configPath := filepath.Join(dir, "bench.toml")
	benchConfig := `
[embed]
method = "lsb"

[[attack]]
kind = "noise"
params = { sigma = 0.0 }

[[attack]]
kind = "jpeg"
params = { quality = 40.0 }
`
	if err := os.WriteFile(configPath, []byte(benchConfig), 0o644); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}

	out, err := run(t, "bench", "--image", img, "--payload", "sweep", "--config", configPath, "--json")
	if err != nil {
		t.Fatalf("bench: %s", err)
	}
	var report struct {
		Trials []struct {
			Kind     string `json:"kind"`
			Survived bool   `json:"survived"`
		} `json:"trials"`
		SurvivalRate float64 `json:"survival_rate"`
	}
	if err = json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Unmarshal %q: %s", out, err)
	}
	if len(report.Trials) != 2 || !report.Trials[0].Survived || report.Trials[1].Survived {
		t.Errorf("Unexpected trials %+v", report.Trials)
	}
	if report.SurvivalRate != 0.5 {
		t.Errorf("Expected half of the trials to survive, got %g", report.SurvivalRate)
	}

	out, err = run(t, "bench", "--image", img, "--payload", "sweep", "--config", configPath, "--csv")
	if err != nil {
		t.Fatalf("bench as csv: %s", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "kind,params,psnr") || !strings.HasPrefix(lines[1], "noise,sigma=0,inf,") {
		t.Errorf("Unexpected csv report:\n%s", out)
	}
	if _, err = run(t, "bench", "--image", img, "--json", "--csv"); err == nil {
		t.Errorf("Expected --json and --csv to be rejected together")
	}

	out, err = run(t, "bench", "--image", img)
	if err != nil {
		t.Fatalf("bench with defaults: %s", err)
	}
	if !strings.Contains(out, "ATTACK") || strings.Count(out, "jpeg") != 3 {
		t.Errorf("Expected the default sweep as a table, got:\n%s", out)
	}
}

func TestProfilers(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "cover.png", test.GenerateUniformRaster(16, 16, model.GrayChannels, 1))
	cpuProfile, memDir := filepath.Join(dir, "cpu.prof"), filepath.Join(dir, "mem")

	if _, err := run(t, "capacity", "--image", img, "--cpu-profile", cpuProfile, "--mem-profile-dir", memDir); err != nil {
		t.Fatalf("capacity: %s", err)
	}
	if info, err := os.Stat(cpuProfile); err != nil || info.Size() == 0 {
		t.Errorf("Expected a CPU profile to be written, got %v", err)
	}
	if dumps, _ := filepath.Glob(filepath.Join(memDir, "mem-*.mprof")); len(dumps) == 0 {
		t.Errorf("Expected at least one heap dump")
	}
}
