package bench

import (
	"encoding/csv"
	"fmt"
	"github.com/dustin/go-humanize"
	"io"
	"math"
	"slices"
	"stegbench/pkg/model"
	"strconv"
	"strings"
	"text/tabwriter"
)

var csvHeader = []string{"kind", "params", "psnr", "ssim", "ber", "survived", "extracted", "duration_ms", "error"}

// WriteText renders the report as an aligned table, one row per trial.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "method:\t%s (%s framing)\n", r.Method, r.Framing)
	if r.Embed.Threshold != nil {
		fmt.Fprintf(tw, "threshold:\t%d\n", *r.Embed.Threshold)
	}
	fmt.Fprintf(tw, "image:\t%s\n", r.Shape)
	fmt.Fprintf(tw, "capacity:\t%s\n", humanize.Bytes(uint64(r.Capacity)))
	fmt.Fprintf(tw, "payload:\t%s\n", humanize.Bytes(uint64(r.PayloadBytes)))
	fmt.Fprintf(tw, "stego quality:\t%s\n", formatQuality(&r.StegoQuality))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "ATTACK\tPARAMS\tPSNR / SSIM\tBER\tSURVIVED\tDURATION")
	for _, trial := range r.Trials {
		result := fmt.Sprintf("%.4f\t%t", trial.BER, trial.Survived)
		if trial.Error != "" && trial.Quality == nil {
			result = "error: " + trial.Error + "\t-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			trial.Kind, formatParams(trial.Params), formatQuality(trial.Quality), result, trial.Duration)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "survival rate:\t%s%%\n", humanize.FtoaWithDigits(r.SurvivalRate*100, 1))
	return tw.Flush()
}

// WriteCSV writes one row per trial after a header row. PSNR and SSIM are empty when the attack failed, and an
// infinite PSNR is written as inf.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, trial := range r.Trials {
		var psnr, ssim string
		if trial.Quality != nil {
			psnr = strconv.FormatFloat(trial.Quality.PSNR, 'f', 4, 64)
			if math.IsInf(trial.Quality.PSNR, 1) {
				psnr = "inf"
			}
			ssim = strconv.FormatFloat(trial.Quality.SSIM, 'f', 6, 64)
		}
		row := []string{
			trial.Kind,
			formatParams(trial.Params),
			psnr,
			ssim,
			strconv.FormatFloat(trial.BER, 'f', 6, 64),
			strconv.FormatBool(trial.Survived),
			trial.Extracted,
			strconv.FormatInt(trial.Duration.Milliseconds(), 10),
			trial.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func survivalRate(trials []Trial) float64 {
	if len(trials) == 0 {
		return 0
	}
	var survived int
	for _, trial := range trials {
		if trial.Survived {
			survived++
		}
	}
	return float64(survived) / float64(len(trials))
}

func formatQuality(q *model.Quality) string {
	if q == nil {
		return "-"
	}
	psnr := "inf"
	if !math.IsInf(q.PSNR, 1) {
		psnr = humanize.FtoaWithDigits(q.PSNR, 2) + " dB"
	}
	return fmt.Sprintf("%s / %s", psnr, humanize.FtoaWithDigits(q.SSIM, 4))
}

func formatParams(params map[string]float64) string {
	if len(params) == 0 {
		return "defaults"
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, humanize.Ftoa(params[k])))
	}
	return strings.Join(parts, ",")
}
