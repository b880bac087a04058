package cli

import (
	"encoding/json"
	"fmt"
	"github.com/spf13/cobra"
	"math"
	"stegbench/pkg/attack"
	"stegbench/pkg/imageio"
	"stegbench/pkg/metrics"
	"stegbench/pkg/model"
	"strconv"
	"strings"
)

func attackCommand(g *globalOpts) *cobra.Command {
	var (
		sourceImage string
		outputImage string
		kind        string
		rawParams   map[string]string
	)

	attackCmd := &cobra.Command{
		Use:     "attack",
		Example: "stegbench attack --image stego.png --output attacked.png --kind jpeg --param quality=60",
		Short:   "Run an attack against an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}
			img, err := imageio.Load(sourceImage)
			if err != nil {
				return err
			}
			attacked, err := attack.Apply(img, kind, params)
			if err != nil {
				return err
			}
			g.logger.Debug("Attack applied", "kind", kind, "params", params)
			return imageio.Save(outputImage, attacked, imageio.EncodeOptions{})
		},
	}

	attackCmd.Flags().StringVar(&sourceImage, "image", "", "Image to attack")
	attackCmd.Flags().StringVar(&outputImage, "output", "", "Path of the attacked image to write")
	attackCmd.Flags().StringVar(&kind, "kind", "", fmt.Sprintf("Attack to run. Options are %s", strings.Join(attack.Kinds(), ", ")))
	attackCmd.Flags().StringToStringVar(&rawParams, "param", nil, "Attack parameter as key=value, can be repeated. Keys are quality, kernel_size, sigma, crop_ratio, mean, seed")

	MarkFlagsRequired(attackCmd, "image", "output", "kind")

	return attackCmd
}

func parseParams(raw map[string]string) (attack.Params, error) {
	params := make(attack.Params, len(raw))
	for k, v := range raw {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%s is not a number", attack.ErrInvalidParameter, k, v)
		}
		params[k] = parsed
	}
	return params, nil
}

type metricsResult struct {
	Quality *model.Quality `json:"quality,omitempty"`
	BERText *float64       `json:"ber_text,omitempty"`
}

func metricsCommand(g *globalOpts) *cobra.Command {
	var (
		original, modified          string
		textOriginal, textExtracted string
		windowSize                  int
		sigma                       float64
		asJSON                      bool
	)

	metricsCmd := &cobra.Command{
		Use:     "metrics",
		Example: "stegbench metrics --original cover.png --modified stego.png --text-original secret --text-extracted secrat",
		Short:   "Measure image quality and text error rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			compareImages := original != "" || modified != ""
			compareTexts := cmd.Flags().Changed("text-original") || cmd.Flags().Changed("text-extracted")
			if !compareImages && !compareTexts {
				return fmt.Errorf("supply --original and --modified, --text-original and --text-extracted, or both")
			}

			var result metricsResult
			if compareImages {
				a, err := imageio.Load(original)
				if err != nil {
					return err
				}
				b, err := imageio.Load(modified)
				if err != nil {
					return err
				}
				psnr, err := metrics.PSNR(a, b)
				if err != nil {
					return err
				}
				ssim, err := metrics.SSIMWithWindow(a, b, windowSize, sigma)
				if err != nil {
					return err
				}
				result.Quality = &model.Quality{PSNR: psnr, SSIM: ssim}
			}
			if compareTexts {
				ber := metrics.BERText(textOriginal, textExtracted)
				result.BERText = &ber
			}
			g.logger.Debug("Metrics computed", "images", compareImages, "texts", compareTexts)

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(result)
			}
			if result.Quality != nil {
				psnr := fmt.Sprintf("%.2f dB", result.Quality.PSNR)
				if math.IsInf(result.Quality.PSNR, 1) {
					psnr = "inf (identical)"
				}
				fmt.Fprintf(out, "PSNR: %s\nSSIM: %.4f\n", psnr, result.Quality.SSIM)
			}
			if result.BERText != nil {
				fmt.Fprintf(out, "BER:  %.4f\n", *result.BERText)
			}
			return nil
		},
	}

	metricsCmd.Flags().StringVar(&original, "original", "", "Reference image")
	metricsCmd.Flags().StringVar(&modified, "modified", "", "Image compared against the reference")
	metricsCmd.Flags().StringVar(&textOriginal, "text-original", "", "Embedded text")
	metricsCmd.Flags().StringVar(&textExtracted, "text-extracted", "", "Extracted text")
	metricsCmd.Flags().IntVar(&windowSize, "ssim-window", metrics.DefaultWindowSize, "SSIM Gaussian window size, odd")
	metricsCmd.Flags().Float64Var(&sigma, "ssim-sigma", metrics.DefaultSigma, "SSIM Gaussian window sigma")
	metricsCmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	metricsCmd.MarkFlagsRequiredTogether("original", "modified")

	return metricsCmd
}
