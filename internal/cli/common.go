package cli

import (
	"fmt"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"image/png"
	"os"
	"stegbench/pkg/config"
	"stegbench/pkg/imageio"
	"stegbench/pkg/stego"
	"time"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
}

// embedOpts holds the flags selecting and tuning an embedding engine.
type embedOpts struct {
	method         string
	threshold      int
	framing        string
	pngCompression string
}

func (o *embedOpts) bind(cmd *cobra.Command, withOutput bool) {
	cmd.Flags().StringVar(&o.method, "method", string(config.MethodLSB), "Embedding method. Options are lsb, adaptive")
	cmd.Flags().IntVar(&o.threshold, "threshold", config.DefaultThreshold, "Gradient threshold for the adaptive method, 0-255. Must match at extraction the threshold reported by embed")
	cmd.Flags().StringVar(&o.framing, "framing", string(config.FramingTerminator), "How the end of the payload is marked. Options are terminator, length-prefix. Payloads with zero bytes need length-prefix")
	if withOutput {
		cmd.Flags().StringVar(&o.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	}
}

func (o *embedOpts) toEmbedConfig() (config.EmbedConfig, error) {
	c := config.EmbedConfig{
		Method:    config.Method(o.method),
		Threshold: o.threshold,
		Framing:   config.Framing(o.framing),
	}
	if o.pngCompression != "" {
		mappedCompression, found := pngCompressionMapping[o.pngCompression]
		if !found {
			return c, fmt.Errorf("unknown png compression %q", o.pngCompression)
		}
		c.PngCompressionLevel = mappedCompression
	}
	c.PopulateUnsetConfigVars()
	return c, c.Validate()
}

func encodeOptions(c config.EmbedConfig) imageio.EncodeOptions {
	return imageio.EncodeOptions{PngCompressionLevel: c.PngCompressionLevel}
}

// readPayload returns the content of the payload file when one is given. Inline text is mapped one byte per
// character, so Latin-1 text reads back unchanged from extract.
func readPayload(payload, payloadFile string) ([]byte, error) {
	if payloadFile != "" {
		return os.ReadFile(payloadFile)
	}
	return stego.PayloadFromText(payload), nil
}
