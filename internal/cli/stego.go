package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"math"
	"os"
	"stegbench/pkg/imageio"
	"stegbench/pkg/metrics"
	"stegbench/pkg/stego"
)

type embedCmdOpts struct {
	sourceImage string
	outputImage string
	payload     string
	payloadFile string
	config      embedOpts
}

func embedCommand(g *globalOpts) *cobra.Command {
	opts := embedCmdOpts{}

	embedCmd := &cobra.Command{
		Use:     "embed",
		Example: "stegbench embed --image cover.png --output stego.png --payload 'meet at dawn' --method adaptive --threshold 30",
		Short:   "Embed a payload into an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.payload == "" && opts.payloadFile == "" {
				return fmt.Errorf("one of --payload or --payload-file is required")
			}
			return EmbedPayload(cmd, g, opts)
		},
	}

	embedCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image to embed the payload into. It is never modified")
	embedCmd.Flags().StringVar(&opts.outputImage, "output", "", "Path of the stego image to write. Must be .png or .bmp, lossy formats destroy the payload")
	embedCmd.Flags().StringVar(&opts.payload, "payload", "", "Text to embed")
	embedCmd.Flags().StringVar(&opts.payloadFile, "payload-file", "", "File whose content is embedded instead of --payload")
	embedCmd.MarkFlagsMutuallyExclusive("payload", "payload-file")
	opts.config.bind(embedCmd, true)

	MarkFlagsRequired(embedCmd, "image", "output")

	return embedCmd
}

func EmbedPayload(cmd *cobra.Command, g *globalOpts, opts embedCmdOpts) error {
	embedConfig, err := opts.config.toEmbedConfig()
	if err != nil {
		return err
	}
	outputFormat, err := imageio.FormatFromPath(opts.outputImage)
	if err != nil {
		return err
	}
	if outputFormat == imageio.FormatJPEG {
		return fmt.Errorf("refusing to write a stego image as jpeg, the payload would not survive")
	}
	payload, err := readPayload(opts.payload, opts.payloadFile)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Reading cover image from disk "
	s.Start()
	defer s.Stop()

	cover, err := imageio.Load(opts.sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = "Embedding payload "
	engine, err := stego.NewEngine(embedConfig, stego.WithSink(g.logger))
	if err != nil {
		return err
	}
	stegoImage, stats, err := engine.Embed(cover, payload)
	if err != nil {
		return err
	}

	s.Prefix = "Writing stego image "
	if err = imageio.Save(opts.outputImage, stegoImage, encodeOptions(embedConfig)); err != nil {
		return err
	}
	s.Stop()

	g.logger.Debug("Embed stats", "setup", stats.Setup.String(), "data_embedding", stats.DataEmbedding.String())
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Embedded %s into %s (%d bits)\n", humanize.Bytes(uint64(len(payload))), opts.outputImage, stats.BitsEmbedded)
	if stats.Threshold != nil {
		fmt.Fprintf(out, "Threshold used: %d, extract with --threshold %d\n", *stats.Threshold, *stats.Threshold)
	}
	if psnr, err := metrics.PSNR(cover, stegoImage); err == nil && !math.IsInf(psnr, 1) {
		fmt.Fprintf(out, "PSNR: %.2f dB\n", psnr)
	}
	return nil
}

func extractCommand(g *globalOpts) *cobra.Command {
	var (
		sourceImage string
		outputFile  string
		config      embedOpts
	)

	extractCmd := &cobra.Command{
		Use:     "extract",
		Example: "stegbench extract --image stego.png --method adaptive --threshold 30",
		Short:   "Extract a payload from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			embedConfig, err := config.toEmbedConfig()
			if err != nil {
				return err
			}
			stegoImage, err := imageio.Load(sourceImage)
			if err != nil {
				return err
			}
			engine, err := stego.NewEngine(embedConfig, stego.WithSink(g.logger))
			if err != nil {
				return err
			}
			payload, err := engine.Extract(stegoImage)
			if err != nil {
				return err
			}

			if outputFile != "" {
				return os.WriteFile(outputFile, payload, 0o644)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), stego.TextFromPayload(payload))
			return err
		},
	}

	extractCmd.Flags().StringVar(&sourceImage, "image", "", "Stego image to extract the payload from")
	extractCmd.Flags().StringVar(&outputFile, "output-file", "", "Write the raw payload to this file instead of printing it as text")
	config.bind(extractCmd, false)

	MarkFlagsRequired(extractCmd, "image")

	return extractCmd
}

func capacityCommand(g *globalOpts) *cobra.Command {
	var (
		sourceImage string
		config      embedOpts
	)

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Example: "stegbench capacity --image cover.png --method adaptive",
		Short:   "Report how many bytes an image can carry, including the end marker",
		RunE: func(cmd *cobra.Command, args []string) error {
			embedConfig, err := config.toEmbedConfig()
			if err != nil {
				return err
			}
			img, err := imageio.Load(sourceImage)
			if err != nil {
				return err
			}
			engine, err := stego.NewEngine(embedConfig, stego.WithSink(g.logger))
			if err != nil {
				return err
			}
			capacity, err := engine.Capacity(img)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d bytes (%s)\n", capacity, humanize.Bytes(uint64(capacity)))
			return err
		},
	}

	capacityCmd.Flags().StringVar(&sourceImage, "image", "", "Image to measure")
	config.bind(capacityCmd, false)

	MarkFlagsRequired(capacityCmd, "image")

	return capacityCmd
}
