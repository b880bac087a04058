package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"stegbench/pkg/imageio"
	"stegbench/pkg/stego"
)

func gradientCommand(g *globalOpts) *cobra.Command {
	var (
		sourceImage string
		outputImage string
		maskOutput  string
		threshold   int
	)

	gradientCmd := &cobra.Command{
		Use:     "gradient",
		Example: "stegbench gradient --image cover.png --output gradient.png --mask-output mask.png --threshold 30",
		Short:   "Render the normalized Sobel gradient of an image, and optionally the embedding mask",
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < 0 || threshold > stego.MaxThreshold {
				return fmt.Errorf("%w, got %d", stego.ErrInvalidThreshold, threshold)
			}
			img, err := imageio.Load(sourceImage)
			if err != nil {
				return err
			}

			gradient := stego.Gradient(img)
			if err = imageio.Save(outputImage, gradient, imageio.EncodeOptions{}); err != nil {
				return err
			}
			if maskOutput == "" {
				return nil
			}

			mask := stego.EmbeddingMask(gradient, threshold)
			g.logger.Debug("Embedding mask computed", "threshold", threshold, "selected_pixels", mask.Count())
			if err = imageio.Save(maskOutput, mask.Raster(), imageio.EncodeOptions{}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d of %d pixels are above threshold %d\n", mask.Count(), img.Pixels(), threshold)
			return err
		},
	}

	gradientCmd.Flags().StringVar(&sourceImage, "image", "", "Image to analyze")
	gradientCmd.Flags().StringVar(&outputImage, "output", "", "Path of the gradient image to write")
	gradientCmd.Flags().StringVar(&maskOutput, "mask-output", "", "Path of the embedding mask image to write")
	gradientCmd.Flags().IntVar(&threshold, "threshold", stego.DefaultThreshold, "Gradient threshold for the mask, 0-255")

	MarkFlagsRequired(gradientCmd, "image", "output")

	return gradientCmd
}

func bitPlaneCommand(g *globalOpts) *cobra.Command {
	var (
		sourceImage string
		outputImage string
		bit         int
	)

	bitPlaneCmd := &cobra.Command{
		Use:     "bitplane",
		Example: "stegbench bitplane --image stego.png --output plane0.png --bit 0",
		Short:   "Render one bit plane of the grayscale image, where LSB embedding shows up as noise",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imageio.Load(sourceImage)
			if err != nil {
				return err
			}
			plane, err := stego.BitPlane(img, bit)
			if err != nil {
				return err
			}
			g.logger.Debug("Bit plane extracted", "bit", bit)
			return imageio.Save(outputImage, plane, imageio.EncodeOptions{})
		},
	}

	bitPlaneCmd.Flags().StringVar(&sourceImage, "image", "", "Image to analyze")
	bitPlaneCmd.Flags().StringVar(&outputImage, "output", "", "Path of the bit plane image to write")
	bitPlaneCmd.Flags().IntVar(&bit, "bit", 0, "Bit position, 0 is the least significant")

	MarkFlagsRequired(bitPlaneCmd, "image", "output")

	return bitPlaneCmd
}
