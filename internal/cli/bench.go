package cli

import (
	"encoding/json"
	"fmt"
	"github.com/spf13/cobra"
	"stegbench/pkg/bench"
	"stegbench/pkg/config"
	"stegbench/pkg/imageio"
	"stegbench/pkg/stego"
)

func benchCommand(g *globalOpts) *cobra.Command {
	var (
		sourceImage string
		payload     string
		payloadFile string
		configFile  string
		asJSON      bool
		asCSV       bool
		embed       embedOpts
	)

	benchCmd := &cobra.Command{
		Use:     "bench",
		Example: "stegbench bench --image cover.png --payload 'hello world' --config bench.toml",
		Short:   "Embed once, run a sweep of attacks and report what survives",
		Long: `Embed once, run a sweep of attacks and report what survives.

Without --config the built-in sweep is used: jpeg at quality 90, 75 and 50, blur with kernel 3 and 5, crop to 90%
and 75%, and noise with sigma 5 and 10. The embedding flags are ignored when --config is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			benchConfig, err := loadBenchConfig(configFile, embed)
			if err != nil {
				return err
			}
			data, err := readPayload(payload, payloadFile)
			if err != nil {
				return err
			}
			cover, err := imageio.Load(sourceImage)
			if err != nil {
				return err
			}

			s := NewSpinner()
			s.Prefix = "Embedding payload "
			s.Start()
			report, err := bench.Run(cover, data, benchConfig,
				bench.WithEngineOptions(stego.WithSink(g.logger)),
				bench.WithProgress(func(done, total int, trial bench.Trial) {
					s.Lock()
					s.Prefix = fmt.Sprintf("Running attacks %d/%d ", done, total)
					s.Unlock()
					g.logger.Debug("Trial finished", "kind", trial.Kind, "survived", trial.Survived, "ber", trial.BER)
				}))
			s.Stop()
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}
			if asCSV {
				return report.WriteCSV(cmd.OutOrStdout())
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}

	benchCmd.Flags().StringVar(&sourceImage, "image", "", "Cover image")
	benchCmd.Flags().StringVar(&payload, "payload", "The quick brown fox jumps over the lazy dog", "Text to embed")
	benchCmd.Flags().StringVar(&payloadFile, "payload-file", "", "File whose content is embedded instead of --payload")
	benchCmd.Flags().StringVar(&configFile, "config", "", "TOML file describing the embedding and the attacks to run")
	benchCmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	benchCmd.Flags().BoolVar(&asCSV, "csv", false, "Print one CSV row per attack, for charting the sweep elsewhere")
	benchCmd.MarkFlagsMutuallyExclusive("json", "csv")
	embed.bind(benchCmd, false)

	MarkFlagsRequired(benchCmd, "image")

	return benchCmd
}

func loadBenchConfig(path string, embed embedOpts) (config.BenchConfig, error) {
	if path != "" {
		return config.LoadBenchConfig(path)
	}
	embedConfig, err := embed.toEmbedConfig()
	if err != nil {
		return config.BenchConfig{}, err
	}
	benchConfig := config.DefaultBenchConfig()
	benchConfig.Embed = embedConfig
	return benchConfig, nil
}
