package cli

import (
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"stegbench/internal/logging"
	"sync"
)

type globalOpts struct {
	logLevel      string
	cpuProfile    string
	memProfileDir string

	logger    *logging.Logger
	profilers *profilers
}

// RootCommand builds the stegbench command tree. Stop must be called once the command has run, also when it was
// interrupted, so profiles get written.
type RootCommand struct {
	*cobra.Command
	opts     *globalOpts
	stopOnce sync.Once
}

func NewRootCommand() *RootCommand {
	opts := &globalOpts{logger: logging.BuildLogger(os.Stderr, slog.LevelInfo)}

	rootCmd := &cobra.Command{
		Use:           "stegbench",
		Short:         "Embed payloads in images, attack them, and measure what survives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logging.BuildLogger(cmd.ErrOrStderr(), level)
			opts.profilers = &profilers{logger: opts.logger}

			if opts.cpuProfile != "" {
				if err = opts.profilers.startCPUProfiler(opts.cpuProfile); err != nil {
					return err
				}
			}
			if opts.memProfileDir != "" {
				opts.profilers.startMemoryProfiler(opts.memProfileDir)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level. Options are debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(
		embedCommand(opts),
		extractCommand(opts),
		capacityCommand(opts),
		attackCommand(opts),
		metricsCommand(opts),
		gradientCommand(opts),
		bitPlaneCommand(opts),
		benchCommand(opts),
		ServeAppCommand(opts),
	)
	return &RootCommand{Command: rootCmd, opts: opts}
}

func (r *RootCommand) Logger() *logging.Logger {
	return r.opts.logger
}

func (r *RootCommand) Stop() {
	r.stopOnce.Do(func() {
		if r.opts.profilers != nil {
			r.opts.profilers.stop()
		}
	})
}
