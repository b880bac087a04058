package cli

import (
	"github.com/spf13/cobra"
	"os"
	"stegbench/internal/logging"
	"stegbench/internal/server"
)

func ServeAppCommand(opts *globalOpts) *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to embed, extract and attack payloads over the web",
		Example: "stegbench serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			// the server logs JSON to stdout, next to the access log
			level, _ := logging.ParseLevel(opts.logLevel)
			return server.StartServer(port, logging.BuildLogger(os.Stdout, level))
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}
