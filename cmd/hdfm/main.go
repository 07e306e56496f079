package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hdfm/internal/app"
)

func main() {
	exitCode := 0

	rootCmd := &cobra.Command{
		Use:   "hdfm [OPTIONS] frequency",
		Short: "HD radio front end for the nrsc5 decoder",
		Long: `HD radio front end for the nrsc5 decoder.

Validates tuning parameters (frequency, subchannel, PPM correction, log
level, save directory, album art) and launches nrsc5 configured with
them. The frequency rides last, in MHz, between 88.0 and 108.0.

Example usage:
  hdfm -c 2 -p 5 95.5`,
		// The option grammar (trailing positional frequency, flag
		// arguments that may themselves be flag-shaped) is not
		// expressible in pflag, so internal/ui scans the raw tokens.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := app.LoadConfig()
			application := app.NewApplication(config)
			exitCode = application.Run(append([]string{cmd.Name()}, args...))
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
