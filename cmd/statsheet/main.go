// Package main provides the CLI entry point for statsheet.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"statsheet/pkg/statsheet"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statsheet <csv-file> [<csv-file>...]",
		Short: "Render parse-timing stats CSVs into a formatted Excel workbook",
		Long: `statsheet reads per-file parse-timing statistics from one or more CSV
files and writes a workbook with one colored, charted worksheet per input
plus a cross-file summary sheet.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
				return statsheet.ErrNoInput
			}
			return nil
		},
		RunE: run,
	}

	cmd.Flags().StringP("output", "o", statsheet.DefaultOutput, "output workbook path")

	viper.SetEnvPrefix("STATSHEET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("output", statsheet.DefaultOutput)
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	opts := statsheet.Options{
		Output: viper.GetString("output"),
	}
	return statsheet.Build(ctx, args, opts)
}
