// Package main provides the CLI entry point for timeline-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/timeline-go/pkg/timeline"
)

func main() {
	if err := newRootCmd(afero.NewOsFs(), viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs, v *viper.Viper) *cobra.Command {
	v.SetFs(fs)

	rootCmd := &cobra.Command{
		Use:   "timeline [workbook.xlsx]",
		Short: "Build a weekly photo timeline from a workbook",
		Long: `timeline reads the "Pre" and "Post" sheets of a workbook (week number,
start date, end date, comment), attaches the photos found in the W<n>
directory of each week and writes the result as JSON.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fs, v)
		},
	}

	rootCmd.SilenceUsage = true

	flags := rootCmd.Flags()
	flags.String("config", "", "config file (default: ./timeline.yaml)")
	flags.StringP("output", "o", timeline.DefaultOutput, "Output JSON file")
	flags.String("pre-sheet", "Pre", "Sheet holding the pre weeks")
	flags.String("post-sheet", "Post", "Sheet holding the post weeks")
	flags.String("pre-dir", timeline.DefaultPreDir, "Photo directory of the pre weeks")
	flags.String("post-dir", timeline.DefaultPostDir, "Photo directory of the post weeks")
	flags.Bool("compact", false, "Write JSON without indentation")
	flags.BoolP("verbose", "v", false, "Enable debug diagnostics")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, fs afero.Fs, v *viper.Viper) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))
	defer func() { _ = logger.Sync() }()

	opts := optionsFromConfig(v)
	if len(args) == 1 {
		opts.WorkbookPath = args[0]
	}

	doc, err := timeline.Run(fs, opts, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d pre weeks and %d post weeks.\n",
		opts.OutputPath, len(doc.Pre), len(doc.Post))
	return nil
}
