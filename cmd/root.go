package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/greboid/wfl/pkg/report"
	"github.com/greboid/wfl/pkg/util"
	"github.com/greboid/wfl/pkg/workflow"
	"github.com/spf13/cobra"
)

var (
	debugMode   bool
	workflowDir string
)

var rootCmd = &cobra.Command{
	Use:           "wfl",
	Short:         "List GitHub Actions workflows with their triggers and jobs",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
	RunE: runList,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&workflowDir, "dir", "d", workflow.DefaultDir, "Directory containing workflow files")
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	summaries, err := workflow.Collect(util.DefaultFS(), workflowDir, out)
	if err != nil {
		return fmt.Errorf("listing workflows: %w", err)
	}

	workflow.Sort(summaries)

	return report.Markdown(out, summaries)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
