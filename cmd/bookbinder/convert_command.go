package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookbinder/internal/assembly"
)

// orchestratorOptions lets tests swap the encoder, prober and dependency
// check.
var orchestratorOptions []assembly.Option

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "convert <input-folder>",
		Short: "Convert a folder of mp3 segments into a single m4b audiobook",
		Long: `Convert concatenates every mp3 file directly inside the input folder, in
file-name order, into one AAC .m4b named after the book title.

Chapters come from <input-folder>/metadata/metadata.json when present;
otherwise a single "Introduction" chapter is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			logger, err := ctx.logger(out)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			opts := []assembly.Option{
				assembly.WithOutput(out),
				assembly.WithLogger(logger),
			}
			opts = append(opts, orchestratorOptions...)
			outcome := assembly.New(cfg, opts...).Run(cmd.Context(), assembly.Request{
				InputDir:  args[0],
				OutputDir: outputDir,
				DryRun:    dryRun,
			})
			if !outcome.Success() {
				return outcome.Err
			}
			if dryRun && outcome.Plan != nil {
				printPlan(out, outcome.Plan)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output folder (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show segments and chapters without encoding")
	return cmd
}
