package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HugeFrog24/transcripto/config"
)

func newTranscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe <file>",
		Short: "Transcribe and summarize a local file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			result, err := newProcessor(cfg).ProcessUpload(cmd.Context(), filepath.Base(args[0]), file)
			if err != nil {
				return fmt.Errorf("failed to transcribe %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Transcription:", result.Transcript)
			if result.Summary != nil {
				fmt.Fprintln(out, "Summary:", *result.Summary)
			}
			if result.SummaryError != nil {
				fmt.Fprintln(out, "Summary error:", *result.SummaryError)
			}
			return nil
		},
	}
}
