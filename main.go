package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/HugeFrog24/transcripto/config"
	"github.com/HugeFrog24/transcripto/utils"
)

var configPath string

func main() {
	// Values in .env win over variables already exported in the shell.
	if err := godotenv.Overload(); err != nil {
		log.Println("No .env file found, falling back to environment variables")
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "transcripto",
		Short: "Transcribe and summarize uploaded audio and video clips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), "")
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("TRANSCRIPTO_CONFIG"), "path to an optional TOML config file")

	root.AddCommand(newServeCmd(), newTranscribeCmd())
	return root
}

// newProcessor wires the OpenAI-backed collaborators unless mock mode is on.
func newProcessor(cfg *config.Config) *utils.UploadProcessor {
	processor := &utils.UploadProcessor{
		UseMock: cfg.UseMock,
		TempDir: cfg.TempDir,
	}
	if !cfg.UseMock {
		client := utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		processor.Transcriber = utils.NewWhisperTranscriber(client, cfg.WhisperModel)
		processor.Summarizer = utils.NewChatSummarizer(client, cfg.SummaryModel)
	}
	return processor
}
