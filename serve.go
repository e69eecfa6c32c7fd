package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/HugeFrog24/transcripto/config"
	"github.com/HugeFrog24/transcripto/server"
	"github.com/HugeFrog24/transcripto/utils"
)

const (
	shutdownTimeout = 10 * time.Second

	// Uploads are deleted when their request ends; anything this old was
	// abandoned by a process that died mid-request.
	staleUploadAge = time.Hour
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP upload server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides LISTEN_ADDR")
	return cmd
}

func runServe(ctx context.Context, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return err
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}

	tp, err := installTracing(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("Failed to flush traces: %v", err)
		}
	}()

	// Clean up uploads a previous run left behind
	utils.SweepTempDir(cfg.TempDir, staleUploadAge)

	srv := server.New(cfg, newProcessor(cfg))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s (mock=%v, allow_all_cors=%v)", cfg.ListenAddr, cfg.UseMock, cfg.AllowAllCORS)
		errCh <- srv.Listen(cfg.ListenAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("Received interrupt signal, shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
