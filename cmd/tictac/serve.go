package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorgonia/tictac/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games against the engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, logger, err := buildEngine()
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")

		h := server.NewServer(e, logger)
		srv := &http.Server{
			Addr:              addr,
			Handler:           h.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		}

		done := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", addr).Msg("HTTP server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				done <- err
			}
			close(done)
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-done:
			return err
		case <-sig:
			logger.Info().Msg("shutdown signal received")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
		<-done
		logger.Info().Msg("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "HTTP listen address")
}
