package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/animalspotter/animalspotter/devmode"
)

const shutdownTimeout = 10 * time.Second

func newDevServerCmd(defaultAddr string) *cobra.Command {
	var addr, prefix string

	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Serve an in-memory AnimalSpotter API for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			log.Info().
				Str("addr", ln.Addr().String()).
				Str("prefix", prefix).
				Msg("dev server listening; not for production use")
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s%s\n", ln.Addr(), prefix)

			return serveDev(ctx, ln, newDevHandler(prefix))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "Listen address")
	cmd.Flags().StringVar(&prefix, "prefix", "/api", "Path prefix for the API routes")

	return cmd
}

// newDevHandler serves the dev-mode API plus Prometheus metrics.
func newDevHandler(prefix string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", devmode.NewServer(devmode.WithPathPrefix(prefix)))
	return mux
}

// serveDev serves h on ln until ctx ends, then shuts down gracefully.
func serveDev(ctx context.Context, ln net.Listener, h http.Handler) error {
	server := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down dev server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Dev server forced to shutdown")
			return err
		}
		log.Info().Msg("Dev server exited")
		return nil
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		log.Error().Err(err).Msg("dev server failed")
		return err
	}
}
