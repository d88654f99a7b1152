package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/typeline/pkg/adapters/httpstream"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve script playback as server-sent events",
	Long:  `Starts an HTTP server. POST a YAML script to /play and receive every visual mutation as a server-sent event, paced in real time. Playback counters are exposed on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		addr, _ := cmd.Flags().GetString("addr")

		srv := &http.Server{
			Addr:    addr,
			Handler: httpstream.NewHandler(httpstream.WithLogger(logger)),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", addr)
			errCh <- srv.ListenAndServe()
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sig:
			logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
