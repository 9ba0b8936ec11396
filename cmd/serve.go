package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naka-gawa/github-badges/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the badges over HTTP",
	Long: `Starts an HTTP server with one endpoint per badge:

  GET /api/stats?username=U[&theme=T]
  GET /api/langs?username=U[&theme=T]
  GET /api/contrib?username=U[&theme=T][&year=Y]
  GET /api/snake?username=U[&theme=T]

Themes are dark (default), light and simple. The port comes from PORT (default 3000).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		aggregator, err := newAggregator()
		if err != nil {
			return err
		}

		srv := server.New(aggregator, logger, cfg.RequestTimeout)
		if err := srv.Run(ctx, cfg.Addr()); err != nil {
			logger.Error("Server stopped with error", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
