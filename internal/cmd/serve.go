package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/saaslanding/internal/app"
	"github.com/dmitrymomot/saaslanding/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Load configuration, open the lead storage (running postgres migrations) and serve until SIGINT or SIGTERM.`,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg.App)
	logger.SetAsDefault(log)

	ctx := cmd.Context()
	storage, err := app.OpenStorage(ctx, cfg, log, true)
	if err != nil {
		log.ErrorContext(ctx, "open lead storage", logger.Error(err), logger.Storage(cfg.App.Storage))
		return err
	}
	defer storage.Close()

	a, err := app.New(cfg, storage, log)
	if err != nil {
		return err
	}
	return a.Serve(ctx)
}
