package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"ratesmart/internal/delivery/worker"
	"ratesmart/internal/delivery/worker/handler"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume review events pushed by Pub/Sub",
	RunE:  runWorker,
}

func runWorker(_ *cobra.Command, _ []string) error {
	app := fx.New(
		injectInfra(),
		fx.Provide(
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	)
	app.Run()

	return app.Err()
}
