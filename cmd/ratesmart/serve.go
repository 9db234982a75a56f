package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"ratesmart/config"
	"ratesmart/internal/delivery"
	"ratesmart/internal/delivery/api"
	apimiddleware "ratesmart/internal/delivery/api/middleware"
	"ratesmart/internal/delivery/api/router/handler"
	"ratesmart/internal/delivery/web"
	"ratesmart/internal/delivery/web/apiclient"
	"ratesmart/internal/infra/analysis"
	"ratesmart/internal/infra/auth"
	logs "ratesmart/internal/infra/log"
	"ratesmart/internal/infra/persistence/database"
	"ratesmart/internal/infra/pubsub"
	"ratesmart/internal/infra/qrcode"
	"ratesmart/internal/infra/session"
	"ratesmart/internal/usecase/impl"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST api and the web front-end",
	RunE:  runServe,
}

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func runServe(_ *cobra.Command, _ []string) error {
	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectWeb(),
		injectDelivery(),
		fx.Invoke(
			func(*session.Sweeper) {},
			startServer,
		),
	)
	app.Run()

	return app.Err()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewBusinessRepository,
			database.NewProductRepository,
			database.NewReviewRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasherFromConfig,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			analysis.NewReviewAnalyzer,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBusinessService,
			impl.NewProductService,
			impl.NewReviewService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBusinessHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectWeb() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStoreFromConfig,
			session.NewSweeper,
			fx.Annotate(
				apiclient.NewFromConfig,
				fx.As(new(web.API)),
			),
			web.NewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				web.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer runs every delivery once the app has started. A delivery that
// fails to serve shuts the whole app down.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
							os.Exit(1)
						}
					}
				}()
			}

			return nil
		},
	})
}
