package main

import (
	"context"
	"log/slog"
	"os"

	"fuelflow/config"
	"fuelflow/internal/delivery"
	"fuelflow/internal/delivery/http"
	"fuelflow/internal/delivery/http/middleware"
	"fuelflow/internal/delivery/http/router/handler"
	"fuelflow/internal/infra/cache"
	logs "fuelflow/internal/infra/log"
	"fuelflow/internal/infra/oracle"
	"fuelflow/internal/infra/persistence/firebase"
	"fuelflow/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			warmCaches,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.New,
		firebase.NewRecordStore,
		cache.NewDirectory,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			oracle.NewOpenAIOracle,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLookupService,
			impl.NewTransactionService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewChatHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmCaches fills every bucket at startup. A cold store is not fatal: the
// first search refreshes again, and refresh_memory can be asked for.
func warmCaches(ctx context.Context, dir *cache.Directory, logger *slog.Logger) {
	if err := dir.RefreshAll(ctx); err != nil {
		logger.Warn("cache warm-up incomplete", slog.Any("error", err))
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
