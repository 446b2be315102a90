package components

import (
	"arttoy-storefront/internal/pkg/clock"
	"arttoy-storefront/internal/pkg/config"
	"arttoy-storefront/internal/usecase"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(source queries.CatalogSource, clk clock.Clock, cfg config.Config) queries.CatalogQueries {
			return queries.NewCatalogQueries(source, clk, cfg.Session.SnapshotCacheTTL)
		},
		queries.NewOrderQueries,
		func(source usecase.SessionSource, clk clock.Clock, cfg config.Config) usecase.SessionGate {
			return usecase.NewSessionGate(source, clk, cfg.Session.RoleCacheTTL)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewCatalogCommands,
	),
)
