package components

import (
	"arttoy-storefront/internal/infra/upstream"
	"arttoy-storefront/internal/usecase"
	"arttoy-storefront/internal/usecase/commands"
	"arttoy-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

// ClientModule binds the single upstream HTTP client to every port the
// use case layer consumes it through.
var ClientModule = fx.Module("client",
	fx.Provide(
		fx.Annotate(
			provideClient,
			fx.As(new(queries.CatalogSource)),
		),
		fx.Annotate(
			provideClient,
			fx.As(new(queries.OrderSource)),
		),
		fx.Annotate(
			provideClient,
			fx.As(new(usecase.SessionSource)),
		),
		fx.Annotate(
			provideClient,
			fx.As(new(commands.CatalogWriter)),
		),
		fx.Annotate(
			provideClient,
			fx.As(new(commands.OrderWriter)),
		),
	),
)

func provideClient(client *upstream.Client) *upstream.Client {
	return client
}
