package bootstrap

import (
	"arttoy-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	UpstreamModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
