package bootstrap

import (
	"log/slog"

	"tripflow/internal/infra/avinode"
	"tripflow/internal/pkg/config"
	"tripflow/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewMarketplaceClient,
			fx.As(new(usecase.MarketplaceGateway)),
		),
	),
)

func NewMarketplaceClient(cfg config.Config, logger *slog.Logger) *avinode.Client {
	return avinode.New(cfg.Avinode, logger)
}
