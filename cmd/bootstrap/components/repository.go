package components

import (
	repo_impl "tripflow/internal/infra/repository"
	"tripflow/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewTripSessionRepository,
			fx.As(new(usecase.TripSessionRepository)),
		),
	),
)
