package claim

import (
	"github.com/polisure/polisure/internal/claim/repository"
	"github.com/polisure/polisure/internal/claim/service"
	"go.uber.org/fx"
)

var Module = fx.Module("claim.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
