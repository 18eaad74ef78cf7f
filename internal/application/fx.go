package application

import (
	"github.com/polisure/polisure/internal/application/repository"
	"github.com/polisure/polisure/internal/application/service"
	"go.uber.org/fx"
)

var Module = fx.Module("application.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
