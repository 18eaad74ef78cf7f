package user

import (
	"github.com/polisure/polisure/internal/user/repository"
	"github.com/polisure/polisure/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
