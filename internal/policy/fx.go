package policy

import (
	"github.com/polisure/polisure/internal/policy/repository"
	"github.com/polisure/polisure/internal/policy/service"
	"go.uber.org/fx"
)

var Module = fx.Module("policy.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
