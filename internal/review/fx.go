package review

import (
	"github.com/polisure/polisure/internal/review/repository"
	"github.com/polisure/polisure/internal/review/service"
	"go.uber.org/fx"
)

var Module = fx.Module("review.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
