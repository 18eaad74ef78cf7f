package newsletter

import (
	"github.com/polisure/polisure/internal/newsletter/repository"
	"github.com/polisure/polisure/internal/newsletter/service"
	"go.uber.org/fx"
)

var Module = fx.Module("newsletter.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
