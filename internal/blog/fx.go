package blog

import (
	"github.com/polisure/polisure/internal/blog/repository"
	"github.com/polisure/polisure/internal/blog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("blog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
