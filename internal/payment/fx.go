package payment

import (
	"github.com/polisure/polisure/internal/config"
	"github.com/polisure/polisure/internal/payment/domain"
	"github.com/polisure/polisure/internal/payment/gateway"
	"github.com/polisure/polisure/internal/payment/repository"
	"github.com/polisure/polisure/internal/payment/service"
	"go.uber.org/fx"
)

func provideGateway(cfg config.Config) domain.Gateway {
	return gateway.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeAccountID)
}

var Module = fx.Module("payment.service",
	fx.Provide(provideGateway),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
