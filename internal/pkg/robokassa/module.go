package robokassa

import (
	"go.uber.org/fx"

	"github.com/polkiloo/webstudio/internal/config"
)

// Module provides the payment gateway client via fx.
var Module = fx.Provide(newGateway)

type gatewayParams struct {
	fx.In

	Config *config.Config
}

func newGateway(p gatewayParams) (*Gateway, error) {
	return NewGateway(Credentials{
		MerchantLogin: p.Config.MerchantLogin,
		Password1:     p.Config.Password1,
		Password2:     p.Config.Password2,
		TestMode:      p.Config.TestMode,
	}, p.Config.RobokassaPaymentURL)
}
