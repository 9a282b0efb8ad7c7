package notification

import (
	"go.uber.org/fx"

	delivery "github.com/homeware/paynotify/internal/app/service/delivery_log"
)

// Module exposes the notification pipeline via Fx.
var Module = fx.Options(
	fx.Provide(NewGormStore),
	fx.Provide(func(dl *delivery.Service) DeliveryLogger { return dl }),
	fx.Provide(NewService),
)
