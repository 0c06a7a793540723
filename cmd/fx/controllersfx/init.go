package controllersfx

import (
	"go.uber.org/fx"
	"wayfare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewDetailsController),
	fx.Provide(controllers.NewHealthController))
