package controllers_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPackageController),
	fx.Provide(controllers.NewDriverController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewBlogController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewBackupController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewRecommendController),
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewDashboardController))
