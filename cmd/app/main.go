package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/activity_fx"
	"voyago/cmd/fx/ai_fx"
	"voyago/cmd/fx/auth_fx"
	"voyago/cmd/fx/backup_fx"
	"voyago/cmd/fx/blog_fx"
	"voyago/cmd/fx/booking_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/dashboard_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/driver_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/mail_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/package_fx"
	"voyago/cmd/fx/recommend_fx"
	"voyago/cmd/fx/settings_fx"
	"voyago/cmd/fx/store_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		store_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		ai_fx.Module,

		auth_fx.Module,
		package_fx.Module,
		driver_fx.Module,
		booking_fx.Module,
		blog_fx.Module,
		settings_fx.Module,
		activity_fx.Module,
		backup_fx.Module,
		itinerary_fx.Module,
		recommend_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	packageController *controllers.PackageController,
	driverController *controllers.DriverController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	settingsController *controllers.SettingsController,
	activityController *controllers.ActivityController,
	backupController *controllers.BackupController,
	itineraryController *controllers.ItineraryController,
	recommendController *controllers.RecommendController,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	registerPublicRoutes(r, packageController, blogController, bookingController,
		itineraryController, recommendController, authController, driverController)
	registerAdminRoutes(r, packageController, driverController, bookingController,
		blogController, settingsController, activityController, backupController,
		itineraryController, recommendController, authController, dashboardController)

	return r
}

func registerPublicRoutes(r *gin.Engine,
	packageController *controllers.PackageController,
	blogController *controllers.BlogController,
	bookingController *controllers.BookingController,
	itineraryController *controllers.ItineraryController,
	recommendController *controllers.RecommendController,
	authController *controllers.AuthController,
	driverController *controllers.DriverController) {

	packages := r.Group("/packages")
	packages.GET("", packageController.ListPackages)
	packages.GET("/slug/:slug", packageController.GetPackageBySlug)
	packages.GET("/:id", packageController.GetPackage)
	packages.POST("/suggest", recommendController.SuggestPackages)

	drivers := r.Group("/drivers")
	drivers.GET("", driverController.ListDrivers)
	drivers.GET("/:id", driverController.GetDriver)

	blog := r.Group("/blog")
	blog.GET("", blogController.ListPublishedPosts)
	blog.GET("/:slug", blogController.GetPublishedPost)

	r.POST("/bookings", bookingController.CreateBooking)
	r.POST("/itinerary/generate", itineraryController.GenerateItinerary)

	auth := r.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/forgot-password", authController.RequestPasswordReset)
	auth.POST("/reset-password", authController.ConfirmPasswordReset)
}

func registerAdminRoutes(r *gin.Engine,
	packageController *controllers.PackageController,
	driverController *controllers.DriverController,
	bookingController *controllers.BookingController,
	blogController *controllers.BlogController,
	settingsController *controllers.SettingsController,
	activityController *controllers.ActivityController,
	backupController *controllers.BackupController,
	itineraryController *controllers.ItineraryController,
	recommendController *controllers.RecommendController,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController) {

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin"))

	admin.GET("/dashboard", dashboardController.GetDashboard)

	admin.POST("/packages", packageController.CreatePackage)
	admin.PUT("/packages/:id", packageController.UpdatePackage)
	admin.DELETE("/packages/:id", packageController.DeletePackage)

	admin.POST("/drivers", driverController.CreateDriver)
	admin.PUT("/drivers/:id", driverController.UpdateDriver)
	admin.PATCH("/drivers/:id/status", driverController.UpdateDriverStatus)
	admin.DELETE("/drivers/:id", driverController.DeleteDriver)

	admin.GET("/bookings", bookingController.ListBookings)
	admin.GET("/bookings/:id", bookingController.GetBooking)
	admin.PATCH("/bookings/:id/status", bookingController.UpdateBookingStatus)
	admin.PATCH("/bookings/:id/paid", bookingController.MarkBookingPaid)
	admin.DELETE("/bookings/:id", bookingController.DeleteBooking)

	admin.GET("/blog", blogController.ListAllPosts)
	admin.GET("/blog/:id", blogController.GetPost)
	admin.POST("/blog", blogController.CreatePost)
	admin.PUT("/blog/:id", blogController.UpdatePost)
	admin.DELETE("/blog/:id", blogController.DeletePost)

	admin.GET("/settings", settingsController.GetSettings)
	admin.PUT("/settings/company", settingsController.SaveCompanyProfile)
	admin.PUT("/settings/email", settingsController.SaveEmailSettings)
	admin.PUT("/settings/ai", settingsController.SaveAISettings)
	admin.PUT("/settings/seo", settingsController.SaveSeoSettings)
	admin.PUT("/settings/pages", settingsController.SavePageSettings)

	admin.GET("/activity", activityController.ListActivity)
	admin.POST("/activity/:id/revert", activityController.RevertActivity)

	admin.GET("/backup/export", backupController.ExportSnapshot)
	admin.POST("/backup/import", backupController.ImportSnapshot)
	admin.POST("/backup/archive", backupController.ArchiveSnapshot)
	admin.GET("/backup/archives", backupController.ListArchives)
	admin.POST("/backup/restore", backupController.RestoreLatestArchive)

	admin.POST("/ai/enrich", itineraryController.EnrichPackage)
	admin.POST("/ai/blog-faq", itineraryController.GenerateBlogFAQ)
	admin.POST("/ai/reindex", recommendController.ReindexPackages)

	admin.POST("/auth/change-password", authController.ChangePassword)
}
