package routes

import (
	"net/http"
	"time"

	"servana/handlers"
	"servana/middleware"
	"servana/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/featured", hb.Catalog.Featured)
		api.GET("/popular", hb.Catalog.Popular)
		api.GET("/category/:category", hb.Catalog.ByCategory)
		api.GET("/:id", hb.Catalog.Get)
	}
}

// RegisterBusinessRoutes registers public business reads and the owner
// setup wizard.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.GET("/:id", hb.Business.Get)
		api.GET("/:id/detail", hb.Business.Detail)
		api.GET("/:id/providers", hb.Provider.ListByBusiness)
	}

	setup := r.Group("/api/business")
	setup.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
	{
		setup.GET("/me", hb.Business.Mine)
		setup.POST("", middleware.RequireRole(models.RoleOwner), hb.Business.Create)
		setup.PUT("", middleware.RequireRole(models.RoleOwner), hb.Business.Update)
		setup.PUT("/offerings", middleware.RequireRole(models.RoleOwner), hb.Business.SetOffering)
		setup.DELETE("/offerings/:offeringID", middleware.RequireRole(models.RoleOwner), hb.Business.RemoveOffering)
		setup.POST("/addons", middleware.RequireRole(models.RoleOwner), hb.Business.CreateAddOn)
		setup.PUT("/addons/:addOnID", middleware.RequireRole(models.RoleOwner), hb.Business.UpdateAddOn)
		setup.DELETE("/addons/:addOnID", middleware.RequireRole(models.RoleOwner), hb.Business.RemoveAddOn)
	}
}

// RegisterProviderRoutes registers staff session endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/login", hb.Provider.Login)
		api.GET("/:id", hb.Provider.Get)

		api.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		api.POST("/logout", hb.Provider.Logout)
	}
}

// RegisterBookingRoutes registers the booking wizard and the confirmed
// booking surfaces. Draft endpoints accept guests, so customer auth is
// optional there.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	flow := r.Group("/api/booking")
	flow.Use(middleware.JWTAuthCustomerMiddleware(hb.CustomerRepo, true))
	{
		flow.GET("/slots", hb.BookingFlow.Slots)
		flow.POST("/session", hb.BookingFlow.Start)
		flow.GET("/session/:sessionID", hb.BookingFlow.Get)
		flow.GET("/session/:sessionID/businesses", hb.BookingFlow.Businesses)
		flow.PUT("/session/:sessionID/business", hb.BookingFlow.ChooseBusiness)
		flow.PUT("/session/:sessionID/configure", hb.BookingFlow.Configure)
		flow.GET("/session/:sessionID/summary", hb.BookingFlow.Summary)
		flow.POST("/session/:sessionID/checkout", hb.BookingFlow.Checkout)
		flow.DELETE("/session/:sessionID", hb.BookingFlow.Cancel)
	}

	mine := r.Group("/api/bookings")
	mine.Use(middleware.JWTAuthCustomerMiddleware(hb.CustomerRepo, false))
	{
		mine.GET("", hb.Bookings.ListMine)
		mine.GET("/:id", hb.Bookings.Get)
		mine.POST("/:id/cancel", hb.Bookings.Cancel)
		mine.POST("/:id/payment-intent", hb.Payments.CreateIntent)
		mine.POST("/:id/payment-confirm", hb.Payments.Confirm)
	}

	staff := r.Group("/api/business/bookings")
	staff.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
	{
		staff.GET("", hb.Bookings.ListForBusiness)
		staff.GET("/:id", hb.Bookings.Get)
		staff.GET("/:id/actions", hb.Bookings.Actions)
		staff.PUT("/:id/status", hb.Bookings.ChangeStatus)
		staff.PUT("/:id/provider", middleware.RequireRole(models.RoleOwner, models.RoleDispatcher), hb.Bookings.Reassign)
		staff.POST("/:id/cancel", middleware.RequireRole(models.RoleOwner, models.RoleDispatcher), hb.Bookings.Cancel)
		staff.POST("/:id/message", hb.Bookings.Message)
	}
}

// RegisterCustomerRoutes registers account, profile, favorites and location
// endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("/register", hb.Customer.Register)
		api.POST("/login", hb.Customer.Login)
		api.POST("/refresh", hb.Customer.Refresh)

		api.Use(middleware.JWTAuthCustomerMiddleware(hb.CustomerRepo, false))
		api.POST("/logout", hb.Customer.Logout)
		api.GET("/me", hb.Customer.Me)
		api.PUT("/me", hb.Customer.UpdateMe)
		api.POST("/favorites/:businessID", hb.Customer.AddFavorite)
		api.DELETE("/favorites/:businessID", hb.Customer.RemoveFavorite)

		api.GET("/locations", hb.Locations.List)
		api.POST("/locations", hb.Locations.Create)
		api.PUT("/locations/:id", hb.Locations.Update)
		api.DELETE("/locations/:id", hb.Locations.Delete)
		api.PUT("/locations/:id/primary", hb.Locations.SetPrimary)
	}
}

// RegisterPromotionRoutes registers the public promotions endpoints.
func RegisterPromotionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/promotions")
	{
		api.GET("/active", hb.Promotions.ListActive)
		api.POST("/validate", hb.Promotions.ValidateCode)
	}
}

// RegisterIntegrationRoutes registers the third-party bridge endpoints:
// conversations, contact mail, address autocomplete, support assist and
// media uploads.
func RegisterIntegrationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/twilio-conversations", hb.Messaging.Handle)
	r.POST("/api/send-contact-email", hb.Mail.SendContactEmail)
	r.GET("/api/places/autocomplete", handlers.PlacesAutocomplete)
	r.POST("/api/assist", hb.Assist.Respond)

	upload := r.Group("/api/uploads")
	upload.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
	upload.POST("", hb.Storage.Upload)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Servana"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterPromotionRoutes(r, hb)
	RegisterIntegrationRoutes(r, hb)
}
