package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servana/config"
	"servana/cron"
	"servana/database"
	bookingRepoPkg "servana/database/repository/booking"
	businessRepoPkg "servana/database/repository/business"
	catalogRepoPkg "servana/database/repository/catalog"
	customerRepoPkg "servana/database/repository/customer"
	promotionRepoPkg "servana/database/repository/promotion"
	providerRepoPkg "servana/database/repository/provider"
	"servana/handlers"
	"servana/middleware"
	"servana/routes"
	"servana/services/assist"
	"servana/services/booking"
	"servana/services/business"
	"servana/services/catalog"
	"servana/services/customer"
	"servana/services/mail"
	"servana/services/messaging"
	"servana/services/notification"
	"servana/services/payment"
	"servana/services/promotion"
	"servana/services/storage"
	"servana/services/tasks"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitDraftCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
	}

	// Repositories.
	catalogRepo := catalogRepoPkg.NewMongoServiceRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	offeringRepo := businessRepoPkg.NewMongoOfferingRepo()
	addOnRepo := businessRepoPkg.NewMongoAddOnRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	actionRepo := bookingRepoPkg.NewMongoActionRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	locationRepo := customerRepoPkg.NewMongoLocationRepo()
	promotionRepo := promotionRepoPkg.NewMongoPromotionRepo()

	// Async reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()
	reminderScheduler := &tasks.AsynqReminderScheduler{Client: asynqClient}

	// Services.
	notificationService := &notification.DefaultNotificationService{
		Customers: customerRepo,
		FCM:       utils.FCMClient,
	}
	promotionService := &promotion.DefaultPromotionService{Repo: promotionRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	businessService := &business.DefaultBusinessService{
		Repo:      businessRepo,
		Offerings: offeringRepo,
		AddOns:    addOnRepo,
		Providers: providerRepo,
		Catalog:   catalogRepo,
	}
	customerService := &customer.DefaultCustomerService{
		Repo:      customerRepo,
		Locations: locationRepo,
	}
	sessionService := &booking.DefaultBookingSessionService{
		Drafts:       booking.NewRedisDraftStore(utils.GetDraftCacheClient()),
		CatalogRepo:  catalogRepo,
		BusinessRepo: businessRepo,
		OfferingRepo: offeringRepo,
		AddOnRepo:    addOnRepo,
		ProviderRepo: providerRepo,
		BookingRepo:  bookingRepo,
		ActionRepo:   actionRepo,
		PromoSvc:     promotionService,
		Notifier:     notificationService,
		Reminders:    reminderScheduler,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Actions:   actionRepo,
		Providers: providerRepo,
		Notifier:  notificationService,
	}
	paymentService := &payment.DefaultPaymentService{Bookings: bookingRepo}

	var classifier assist.IntentClassifier = assist.KeywordClassifier{}
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := assist.NewGeminiClassifier(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: gemini classifier unavailable, using keyword matching: %v", err)
		} else {
			classifier = gemini
		}
	}

	// Handler bundle.
	hb := &handlers.HandlerBundle{
		CustomerRepo: customerRepo,
		ProviderRepo: providerRepo,
		Catalog:      &handlers.CatalogHandler{Svc: catalogService},
		Business:     &handlers.BusinessHandler{Svc: businessService},
		Provider:     &handlers.ProviderHandler{Repo: providerRepo},
		BookingFlow:  &handlers.BookingFlowHandler{Svc: sessionService},
		Bookings:     &handlers.BookingsHandler{Svc: bookingService},
		Customer:     &handlers.CustomerHandler{Svc: customerService},
		Locations:    &handlers.LocationHandler{Svc: customerService},
		Promotions:   &handlers.PromotionHandler{Svc: promotionService},
		Messaging:    &handlers.MessagingHandler{Svc: messaging.NewMessagingService()},
		Mail:         &handlers.MailHandler{Sender: mail.NewSender()},
		Payments:     &handlers.PaymentHandler{Svc: paymentService, Bookings: bookingService},
		Assist:       &handlers.AssistHandler{Svc: &assist.Service{Classifier: classifier}},
		Storage:      &handlers.StorageHandler{Svc: storageService},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, hb)

	cron.InitReminderWorker(notificationService)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Servana listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server exited")
}
