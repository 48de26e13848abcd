package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cabtour/config"
	"cabtour/cron"
	"cabtour/database"
	"cabtour/database/repository"
	adminRepo "cabtour/database/repository/admin"
	bookingRepo "cabtour/database/repository/booking"
	cabRepo "cabtour/database/repository/cab"
	publicBookingRepo "cabtour/database/repository/publicbooking"
	recordsRepo "cabtour/database/repository/records"
	reviewRepo "cabtour/database/repository/review"
	routeRepo "cabtour/database/repository/route"
	tourRepo "cabtour/database/repository/tour"
	userRepoPkg "cabtour/database/repository/user"
	"cabtour/handlers"
	"cabtour/metrics"
	"cabtour/routes"
	"cabtour/services/admin"
	"cabtour/services/auth"
	"cabtour/services/booking"
	"cabtour/services/contact"
	"cabtour/services/inventory"
	"cabtour/services/notification"
	"cabtour/services/pricing"
	"cabtour/services/publicbooking"
	"cabtour/services/storage"
	"cabtour/services/user"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Register()

	database.InitDB()
	if err := utils.InitRedis(); err != nil {
		logger.Fatal("main: failed to connect to Redis", zap.Error(err))
	}

	imageStore, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		logger.Fatal("main: failed to initialize cloudinary storage", zap.Error(err))
	}

	// repositories.
	db := database.DB()
	users := userRepoPkg.NewMongoUserRepo(db)
	admins := adminRepo.NewMongoAdminRepo(db)
	cabs := cabRepo.NewMongoCabRepo(db)
	routeOfferings := routeRepo.NewMongoRouteRepo(db)
	tours := tourRepo.NewMongoTourRepo(db)
	reviews := reviewRepo.NewMongoReviewRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	publicBookings := publicBookingRepo.NewMongoPublicBookingRepo(db)
	logins := recordsRepo.NewMongoLoginRepo(db)
	contacts := recordsRepo.NewMongoContactRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.EnsureIndexes(indexCtx, users, admins, cabs, routeOfferings, tours, reviews, bookings, publicBookings, logins, contacts); err != nil {
		logger.Fatal("main: failed to ensure indexes", zap.Error(err))
	}
	cancelIndexes()

	// notifications: the API enqueues, the worker mails.
	queueOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	queue := asynq.NewClient(queueOpt)
	defer queue.Close()
	inspector := asynq.NewInspector(queueOpt)
	defer inspector.Close()
	notifier := notification.NewTaskDispatcher(queue, cfg.AdminNotifyEmail).EnableReminders(inspector)

	mailer := notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	worker := cron.NewNotificationWorker(queueOpt, &notification.TaskHandler{Mailer: mailer}, 5, utils.QueueClient)
	if err := worker.Start(context.Background()); err != nil {
		logger.Fatal("main: notification worker failed", zap.Error(err))
	}

	// services.
	authService := &auth.DefaultAuthService{
		OTP:      auth.NewOTPStore(utils.OTPClient),
		Users:    users,
		Admins:   admins,
		Logins:   logins,
		Notifier: notifier,
		Tokens: auth.TokenConfig{
			CustomerSecret: []byte(cfg.JWTSecret),
			AdminSecret:    []byte(cfg.AdminJWTSecret),
			CustomerTTL:    cfg.CustomerTokenTTL,
			AdminTTL:       cfg.AdminTokenTTL,
		},
	}
	userService := &user.DefaultUserService{Repo: users}
	pricingService := pricing.NewPricingService(cabs, pricing.Bounds{Min: cfg.IncrementMinPercent, Max: cfg.IncrementMaxPercent})
	bookingService := &booking.DefaultBookingService{
		Bookings: bookings,
		Users:    users,
		Cabs:     cabs,
		Routes:   routeOfferings,
		Tours:    tours,
		Notifier: notifier,
	}
	inventoryService := &inventory.DefaultInventoryService{
		Cabs:    cabs,
		Routes:  routeOfferings,
		Tours:   tours,
		Reviews: reviews,
	}
	publicBookingService := &publicbooking.DefaultPublicBookingService{Repo: publicBookings, Notifier: notifier}
	contactService := &contact.DefaultContactService{Repo: contacts}
	adminService := &admin.DefaultAdminService{
		Bookings: bookings,
		Users:    users,
		Contacts: contacts,
		Logins:   logins,
		Admins:   admins,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:   authService,
		Accounts: users,
		Profiles: userService,

		AuthHandler:          handlers.NewAuthHandler(authService),
		ProfileHandler:       handlers.NewProfileHandler(userService),
		PricingHandler:       handlers.NewPricingHandler(pricingService),
		BookingHandler:       handlers.NewBookingHandler(bookingService, adminService),
		InventoryHandler:     handlers.NewInventoryHandler(inventoryService),
		PublicBookingHandler: handlers.NewPublicBookingHandler(publicBookingService),
		ContactHandler:       handlers.NewContactHandler(contactService),
		UploadHandler:        handlers.NewUploadHandler(imageStore),
		AdminHandler:         handlers.NewAdminHandler(adminService),

		Health: func(ctx context.Context) utils.HealthStatus {
			return utils.CheckHealth(ctx, database.MongoClient, utils.OTPClient, utils.QueueClient)
		},
		CORSOrigins:       cfg.CORSOrigins,
		RequestsPerMinute: cfg.MaxRequestsPerMin,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	utils.CloseRedis()
	if err := database.Disconnect(ctx); err != nil {
		logger.Error("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
