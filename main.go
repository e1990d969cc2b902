// File: parkwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkwise/config"
	"parkwise/cron"
	"parkwise/database"
	bookingRepoPkg "parkwise/database/repository/booking"
	notificationRepoPkg "parkwise/database/repository/notification"
	ownerRepoPkg "parkwise/database/repository/owner"
	slotRepoPkg "parkwise/database/repository/slot"
	userRepoPkg "parkwise/database/repository/user"
	"parkwise/handlers"
	"parkwise/middleware"
	"parkwise/routes"
	"parkwise/services/admin"
	"parkwise/services/booking"
	"parkwise/services/notification"
	"parkwise/services/owner"
	"parkwise/services/payment"
	"parkwise/services/slot"
	"parkwise/services/user"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	ownerRepo := ownerRepoPkg.NewMongoOwnerRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Services.
	hub := notification.NewHub()
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
		Hub:  hub,
	}

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Owners:   ownerRepo,
		Slots:    slotRepo,
		Bookings: bookingRepo,
	}

	ownerService := &owner.DefaultOwnerService{
		Repo:         ownerRepo,
		Slots:        slotRepo,
		Bookings:     bookingRepo,
		Notification: notificationService,
	}

	coordinator := &booking.DefaultAvailabilityCoordinator{
		Bookings: bookingRepo,
		Slots:    slotRepo,
	}

	expiryScheduler := cron.NewAsynqExpiryScheduler()
	defer expiryScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Slots:        slotRepo,
		Owners:       ownerRepo,
		Users:        userRepo,
		Coordinator:  coordinator,
		Payments:     payment.NewStripeProvider(),
		Notification: notificationService,
		Expiry:       expiryScheduler,
	}

	slotService := &slot.DefaultSlotService{
		Repo:        slotRepo,
		Owners:      ownerRepo,
		Bookings:    bookingRepo,
		Coordinator: coordinator,
	}

	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Owners:   ownerRepo,
		Bookings: bookingRepo,
	}

	// Assemble the handler bundle and routes.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:      userRepo,
		Users:         userService,
		Owners:        ownerService,
		Slots:         slotService,
		Bookings:      bookingService,
		Notifications: notificationService,
		Admin:         adminService,
		Hub:           hub,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for pending booking expiry.
	cron.InitBookingExpiryWorker(bookingService)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
