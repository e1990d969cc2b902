package routes

import (
	"net/http"
	"time"

	"parkwise/handlers"
	"parkwise/middleware"
	"parkwise/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
	}
}

// RegisterSlotRoutes registers the public browse endpoints and the owner's
// slot management endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	public := r.Group("/api/slots")
	{
		public.GET("", hb.ListSlotsHandler)
		public.GET("/:id", hb.GetSlotHandler)
	}

	owner := r.Group("/api/owner/slots")
	{
		owner.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		owner.Use(middleware.RequireRoles(models.RoleOwner))
		owner.POST("", hb.CreateSlotHandler)
		owner.GET("", hb.ListOwnerSlotsHandler)
		owner.PUT("/:id", hb.UpdateSlotHandler)
		owner.PATCH("/:id/availability", hb.SetSlotAvailabilityHandler)
		owner.DELETE("/:id", hb.DeleteSlotHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.POST("/:id/pay", hb.PayBookingHandler)

		// Decisions and finalization belong to slot owners.
		api.PATCH("/:id/status", middleware.RequireRoles(models.RoleOwner), hb.UpdateBookingStatusHandler)
	}

	ownerView := r.Group("/api/owner/bookings")
	{
		ownerView.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		ownerView.Use(middleware.RequireRoles(models.RoleOwner))
		ownerView.GET("", hb.ListOwnerBookingsHandler)
	}
}

// RegisterOwnerRoutes registers owner application and dashboard endpoints.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/owners")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/apply", hb.ApplyOwnerHandler)
		api.GET("/me", hb.GetOwnerProfileHandler)
	}

	stats := r.Group("/api/owner/stats")
	{
		stats.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		stats.Use(middleware.RequireRoles(models.RoleOwner))
		stats.GET("", hb.OwnerStatsHandler)
	}
}

// RegisterNotificationRoutes registers notification endpoints, including the
// live websocket feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.MarkNotificationReadHandler)
	}

	ws := r.Group("/ws")
	{
		ws.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		ws.GET("/notifications", hb.NotificationSocketHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRoles(models.RoleAdmin))
		api.GET("/owners/pending", hb.ListPendingOwnersHandler)
		api.PATCH("/owners/:id/status", hb.DecideOwnerHandler)
		api.GET("/stats", hb.SystemStatsHandler)
		api.POST("/admins", hb.CreateAdminHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Parkwise"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
