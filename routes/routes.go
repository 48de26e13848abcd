package routes

import (
	"context"
	"net/http"
	"time"

	"cabtour/handlers"
	"cabtour/middleware"
	"cabtour/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers customer sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp/request", hb.AuthHandler.RequestOTPHandler)
		api.POST("/otp/verify", hb.AuthHandler.VerifyOTPHandler)
	}
}

// RegisterCatalogueRoutes registers the public, unauthenticated reads.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/quote", hb.PricingHandler.QuoteHandler)
		api.GET("/cabs/:category", hb.InventoryHandler.ListCabsHandler)
		api.GET("/routes", hb.InventoryHandler.ListRoutesHandler)
		api.GET("/routes/:slug", hb.InventoryHandler.GetRouteBySlugHandler)
		api.GET("/tours", hb.InventoryHandler.ListToursHandler)
		api.GET("/tours/:slug", hb.InventoryHandler.GetTourBySlugHandler)
		api.GET("/reviews", hb.InventoryHandler.ListReviewsHandler(true))

		api.POST("/public-bookings", hb.PublicBookingHandler.SubmitHandler)
		api.POST("/contact", hb.ContactHandler.SubmitHandler)
	}
}

// RegisterCustomerRoutes registers the signed-in customer's endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthCustomerMiddleware(hb.Tokens, hb.Accounts)

	profile := r.Group("/api/profile", auth)
	{
		profile.GET("", hb.ProfileHandler.GetProfileHandler)
		profile.PUT("", hb.ProfileHandler.UpdateProfileHandler)
		profile.GET("/completion", hb.ProfileHandler.CompletionHandler)
	}

	bookings := r.Group("/api/bookings", auth)
	{
		bookings.POST("", middleware.RequireCompleteProfile(hb.Profiles), hb.BookingHandler.CreateBookingHandler)
		bookings.GET("", hb.BookingHandler.ListMyBookingsHandler)
		bookings.GET("/:id", hb.BookingHandler.GetBookingHandler)
		bookings.PATCH("/:id/cancel", hb.BookingHandler.CancelOwnBookingHandler)
		bookings.GET("/:id/voucher", hb.BookingHandler.VoucherHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.POST("/login", hb.AuthHandler.AdminLoginHandler)

	protected := adminGroup.Group("")
	protected.Use(middleware.JWTAuthAdminMiddleware(hb.Tokens), middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		protected.GET("/dashboard", hb.AdminHandler.DashboardHandler)
		protected.GET("/login-history", hb.AdminHandler.LoginHistoryHandler)

		protected.GET("/bookings", hb.BookingHandler.ListBookingsHandler)
		protected.GET("/bookings/export", hb.BookingHandler.ExportBookingsHandler)
		protected.GET("/bookings/:id", hb.BookingHandler.GetBookingHandler)
		protected.PATCH("/bookings/:id/status", hb.BookingHandler.TransitionStatusHandler)

		protected.GET("/increment-bounds", hb.PricingHandler.BoundsHandler)
		protected.PUT("/pricing/:category/bulk-increment", hb.PricingHandler.BulkIncrementHandler)
		protected.PUT("/pricing/:category/:id/increment", hb.PricingHandler.SetIncrementHandler)

		protected.GET("/cabs/:category", hb.InventoryHandler.ListCabsHandler)
		protected.POST("/cabs/:category", hb.InventoryHandler.CreateCabHandler)
		protected.GET("/cabs/:category/:id", hb.InventoryHandler.GetCabHandler)
		protected.PUT("/cabs/:category/:id", hb.InventoryHandler.UpdateCabHandler)
		protected.DELETE("/cabs/:category/:id", hb.InventoryHandler.DeleteCabHandler)

		protected.GET("/routes", hb.InventoryHandler.ListRoutesHandler)
		protected.POST("/routes", hb.InventoryHandler.CreateRouteHandler)
		protected.GET("/routes/:id", hb.InventoryHandler.GetRouteHandler)
		protected.PUT("/routes/:id", hb.InventoryHandler.UpdateRouteHandler)
		protected.DELETE("/routes/:id", hb.InventoryHandler.DeleteRouteHandler)

		protected.GET("/tours", hb.InventoryHandler.ListToursHandler)
		protected.POST("/tours", hb.InventoryHandler.CreateTourHandler)
		protected.GET("/tours/:id", hb.InventoryHandler.GetTourHandler)
		protected.PUT("/tours/:id", hb.InventoryHandler.UpdateTourHandler)
		protected.DELETE("/tours/:id", hb.InventoryHandler.DeleteTourHandler)

		protected.GET("/reviews", hb.InventoryHandler.ListReviewsHandler(false))
		protected.POST("/reviews", hb.InventoryHandler.CreateReviewHandler)
		protected.PUT("/reviews/:id", hb.InventoryHandler.UpdateReviewHandler)
		protected.PATCH("/reviews/:id/active", hb.InventoryHandler.SetReviewActiveHandler)
		protected.DELETE("/reviews/:id", hb.InventoryHandler.DeleteReviewHandler)

		protected.GET("/public-bookings", hb.PublicBookingHandler.ListHandler)
		protected.GET("/public-bookings/:id", hb.PublicBookingHandler.GetHandler)
		protected.PATCH("/public-bookings/:id/status", hb.PublicBookingHandler.TransitionHandler)

		protected.GET("/contact-messages", hb.ContactHandler.ListHandler)
		protected.PATCH("/contact-messages/:id/read", hb.ContactHandler.MarkReadHandler)
		protected.DELETE("/contact-messages/:id", hb.ContactHandler.DeleteHandler)

		protected.POST("/upload", hb.UploadHandler.UploadImageHandler)
		protected.DELETE("/upload", hb.UploadHandler.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		status := hb.Health(ctx)
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(hb.CORSOrigins) == 0 || (len(hb.CORSOrigins) == 1 && hb.CORSOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = hb.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware(hb.RequestsPerMinute))

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogueRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
