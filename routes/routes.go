package routes

import (
	"net/http"
	"time"

	"palmera/handlers"
	"palmera/middleware"
	"palmera/services/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the guest-facing catalog and
// availability endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/accommodations", hb.Catalog.ListAccommodations)
		api.GET("/accommodations/:id", hb.Catalog.GetAccommodation)
		api.GET("/amenities", hb.Catalog.ListAmenities)
		api.GET("/rates", hb.Rates.GetRates)
		api.GET("/availability", hb.Blocked.CheckAvailability)
	}
}

// RegisterAdminRoutes registers the admin portal endpoints. Login is the
// only one reachable without a token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authSvc auth.AuthService) {
	r.POST("/api/admin/login", hb.Auth.Login)

	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthAdminMiddleware(authSvc))
	{
		api.POST("/logout", hb.Auth.Logout)

		api.GET("/accommodations", hb.Catalog.AdminListAccommodations)
		api.POST("/accommodations", hb.Catalog.CreateAccommodation)
		api.PUT("/accommodations/:id", hb.Catalog.UpdateAccommodation)
		api.DELETE("/accommodations/:id", hb.Catalog.DeleteAccommodation)

		api.GET("/amenities", hb.Catalog.AdminListAmenities)
		api.POST("/amenities", hb.Catalog.CreateAmenity)
		api.PUT("/amenities/:id", hb.Catalog.UpdateAmenity)
		api.DELETE("/amenities/:id", hb.Catalog.DeleteAmenity)

		api.PUT("/rates", hb.Rates.PutRates)

		api.GET("/blocked", hb.Blocked.ListBlocked)
		api.POST("/blocked", hb.Blocked.CreateBlocked)
		api.PUT("/blocked/:id", hb.Blocked.UpdateBlocked)
		api.DELETE("/blocked/:id", hb.Blocked.DeleteBlocked)

		api.GET("/reservations", hb.Reservations.ListReservations)
		api.GET("/reservations/:id", hb.Reservations.GetReservation)
		api.PUT("/reservations/:id/status", hb.Reservations.UpdateStatus)
		api.POST("/reservations/:id/payments", hb.Reservations.RecordPayment)
	}
}

// RegisterRoutes wires CORS, health checking, and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authSvc auth.AuthService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb, authSvc)
}
