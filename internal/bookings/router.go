package bookings

import (
	"github.com/gin-gonic/gin"

	"travely/internal/shared/middleware"
)

// RegisterRoutes mounts booking creation, listings, the explainer and the
// receipt download, plus the admin-wide listing and owner lookup.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth(jwtSecret))
	{
		bookings.POST("", ctrl.CreateBooking)
		bookings.GET("/me", ctrl.GetMyBookings)
		bookings.GET("/:bookingId", ctrl.GetBooking)
		bookings.GET("/:bookingId/explain", ctrl.ExplainBooking)
		bookings.GET("/:bookingId/receipt", ctrl.GetReceipt)
	}

	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", ctrl.ListBookings)
		admin.GET("/:bookingId/owner", ctrl.GetBookingOwner)
		admin.GET("/user/:username", ctrl.ExplainUserBookings)
	}
}
