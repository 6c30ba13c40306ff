package discounts

import (
	"github.com/gin-gonic/gin"

	"travely/internal/shared/middleware"
)

// RegisterRoutes mounts the public discount listing and the admin CRUD surface.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	public := rg.Group("/discounts")
	{
		public.GET("", ctrl.ListDiscounts)
		public.GET("/:discountId", ctrl.GetDiscount)
	}

	admin := rg.Group("/admin/discounts")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", ctrl.CreateDiscount)
		admin.PUT("/:discountId", ctrl.UpdateDiscount)
		admin.DELETE("/:discountId", ctrl.DeleteDiscount)
		admin.POST("/cap", ctrl.CapPercentages)
	}
}
