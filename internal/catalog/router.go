package catalog

import (
	"github.com/gin-gonic/gin"

	"travely/internal/shared/middleware"
)

// RegisterRoutes mounts the public catalog surface and the admin CRUD surface.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	public := rg.Group("/routes")
	{
		public.GET("", ctrl.ListRoutes)
		public.GET("/search", ctrl.SearchRoutes)
		public.GET("/:routeId", ctrl.GetRoute)
	}

	admin := rg.Group("/admin/routes")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", ctrl.CreateRoute)
		admin.PUT("/:routeId", ctrl.UpdateRoute)
		admin.DELETE("/:routeId", ctrl.DeleteRoute)
	}
}
