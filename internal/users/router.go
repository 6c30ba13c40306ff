package users

import (
	"github.com/gin-gonic/gin"

	"travely/internal/shared/middleware"
)

// RegisterRoutes mounts profile routes for authenticated users and the
// user administration surface for admins.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	me := rg.Group("/users")
	me.Use(middleware.JWTAuth(jwtSecret))
	{
		me.GET("/me", ctrl.GetProfile)
	}

	admin := rg.Group("/admin/users")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", ctrl.ListUsers)
		admin.PATCH("/:userId/loyalty", ctrl.AdjustLoyalty)
	}
}
