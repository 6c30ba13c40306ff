package agent

import (
	"github.com/gin-gonic/gin"

	"travely/internal/shared/middleware"
)

// RegisterRoutes mounts the agent command endpoint. The agent reads booking
// data across users, so it sits behind the admin role.
func RegisterRoutes(rg *gin.RouterGroup, ctrl *Controller, jwtSecret string) {
	agent := rg.Group("/agent")
	agent.Use(middleware.JWTAuth(jwtSecret))
	agent.Use(middleware.RequireAdmin())
	{
		agent.POST("/command", ctrl.ExecuteCommand)
	}
}
