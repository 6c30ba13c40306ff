package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"travely/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// ExecuteCommand parses a natural-language line and runs it.
func (c *Controller) ExecuteCommand(ctx *gin.Context) {
	var req CommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.Execute(ctx.Request.Context(), req.Command)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to execute command")
		return
	}

	response.Success(ctx, http.StatusOK, "Command executed", resp)
}
