package auth

import (
	"errors"
	"net/http"
	"strconv"

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

func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserAlreadyExists):
			response.Error(ctx, http.StatusConflict, "User with this username already exists")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	response.Success(ctx, http.StatusCreated, "User registered successfully", resp)
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(ctx, http.StatusUnauthorized, "Invalid username or password")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Login successful", resp)
}

func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			response.Error(ctx, http.StatusUnauthorized, "Invalid or expired refresh token")
		case errors.Is(err, ErrUserNotFound):
			response.Error(ctx, http.StatusUnauthorized, "User not found")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Token refreshed successfully", tokenPair)
}

func (c *Controller) ChangePassword(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	err := c.service.ChangePassword(ctx.Request.Context(), userID.(uint), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(ctx, http.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, ErrUserNotFound):
			response.Error(ctx, http.StatusNotFound, "User not found")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to change password")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Password changed successfully", nil)
}

// ResetPassword lets an admin force a new password onto any account.
func (c *Controller) ResetPassword(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if err := c.service.ResetPassword(ctx.Request.Context(), uint(userID), req.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(ctx, http.StatusNotFound, "User not found")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Password reset successfully", nil)
}

func (c *Controller) GetMe(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	username, _ := ctx.Get("username")
	role, _ := ctx.Get("user_role")

	userData := map[string]interface{}{
		"id":       userID,
		"username": username,
		"role":     role,
	}

	response.Success(ctx, http.StatusOK, "User data retrieved successfully", userData)
}
