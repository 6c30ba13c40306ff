package discounts

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

func (c *Controller) CreateDiscount(ctx *gin.Context) {
	var req CreateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.CreateDiscount(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create discount")
		return
	}

	response.Success(ctx, http.StatusCreated, "Discount created successfully", resp)
}

func (c *Controller) GetDiscount(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("discountId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid discount ID")
		return
	}

	resp, err := c.service.GetDiscountByID(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrDiscountNotFound) {
			response.Error(ctx, http.StatusNotFound, "Discount not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch discount")
		return
	}

	response.Success(ctx, http.StatusOK, "Discount fetched successfully", resp)
}

func (c *Controller) ListDiscounts(ctx *gin.Context) {
	resp, err := c.service.ListDiscounts(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch discounts")
		return
	}

	response.Success(ctx, http.StatusOK, "Discounts fetched successfully", resp)
}

func (c *Controller) UpdateDiscount(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("discountId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid discount ID")
		return
	}

	var req UpdateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.UpdateDiscount(ctx.Request.Context(), uint(id), &req)
	if err != nil {
		if errors.Is(err, ErrDiscountNotFound) {
			response.Error(ctx, http.StatusNotFound, "Discount not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update discount")
		return
	}

	response.Success(ctx, http.StatusOK, "Discount updated successfully", resp)
}

func (c *Controller) DeleteDiscount(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("discountId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid discount ID")
		return
	}

	if err := c.service.DeleteDiscount(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrDiscountNotFound) {
			response.Error(ctx, http.StatusNotFound, "Discount not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete discount")
		return
	}

	response.Success(ctx, http.StatusOK, "Discount deleted successfully", nil)
}

// CapPercentages brings any out-of-range discount back under the ceiling.
func (c *Controller) CapPercentages(ctx *gin.Context) {
	capped, err := c.service.CapPercentages(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to cap discounts")
		return
	}

	response.Success(ctx, http.StatusOK, "Discount percentages capped", gin.H{
		"capped": capped,
		"max":    MaxPercentage,
	})
}
