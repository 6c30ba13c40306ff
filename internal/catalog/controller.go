package catalog

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

func (c *Controller) CreateRoute(ctx *gin.Context) {
	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.CreateRoute(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create route")
		return
	}

	response.Success(ctx, http.StatusCreated, "Route created successfully", resp)
}

func (c *Controller) GetRoute(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("routeId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid route ID")
		return
	}

	resp, err := c.service.GetRouteByID(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			response.Error(ctx, http.StatusNotFound, "Route not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch route")
		return
	}

	response.Success(ctx, http.StatusOK, "Route fetched successfully", resp)
}

func (c *Controller) ListRoutes(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	transportType := ctx.Query("transport_type")

	if transportType != "" && !IsValidTransportType(transportType) {
		response.Error(ctx, http.StatusBadRequest, "Invalid transport type")
		return
	}

	resp, err := c.service.ListRoutes(ctx.Request.Context(), page, limit, transportType)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch routes")
		return
	}

	response.Success(ctx, http.StatusOK, "Routes fetched successfully", resp)
}

func (c *Controller) SearchRoutes(ctx *gin.Context) {
	origin := ctx.Query("origin")
	destination := ctx.Query("destination")
	if origin == "" || destination == "" {
		response.Error(ctx, http.StatusBadRequest, "origin and destination query parameters are required")
		return
	}

	resp, err := c.service.SearchRoutes(ctx.Request.Context(), origin, destination)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to search routes")
		return
	}

	response.Success(ctx, http.StatusOK, "Routes fetched successfully", resp)
}

func (c *Controller) UpdateRoute(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("routeId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid route ID")
		return
	}

	var req UpdateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.UpdateRoute(ctx.Request.Context(), uint(id), &req)
	if err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			response.Error(ctx, http.StatusNotFound, "Route not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update route")
		return
	}

	response.Success(ctx, http.StatusOK, "Route updated successfully", resp)
}

func (c *Controller) DeleteRoute(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("routeId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid route ID")
		return
	}

	if err := c.service.DeleteRoute(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrRouteNotFound) {
			response.Error(ctx, http.StatusNotFound, "Route not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete route")
		return
	}

	response.Success(ctx, http.StatusOK, "Route deleted successfully", nil)
}
