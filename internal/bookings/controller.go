package bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"travely/internal/shared/utils/response"
	"travely/internal/users"
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

func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.ErrorWithDetails(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := c.service.Book(ctx.Request.Context(), userID.(uint), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRouteNotFound):
			response.Error(ctx, http.StatusNotFound, "Route not found")
		case errors.Is(err, ErrNoSeatsAvailable):
			response.Error(ctx, http.StatusConflict, "No seats available on this route")
		case errors.Is(err, users.ErrUserNotFound):
			response.Error(ctx, http.StatusNotFound, "User not found")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking confirmed", resp)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	booking, ok := c.authorizedBooking(ctx)
	if !ok {
		return
	}

	response.Success(ctx, http.StatusOK, "Booking fetched successfully", booking)
}

func (c *Controller) GetMyBookings(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	bookings, err := c.service.GetUserBookings(ctx.Request.Context(), userID.(uint))
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	response.Success(ctx, http.StatusOK, "Bookings fetched successfully", bookings)
}

func (c *Controller) ListBookings(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	resp, err := c.service.ListBookings(ctx.Request.Context(), page, limit)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	response.Success(ctx, http.StatusOK, "Bookings fetched successfully", resp)
}

func (c *Controller) GetBookingOwner(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("bookingId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	owner, err := c.service.Owner(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(ctx, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch booking owner")
		return
	}

	response.Success(ctx, http.StatusOK, "Booking owner fetched successfully", owner)
}

// ExplainBooking returns the reconstructed price breakdown for one booking.
func (c *Controller) ExplainBooking(ctx *gin.Context) {
	booking, ok := c.authorizedBooking(ctx)
	if !ok {
		return
	}

	breakdown, err := c.service.Explain(ctx.Request.Context(), booking.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(ctx, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrRouteNotFound):
			response.Error(ctx, http.StatusNotFound, "Route no longer exists for this booking")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to explain booking")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Booking explained successfully", breakdown)
}

// ExplainUserBookings returns breakdowns and totals for all of a user's bookings.
func (c *Controller) ExplainUserBookings(ctx *gin.Context) {
	username := ctx.Param("username")

	report, err := c.service.ExplainUserBookings(ctx.Request.Context(), username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			response.Error(ctx, http.StatusNotFound, "User not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to explain bookings")
		return
	}

	response.Success(ctx, http.StatusOK, "Bookings explained successfully", report)
}

// GetReceipt streams the e-ticket PDF for a booking.
func (c *Controller) GetReceipt(ctx *gin.Context) {
	booking, ok := c.authorizedBooking(ctx)
	if !ok {
		return
	}

	pdfBytes, err := c.service.Receipt(ctx.Request.Context(), booking.ID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to generate receipt")
		return
	}

	filename := fmt.Sprintf("receipt_%s.pdf", booking.BookingRef)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// authorizedBooking loads the booking from the path and enforces that the
// caller owns it or is an admin. Writes the error response itself.
func (c *Controller) authorizedBooking(ctx *gin.Context) (*BookingResponse, bool) {
	id, err := strconv.ParseUint(ctx.Param("bookingId"), 10, 32)
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid booking ID")
		return nil, false
	}

	booking, err := c.service.GetBookingByID(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(ctx, http.StatusNotFound, "Booking not found")
			return nil, false
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch booking")
		return nil, false
	}

	userID, _ := ctx.Get("user_id")
	role, _ := ctx.Get("user_role")
	if role != string(users.RoleAdmin) && userID != booking.UserID {
		response.Error(ctx, http.StatusForbidden, "You do not have access to this booking")
		return nil, false
	}

	return booking, true
}
