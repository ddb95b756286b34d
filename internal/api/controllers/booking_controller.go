package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Public endpoint serving package bookings, taxi hires, saved AI plans and general enquiries
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking created successfully")
}

// ListBookings godoc
// @Summary List all bookings
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	utils.RespondSuccess(c, b.bookingService.ListBookings(), "Bookings retrieved successfully")
}

// GetBooking godoc
// @Summary Get a booking by id
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/bookings/{id} [get]
func (b *BookingController) GetBooking(c *gin.Context) {
	booking, err := b.bookingService.GetBookingByID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking retrieved successfully")
}

// UpdateBookingStatus godoc
// @Summary Change a booking's status
// @Description Transitions are validated; confirming a booking sends the customer a confirmation email
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/bookings/{id}/status [patch]
func (b *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.UpdateBookingStatus(actor(c), c.Param("id"), db_models.BookingStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking status updated successfully")
}

// MarkBookingPaid godoc
// @Summary Toggle a booking's payment flag
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.MarkBookingPaidRequest true "Paid flag"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/bookings/{id}/paid [patch]
func (b *BookingController) MarkBookingPaid(c *gin.Context) {
	var req request_models.MarkBookingPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.MarkBookingPaid(actor(c), c.Param("id"), req.Paid)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking updated successfully")
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/bookings/{id} [delete]
func (b *BookingController) DeleteBooking(c *gin.Context) {
	if err := b.bookingService.DeleteBooking(actor(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking deleted successfully")
}
