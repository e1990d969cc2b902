package handlers

import (
	"net/http"

	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler handles POST /api/bookings.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, err := h.Bookings.Request(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *HandlerBundle) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListOwnerBookingsHandler handles GET /api/owner/bookings. The pending query
// flag narrows to requests awaiting a decision.
func (h *HandlerBundle) ListOwnerBookingsHandler(c *gin.Context) {
	onlyPending := c.Query("pending") == "true"

	bookings, err := h.Bookings.ListForOwner(c.Request.Context(), c.GetString("userID"), onlyPending)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status. The
// target status selects the operation: approved/rejected is an owner
// decision on a pending booking, completed/cancelled finalizes an active one.
func (h *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	var body models.BookingDecision
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ownerUserID := c.GetString("userID")
	bookingID := c.Param("id")

	var booking *models.Booking
	var err error
	switch body.Status {
	case models.BookingApproved, models.BookingRejected:
		booking, err = h.Bookings.Decide(c.Request.Context(), ownerUserID, bookingID, body.Status)
	case models.BookingCompleted, models.BookingCancelled:
		booking, err = h.Bookings.Finalize(c.Request.Context(), ownerUserID, bookingID, body.Status)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid status",
			"status must be approved, rejected, completed or cancelled")
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PayBookingHandler handles POST /api/bookings/:id/pay.
func (h *HandlerBundle) PayBookingHandler(c *gin.Context) {
	capture, err := h.Bookings.CapturePayment(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, capture)
}
