package handlers

import (
	"net/http"

	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
)

// ListSlotsHandler handles GET /api/slots. Public browse of available slots,
// optionally filtered by city and vehicle type.
func (h *HandlerBundle) ListSlotsHandler(c *gin.Context) {
	filter := models.SlotFilter{
		City:        c.Query("city"),
		VehicleType: models.VehicleType(c.Query("vehicle_type")),
	}

	slots, err := h.Slots.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetSlotHandler handles GET /api/slots/:id.
func (h *HandlerBundle) GetSlotHandler(c *gin.Context) {
	slot, err := h.Slots.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// CreateSlotHandler handles POST /api/owner/slots.
func (h *HandlerBundle) CreateSlotHandler(c *gin.Context) {
	var input models.SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	slot, err := h.Slots.Create(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListOwnerSlotsHandler handles GET /api/owner/slots.
func (h *HandlerBundle) ListOwnerSlotsHandler(c *gin.Context) {
	slots, err := h.Slots.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// UpdateSlotHandler handles PUT /api/owner/slots/:id.
func (h *HandlerBundle) UpdateSlotHandler(c *gin.Context) {
	var update models.SlotUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	slot, err := h.Slots.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), update)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// SetSlotAvailabilityHandler handles PATCH /api/owner/slots/:id/availability.
func (h *HandlerBundle) SetSlotAvailabilityHandler(c *gin.Context) {
	var body struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "is_available is required")
		return
	}

	slot, err := h.Slots.SetAvailability(c.Request.Context(), c.GetString("userID"), c.Param("id"), *body.IsAvailable)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteSlotHandler handles DELETE /api/owner/slots/:id.
func (h *HandlerBundle) DeleteSlotHandler(c *gin.Context) {
	if err := h.Slots.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
}
