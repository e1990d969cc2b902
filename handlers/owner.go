package handlers

import (
	"net/http"

	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
)

// ApplyOwnerHandler handles POST /api/owners/apply.
func (h *HandlerBundle) ApplyOwnerHandler(c *gin.Context) {
	var input models.OwnerApplication
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	owner, err := h.Owners.Apply(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// GetOwnerProfileHandler handles GET /api/owners/me.
func (h *HandlerBundle) GetOwnerProfileHandler(c *gin.Context) {
	owner, err := h.Owners.GetByUserID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// OwnerStatsHandler handles GET /api/owner/stats.
func (h *HandlerBundle) OwnerStatsHandler(c *gin.Context) {
	stats, err := h.Owners.Stats(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
