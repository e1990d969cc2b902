package handlers

import (
	"net/http"

	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
)

// ListPendingOwnersHandler handles GET /api/admin/owners/pending.
func (h *HandlerBundle) ListPendingOwnersHandler(c *gin.Context) {
	owners, err := h.Owners.ListPending(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// DecideOwnerHandler handles PATCH /api/admin/owners/:id/status.
func (h *HandlerBundle) DecideOwnerHandler(c *gin.Context) {
	var body struct {
		Status models.OwnerStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	owner, err := h.Owners.Decide(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// SystemStatsHandler handles GET /api/admin/stats.
func (h *HandlerBundle) SystemStatsHandler(c *gin.Context) {
	stats, err := h.Admin.SystemStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateAdminHandler handles POST /api/admin/admins.
func (h *HandlerBundle) CreateAdminHandler(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	admin, err := h.Users.CreateAdmin(c.Request.Context(), body.Username, body.Email, body.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin.Public())
}
