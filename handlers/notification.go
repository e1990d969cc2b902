package handlers

import (
	"net/http"

	"parkwise/utils"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler handles GET /api/notifications.
func (h *HandlerBundle) ListNotificationsHandler(c *gin.Context) {
	notifications, err := h.Notifications.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler handles PATCH /api/notifications/:id/read.
func (h *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
