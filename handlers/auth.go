package handlers

import (
	"net/http"

	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler handles POST /api/auth/register.
func (h *HandlerBundle) RegisterHandler(c *gin.Context) {
	var input models.UserRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.Users.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *HandlerBundle) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	u, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u.Public())
}

// DeleteAccountHandler handles DELETE /api/auth/me.
func (h *HandlerBundle) DeleteAccountHandler(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Users.Delete(c.Request.Context(), userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	zap.L().Info("User account deleted", zap.String("userID", userID))
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
