package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens via the bearer token middleware, not the origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NotificationSocketHandler handles GET /ws/notifications. The connection
// receives the caller's notifications as they are emitted; clients never
// send anything, so the read loop only watches for close.
func (h *HandlerBundle) NotificationSocketHandler(c *gin.Context) {
	userID := c.GetString("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("Websocket upgrade failed", zap.String("userID", userID), zap.Error(err))
		return
	}

	h.Hub.Register(userID, conn)
	zap.L().Debug("Notification socket opened", zap.String("userID", userID))

	go func() {
		defer h.Hub.Unregister(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
