// internal/handlers/websocket/ws_handler.go
package websocket

import (
	"net/http"

	"evently-service/internal/middleware"
	ws "evently-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking is handled by the CORS layer in front.
		return true
	},
}

type WebSocketHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWebSocketHandler(hub *ws.Hub, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection upgrades an authenticated request to a websocket and
// attaches it to the hub. The route sits behind the auth middleware, which
// accepts the token from the "token" query parameter for this endpoint.
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	acct := middleware.MustGetAccount(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			zap.Error(err),
			zap.String("ip", c.ClientIP()),
		)
		return
	}

	client := ws.NewClient(h.hub, conn, acct.ID)
	h.hub.Register(client)

	h.logger.Info("websocket client connected",
		zap.String("account_id", acct.ID.String()),
		zap.String("email", acct.Email),
	)

	go client.WritePump()
	go client.ReadPump()
}
