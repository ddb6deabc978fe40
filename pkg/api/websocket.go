package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// handleWS upgrades the connection and delegates to the ConnectionManager,
// which owns subscriptions and catch-up replay. An empty origin allowlist
// accepts any origin; deployments that care set allowed_ws_origins.
func (s *Server) handleWS(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.wsOrigins) > 0 {
		opts.OriginPatterns = s.wsOrigins
	} else {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
