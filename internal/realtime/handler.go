package realtime

import (
	"net/http"

	"nhooyr.io/websocket"
)

// Serve upgrades the request and keeps the socket subscribed to dealID until
// either side disconnects. The stream is push-only; inbound frames are
// discarded apart from control frames.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, dealID string, originPatterns []string) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: originPatterns})
	if err != nil {
		h.logger.Warn("websocket accept failed", "deal_id", dealID, "error", err)
		return
	}

	readCtx := conn.CloseRead(r.Context())

	client := h.AddClient(dealID, conn)
	defer h.RemoveClient(client)

	<-readCtx.Done()
}
