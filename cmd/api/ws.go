package main

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsHandler serves pages over a websocket. Every text or binary message is a
// JSON encoded requests.Request and gets exactly one JSON reply.
func (h *handlers) wsHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debugf("WS_API:: Error upgrading request: %v", err)
		return
	}
	defer c.Close()

	id := h.hub.Register(c)
	defer h.hub.Unregister(id)

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debugf("WS_API:: Error reading message: %v", err)
			}
			return
		}

		resp := h.handleMessage(message)
		if resp.Error != "" {
			h.log.Debugf("WS_API:: Request failed: %s", resp.Error)
		}
		if err := c.WriteJSON(resp); err != nil {
			h.log.Debugf("WS_API:: Error writing response: %v", err)
			return
		}
	}
}
