package web

import (
	"bytes"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket answers each text frame, a chat request body, with one
// frame holding either the chat response or the error body /api/chat would
// have returned.
func (w *Web) handleWebSocket(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		w.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				w.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		req, err := chat.DecodeRequest(bytes.NewReader(msg))
		if err != nil {
			w.sendError(conn, err)
			continue
		}

		resp, err := w.proxy.Handle(r.Context(), req)
		if err != nil {
			w.sendError(conn, err)
			continue
		}
		w.send(conn, resp)
	}
}

func (w *Web) send(conn *websocket.Conn, v any) {
	if err := conn.WriteJSON(v); err != nil {
		w.logger.Warn("websocket write failed", "error", err)
	}
}

func (w *Web) sendError(conn *websocket.Conn, err error) {
	_, body := chat.Classify(err)
	w.send(conn, body)
}
