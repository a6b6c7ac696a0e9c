package handlers

import (
	"log"
	"net/http"

	"caderneta-backend/internal/session"

	"github.com/gorilla/websocket"
)

// SessionHandler streams session-change events (sign-in, sign-out) over
// a websocket, the push half of the subscribe-to-session-changes
// boundary. The subscription is released when the client disconnects.
type SessionHandler struct {
	Broker   *session.Broker
	upgrader websocket.Upgrader
}

func NewSessionHandler(broker *session.Broker) *SessionHandler {
	return &SessionHandler{
		Broker: broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS is enforced by the outer middleware; the token was
			// already checked by RequireAuth.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, unsubscribe := h.Broker.Subscribe()
	defer unsubscribe()

	// Drain client messages so pings and close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				log.Printf("session: write event: %v", err)
				return
			}
		}
	}
}
