package web

import (
	"github.com/gorilla/websocket"

	"github.com/verte-zerg/minitype/internal/session"
)

// serveConn drives ctrl from a single goroutine until the peer goes away.
func (s *Server) serveConn(conn *websocket.Conn, ctrl *session.Controller) {
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			// Best-effort close.
			_ = cerr
		}
	}()
	conn.SetReadLimit(maxMessageSize)

	if err := conn.WriteJSON(newStateMessage(ctrl.Snapshot())); err != nil {
		s.logger.Printf("failed to send initial state: %v", err)
		return
	}
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("websocket read error: %v", err)
			}
			return
		}
		reply := s.handleMessage(ctrl, msg)
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Printf("websocket write error: %v", err)
			return
		}
	}
}

func (s *Server) handleMessage(ctrl *session.Controller, msg ClientMessage) any {
	ev, ok := toEvent(msg)
	if !ok {
		return ErrorMessage{Type: TypeError, Error: "unknown message type " + msg.Type}
	}
	snap, err := ctrl.Dispatch(ev)
	if err != nil {
		s.logger.Printf("failed to handle %s: %v", msg.Type, err)
		return ErrorMessage{Type: TypeError, Error: err.Error()}
	}
	return newStateMessage(snap)
}
