package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"slicecam/game"
	"slicecam/logging"
	"slicecam/protocol"
	"slicecam/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dev setting; lock this down before exposing the server anywhere real.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWS upgrades the connection, runs the hello/welcome handshake and
// then pumps client messages into the room inbox until disconnect.
// Query: /ws?room=ABC123
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("room")
	if code == "" {
		http.Error(w, "missing room query", http.StatusBadRequest)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Log.Warnf("ws upgrade: %v", err)
		return
	}

	ws.SetReadLimit(1 << 20) // 1MB, frames dominate
	_ = ws.SetReadDeadline(time.Now().Add(60 * time.Second))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	rm := s.Rooms.GetOrCreateRoom(code)
	conn := newClientConn(ws)
	go conn.writePump()

	playerID, err := handshake(ws, rm, conn)
	if err != nil {
		logging.Log.Infof("ws handshake failed: %v", err)
		_ = conn.Close()
		return
	}

	readPump(ws, rm, conn, playerID)
}

// handshake expects a hello as the first message, joins the room and answers
// with a welcome.
func handshake(ws *websocket.Conn, rm *room.Room, conn room.Conn) (string, error) {
	_, payload, err := ws.ReadMessage()
	if err != nil {
		return "", err
	}
	env, err := protocol.DecodeEnvelope(payload)
	if err != nil {
		return "", err
	}
	if env.T != protocol.MsgHello {
		return "", fmt.Errorf("expected %q, got %q", protocol.MsgHello, env.T)
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		return "", err
	}

	reply := make(chan room.JoinResult, 1)
	rm.Inbox <- room.Join{Conn: conn, Name: hello.Name, Reply: reply}
	res := <-reply

	welcome := protocol.Welcome{
		PlayerID: res.PlayerID,
		TickHz:   protocol.SimTickHz,
		GridW:    game.GridW,
		GridH:    game.GridH,
	}
	b, err := protocol.Encode(protocol.MsgWelcome, welcome)
	if err != nil {
		return "", err
	}
	if err := conn.Send(b); err != nil {
		return "", err
	}
	return res.PlayerID, nil
}

func readPump(ws *websocket.Conn, rm *room.Room, conn *clientConn, playerID string) {
	defer func() {
		rm.Inbox <- room.Leave{PlayerID: playerID}
		_ = conn.Close()
	}()

	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(60 * time.Second))

		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			continue
		}
		switch env.T {
		case protocol.MsgFrame:
			f, err := protocol.DecodePayload[protocol.Frame](env)
			if err != nil {
				continue
			}
			select {
			case rm.Inbox <- room.FrameMsg{
				PlayerID: playerID,
				Frame:    &game.Frame{W: f.W, H: f.H, Pix: f.Pix},
			}:
			default:
				// inbox congested: drop this frame, a newer one is coming
			}
		case protocol.MsgControl:
			c, err := protocol.DecodePayload[protocol.Control](env)
			if err != nil {
				continue
			}
			rm.Inbox <- room.Control{PlayerID: playerID, Action: c.Action}
		case protocol.MsgPose:
			p, err := protocol.DecodePayload[protocol.Pose](env)
			if err != nil {
				continue
			}
			rm.Inbox <- room.PoseCapture{PlayerID: playerID, JPEG: p.JPEG}
		}
	}
}
