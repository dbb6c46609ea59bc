package network

import (
	"errors"
	"time"

	"github.com/gorilla/websocket"
)

var errConnClosed = errors.New("connection closed")

// clientConn serializes writes to one websocket through a buffered queue so
// a slow client never blocks the room tick.
type clientConn struct {
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
}

func newClientConn(ws *websocket.Conn) *clientConn {
	return &clientConn{
		ws:   ws,
		send: make(chan []byte, 64),
		done: make(chan struct{}),
	}
}

// Send enqueues a message without blocking. A full queue drops the message;
// the next snapshot supersedes it anyway.
func (c *clientConn) Send(b []byte) error {
	select {
	case <-c.done:
		return errConnClosed
	default:
	}
	select {
	case c.send <- b:
	default:
	}
	return nil
}

func (c *clientConn) Close() error {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
	return c.ws.Close()
}

func (c *clientConn) writePump() {
	defer c.ws.Close()
	for {
		select {
		case b := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
