package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin is enforced by the CORS middleware ahead of the upgrade
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades the connection and streams hub broadcasts to it until the
// peer goes away.
func Serve(hub *Hub, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		client := &Client{Send: make(chan []byte, 16)}
		hub.Register(client)

		go writePump(conn, client)
		readPump(conn, hub, client)
	}
}

func writePump(conn *websocket.Conn, client *Client) {
	defer conn.Close()
	for msg := range client.Send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, nil)
}

// readPump discards inbound frames; the feed is one-way. Its job is to
// notice the peer closing and unregister.
func readPump(conn *websocket.Conn, hub *Hub, client *Client) {
	defer func() {
		hub.Unregister(client)
		conn.Close()
	}()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
