package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches an upgraded connection to the hub and blocks until the
// peer goes away.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := &Client{hub: hub, conn: conn, Send: make(chan []byte, sendBuffer)}
	hub.register(client)

	go client.writePump()
	client.readPump()
}
