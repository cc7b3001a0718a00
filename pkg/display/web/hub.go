// Package web streams completed frames to browser clients over a
// websocket, so a running machine can be watched remotely.
package web

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Message type bytes, the first byte of every frame sent to a client.
const (
	// MessageFrame carries a raw RGB frame.
	MessageFrame uint8 = iota
	// MessageTitle carries the window title as UTF-8 text.
	MessageTitle
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans completed frames out to the connected clients. Clients that
// cannot keep up are dropped rather than allowed to stall the machine.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

// NewHub returns a Hub ready to run.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 8),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run serves websocket connections on addr and fans broadcasts out to
// them. It blocks; run it in its own goroutine.
func (h *Hub) Run(addr string) error {
	go h.loop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		c := &Client{
			hub:  h,
			conn: conn,
			send: make(chan []byte, 16),
		}
		h.register <- c

		go c.writePump()
		go c.readPump()
	})

	return http.ListenAndServe(addr, mux)
}

func (h *Hub) loop() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// client too slow, drop it
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// BroadcastFrame queues a completed frame for every connected client.
// Frames are dropped when the broadcast queue is full; the machine is
// never blocked on a viewer.
func (h *Hub) BroadcastFrame(frame []byte) {
	message := make([]byte, 0, len(frame)+1)
	message = append(message, MessageFrame)
	message = append(message, frame...)

	select {
	case h.broadcast <- message:
	default:
	}
}
