package handler

import (
	"context"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"cinema_booking/helper"
)

var (
	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// SeatMapSocket streams live seat-map updates for a screening. The client
// gets the current map on connect, then every change published on the
// screening's redis channel.
func SeatMapSocket(c *websocket.Conn) {
	screeningIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(screeningIdStr, 10, 64)
	screeningId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[screeningId] != nil {
			delete(clients[screeningId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[screeningId] == nil {
		clients[screeningId] = make(map[*websocket.Conn]bool)
	}
	clients[screeningId][c] = true
	mu.Unlock()

	if entries, err := helper.FetchSeatMap(screeningId); err == nil {
		c.WriteJSON(entries)
	}

	pubsub := helper.RedisClient().Subscribe(
		context.Background(),
		helper.SeatChannel(screeningId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[screeningId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[screeningId], conn)
			}
		}
		mu.Unlock()
	}
}
