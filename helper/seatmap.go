package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"cinema_booking/config"
	"cinema_booking/database"
	"cinema_booking/model"
)

var redisClient *redis.Client

func RedisClient() *redis.Client {
	if redisClient == nil {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	}
	return redisClient
}

func SeatChannel(screeningId uint) string {
	return fmt.Sprintf("screening:%d", screeningId)
}

// FetchSeatMap builds the public seat map of a screening: every sellable
// seat of the hall with its price and whether a live ticket occupies it.
func FetchSeatMap(screeningId uint) ([]model.SeatMapEntry, error) {
	db := database.DB

	var screening model.Screening
	if err := db.First(&screening, screeningId).Error; err != nil {
		return nil, err
	}

	var seats []model.Seat
	if err := db.Where("hall_id = ? AND seat_type != ?", screening.HallId, model.SeatDisabled).
		Order("row, number").
		Find(&seats).Error; err != nil {
		return nil, err
	}

	var taken []model.Ticket
	if err := db.Where("screening_id = ? AND status IN ?", screeningId, model.ActiveTicketStatuses).
		Find(&taken).Error; err != nil {
		return nil, err
	}
	takenSet := make(map[uint]bool, len(taken))
	for _, t := range taken {
		takenSet[t.SeatId] = true
	}

	entries := make([]model.SeatMapEntry, 0, len(seats))
	for _, s := range seats {
		entries = append(entries, model.SeatMapEntry{
			SeatId:   s.ID,
			Row:      s.Row,
			Number:   s.Number,
			SeatType: s.SeatType,
			Price:    SeatPrice(&screening, s.SeatType),
			Taken:    takenSet[s.ID],
		})
	}
	return entries, nil
}

// PublishSeatUpdate pushes the fresh seat map of every screening touched by
// the given tickets onto its redis channel, for the websocket relay.
func PublishSeatUpdate(tickets []model.Ticket) {
	screenings := map[uint]bool{}
	for _, t := range tickets {
		screenings[t.ScreeningId] = true
	}

	for screeningId := range screenings {
		entries, err := FetchSeatMap(screeningId)
		if err != nil {
			log.Printf("seat map publish %d: %v", screeningId, err)
			continue
		}
		payload, err := json.Marshal(entries)
		if err != nil {
			continue
		}
		if err := RedisClient().Publish(context.Background(), SeatChannel(screeningId), payload).Err(); err != nil {
			log.Printf("redis publish %d: %v", screeningId, err)
		}
	}
}
