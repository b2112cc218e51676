package helper

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"cinema_booking/database"
	"cinema_booking/model"
)

// Unpaid reservations are held this long before the seats return to the pool.
const ReservationTTL = 15 * time.Minute

var reservationSweeper *cron.Cron

func StartReservationSweeper() {
	reservationSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reservationSweeper.AddFunc("*/5 * * * *", ExpireStaleReservations)
	if err != nil {
		log.Printf("reservation sweeper init: %v", err)
		return
	}

	reservationSweeper.Start()
	log.Println("reservation sweeper started (every 5 minutes)")
}

func StopReservationSweeper() {
	if reservationSweeper != nil {
		reservationSweeper.Stop()
		log.Println("reservation sweeper stopped")
	}
}

// ExpireStaleReservations cancels reserved tickets older than the hold TTL
// and closes pending orders left with no live tickets and no products.
func ExpireStaleReservations() {
	db := database.DB
	cutoff := time.Now().Add(-ReservationTTL)

	var stale []model.Ticket
	if err := db.Where("status = ? AND created_at < ?", model.TicketReserved, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("reservation sweep scan: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	orderIds := map[uint]bool{}
	for _, t := range stale {
		orderIds[t.OrderId] = true
	}

	result := db.Model(&model.Ticket{}).
		Where("status = ? AND created_at < ?", model.TicketReserved, cutoff).
		Update("status", model.TicketCancelled)
	if result.Error != nil {
		log.Printf("reservation sweep cancel: %v", result.Error)
		return
	}
	log.Printf("reservation sweep: released %d seats", result.RowsAffected)

	for orderId := range orderIds {
		var order model.Order
		if err := db.Preload("Tickets").Preload("Items").First(&order, orderId).Error; err != nil {
			continue
		}
		if order.Status != model.OrderPending {
			continue
		}

		order.TotalAmount = ComputeOrderTotal(order.Tickets, order.Items)
		live := 0
		for _, t := range order.Tickets {
			if t.Status != model.TicketCancelled {
				live++
			}
		}
		if live == 0 && len(order.Items) == 0 {
			order.Status = model.OrderCancelled
		}
		if err := db.Save(&order).Error; err != nil {
			log.Printf("reservation sweep order %d: %v", orderId, err)
		}
		PublishSeatUpdate(order.Tickets)
	}
}
