package helper

import (
	"time"

	"gorm.io/gorm"

	"cinema_booking/model"
)

// Buffer between screenings in the same hall, for cleaning and audience
// exchange. Applied on top of the movie duration when computing end time.
const ScreeningBufferMinutes = 15

// ComputeEndTime derives a screening's end from its start and the movie
// runtime plus the hall turnaround buffer.
func ComputeEndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes+ScreeningBufferMinutes) * time.Minute)
}

// IntervalsOverlap reports whether two closed time intervals share at least
// one instant. Boundaries count: a screening ending 12:00 conflicts with one
// starting 12:00 in the same hall.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// HasHallConflict checks whether any other screening in the hall overlaps the
// proposed interval. excludeId skips the screening being edited.
func HasHallConflict(db *gorm.DB, hallId uint, start, end time.Time, excludeId *uint) (bool, error) {
	var count int64
	query := db.Model(&model.Screening{}).
		Where("hall_id = ?", hallId).
		Where("start_time <= ? AND end_time >= ?", end, start)
	if excludeId != nil {
		query = query.Where("id != ?", *excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ScreeningsHaveActiveTickets reports whether any of the screenings still
// carries a live (reserved, paid or used) ticket. Such screenings may not be
// deleted or moved to another hall or time slot.
func ScreeningsHaveActiveTickets(db *gorm.DB, screeningIds []uint) (bool, error) {
	var count int64
	err := db.Model(&model.Ticket{}).
		Where("screening_id IN ? AND status IN ?", screeningIds, model.ActiveTicketStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountActiveSeatTickets counts live tickets over the given seats of one
// screening. A non-zero result means at least one requested seat is taken.
func CountActiveSeatTickets(db *gorm.DB, screeningId uint, seatIds []uint) (int64, error) {
	var count int64
	err := db.Model(&model.Ticket{}).
		Where("screening_id = ? AND seat_id IN ? AND status IN ?",
			screeningId, seatIds, model.ActiveTicketStatuses).
		Count(&count).Error
	return count, err
}

// SeatPrice resolves the price of a seat for a screening from its type.
// Disabled seats are never sold, callers filter them out before pricing.
func SeatPrice(screening *model.Screening, seatType string) float64 {
	if seatType == model.SeatVip && screening.VipPrice > 0 {
		return screening.VipPrice
	}
	return screening.BasePrice
}
