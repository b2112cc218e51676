package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cinema_booking/model"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "disjoint before",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(12, 30), bEnd: at(14, 30),
			want: false,
		},
		{
			name:   "contained inside",
			aStart: at(11, 0), aEnd: at(13, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			want: true,
		},
		{
			name:   "straddles start",
			aStart: at(11, 0), aEnd: at(13, 0),
			bStart: at(12, 30), bEnd: at(14, 30),
			want: true,
		},
		{
			name:   "back to back still conflicts",
			aStart: at(12, 0), aEnd: at(14, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			want: true,
		},
		{
			name:   "identical interval",
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			want: true,
		},
		{
			name:   "one minute gap",
			aStart: at(12, 1), aEnd: at(14, 0),
			bStart: at(10, 0), bEnd: at(12, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.want, got)
			// Symmetric by definition.
			assert.Equal(t, tt.want, IntervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestComputeEndTime(t *testing.T) {
	start := at(18, 0)
	end := ComputeEndTime(start, 120)
	assert.Equal(t, at(20, 15), end, "runtime plus turnaround buffer")
}

func TestSeatPrice(t *testing.T) {
	screening := &model.Screening{BasePrice: 2000, VipPrice: 3000}

	assert.Equal(t, 2000.0, SeatPrice(screening, model.SeatStandard))
	assert.Equal(t, 3000.0, SeatPrice(screening, model.SeatVip))

	noVip := &model.Screening{BasePrice: 2000}
	assert.Equal(t, 2000.0, SeatPrice(noVip, model.SeatVip), "falls back to base when vip price unset")
}
