package gormstore

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

func TestSellerRecord_BirthDateIsCalendarDay(t *testing.T) {
	t.Parallel()

	day := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		stored time.Time
	}{
		{name: "utc", stored: day},
		{name: "read back west of utc", stored: day.In(time.FixedZone("UTC-3", -3*60*60))},
		{name: "read back east of utc", stored: day.In(time.FixedZone("UTC+9", 9*60*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sellerRecord{ID: 1, BirthDate: tt.stored}.toDomain()
			if got.BirthDate == nil || *got.BirthDate != day {
				t.Errorf("toDomain().BirthDate = %v, want %v", got.BirthDate, day)
			}

			birth := tt.stored
			if rec := toSellerRecord(&seller.Seller{BirthDate: &birth}); rec.BirthDate != day {
				t.Errorf("toSellerRecord().BirthDate = %v, want %v", rec.BirthDate, day)
			}
		})
	}
}
