package analytics

import (
	"fmt"
	"time"

	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

// Bucketize builds a gap-free, oldest-first histogram of windowDays UTC calendar
// days ending on now's day. Timestamps outside the window are dropped.
func Bucketize(now time.Time, windowDays int, timestamps []time.Time) ([]entity.DayBucket, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: windowDays=%d", ErrInvalidWindow, windowDays)
	}

	today := utils.StartOfDay(now)
	buckets := make([]entity.DayBucket, windowDays)
	index := make(map[string]int, windowDays)

	for i := range buckets {
		key := utils.DateKey(today.AddDate(0, 0, i-(windowDays-1)))
		buckets[i] = entity.DayBucket{Date: key}
		index[key] = i
	}

	for _, ts := range timestamps {
		if i, ok := index[utils.DateKey(ts)]; ok {
			buckets[i].Count++
		}
	}

	return buckets, nil
}
