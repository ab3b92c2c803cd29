package analytics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVisitReader struct {
	mu         sync.Mutex
	total      int64
	since      map[time.Time]int64
	timestamps []time.Time
	urls       []string

	countAllErr error
	urlsErr     error
	block       bool

	sinceCalls     []time.Time
	timestampsFrom time.Time
}

func (f *fakeVisitReader) CountAll(ctx context.Context) (int64, error) {
	if f.countAllErr != nil {
		return 0, f.countAllErr
	}
	return f.total, nil
}

func (f *fakeVisitReader) CountSince(ctx context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	f.sinceCalls = append(f.sinceCalls, since)
	f.mu.Unlock()
	return f.since[since], nil
}

func (f *fakeVisitReader) ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	f.mu.Lock()
	f.timestampsFrom = since
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.timestamps, nil
}

func (f *fakeVisitReader) ListAllPageURLs(ctx context.Context) ([]string, error) {
	if f.urlsErr != nil {
		return nil, f.urlsErr
	}
	return f.urls, nil
}

func newTestService(store VisitReader) *AnalyticsService {
	return NewAnalyticsService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyticsService_GetSnapshot(t *testing.T) {
	todayStart := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	store := &fakeVisitReader{
		total: 120,
		since: map[time.Time]int64{todayStart: 3, weekStart: 9},
		timestamps: []time.Time{
			day(0, 1), day(0, 2), day(0, 3),
			day(-2, 10), day(-2, 11),
		},
		urls: []string{"/a", "/b", "/a", "/a", "/c", "/b"},
	}

	snapshot, err := newTestService(store).GetSnapshot(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, int64(120), snapshot.TotalVisitors)
	assert.Equal(t, int64(3), snapshot.VisitorsToday)
	assert.Equal(t, int64(9), snapshot.VisitorsThisWeek)

	require.Len(t, snapshot.ChartData, ChartWindowDays)
	assert.Equal(t, entity.DayBucket{Date: "2025-03-12", Count: 3}, snapshot.ChartData[6])
	assert.Equal(t, entity.DayBucket{Date: "2025-03-11", Count: 0}, snapshot.ChartData[5])
	assert.Equal(t, entity.DayBucket{Date: "2025-03-10", Count: 2}, snapshot.ChartData[4])

	assert.Equal(t, []entity.PageRanking{
		{Page: "/a", Count: 3},
		{Page: "/b", Count: 2},
		{Page: "/c", Count: 1},
	}, snapshot.MostVisitedPages)

	assert.ElementsMatch(t, []time.Time{todayStart, weekStart}, store.sinceCalls)
	assert.Equal(t, testNow.AddDate(0, 0, -7), store.timestampsFrom)
}

func TestAnalyticsService_GetSnapshot_NormalisesToUTC(t *testing.T) {
	store := &fakeVisitReader{since: map[time.Time]int64{}}
	kigaliNow := testNow.In(time.FixedZone("CAT", 2*60*60))

	snapshot, err := newTestService(store).GetSnapshot(context.Background(), kigaliNow)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", snapshot.ChartData[6].Date)
	assert.Empty(t, snapshot.MostVisitedPages)
}

func TestAnalyticsService_GetSnapshot_FailsWhole(t *testing.T) {
	store := &fakeVisitReader{
		countAllErr: errors.New("connection reset"),
		since:       map[time.Time]int64{},
		urls:        []string{"/a"},
	}

	snapshot, err := newTestService(store).GetSnapshot(context.Background(), testNow)

	assert.Nil(t, snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAnalyticsService_GetSnapshot_CancelsSiblings(t *testing.T) {
	store := &fakeVisitReader{
		since:   map[time.Time]int64{},
		urlsErr: errors.New("permission denied"),
		block:   true,
	}

	done := make(chan error, 1)
	go func() {
		_, err := newTestService(store).GetSnapshot(context.Background(), testNow)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	case <-time.After(2 * time.Second):
		t.Fatal("blocked query was not cancelled after a sibling failed")
	}
}

func TestAnalyticsService_GetSnapshot_CallerCancellation(t *testing.T) {
	store := &fakeVisitReader{since: map[time.Time]int64{}, block: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(store).GetSnapshot(ctx, testNow)

	assert.ErrorIs(t, err, context.Canceled)
}
