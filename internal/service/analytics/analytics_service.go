package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	ChartWindowDays = 7
	TopPagesLimit   = 10
)

var (
	ErrInvalidWindow    = errors.New("window and limit must be positive")
	ErrStoreUnavailable = errors.New("visit store unavailable")
)

// VisitReader is the read side of the visit store.
type VisitReader interface {
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	ListTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error)
	ListAllPageURLs(ctx context.Context) ([]string, error)
}

type AnalyticsService struct {
	store  VisitReader
	logger *slog.Logger
}

func NewAnalyticsService(store VisitReader, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, logger: logger}
}

// GetSnapshot runs the five store reads concurrently and assembles the
// dashboard snapshot. Any failed read fails the whole snapshot.
func (s *AnalyticsService) GetSnapshot(ctx context.Context, now time.Time) (*entity.AnalyticsSnapshot, error) {
	now = now.UTC()
	todayStart := utils.StartOfDay(now)
	weekStart := utils.StartOfISOWeek(now)
	windowStart := now.AddDate(0, 0, -ChartWindowDays)

	var (
		snapshot   entity.AnalyticsSnapshot
		timestamps []time.Time
		pageURLs   []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.store.CountAll(gctx)
		if err != nil {
			return fmt.Errorf("total visitors: %w", err)
		}
		snapshot.TotalVisitors = count
		return nil
	})

	g.Go(func() error {
		count, err := s.store.CountSince(gctx, todayStart)
		if err != nil {
			return fmt.Errorf("visitors today: %w", err)
		}
		snapshot.VisitorsToday = count
		return nil
	})

	g.Go(func() error {
		count, err := s.store.CountSince(gctx, weekStart)
		if err != nil {
			return fmt.Errorf("visitors this week: %w", err)
		}
		snapshot.VisitorsThisWeek = count
		return nil
	})

	g.Go(func() error {
		var err error
		timestamps, err = s.store.ListTimestampsSince(gctx, windowStart)
		if err != nil {
			return fmt.Errorf("chart timestamps: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		pageURLs, err = s.store.ListAllPageURLs(gctx)
		if err != nil {
			return fmt.Errorf("page urls: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to aggregate analytics", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	chartData, err := Bucketize(now, ChartWindowDays, timestamps)
	if err != nil {
		return nil, err
	}

	mostVisited, err := RankPages(pageURLs, TopPagesLimit)
	if err != nil {
		return nil, err
	}

	snapshot.ChartData = chartData
	snapshot.MostVisitedPages = mostVisited

	return &snapshot, nil
}
