package visit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

// DedupWindow is how long a repeated (ip, page) pair is acknowledged without
// being stored.
const DedupWindow = 30 * time.Second

var ErrPageURLRequired = errors.New("page_url required")

type VisitWriter interface {
	Create(ctx context.Context, visit *entity.Visit) error
}

// Deduplicator is satisfied by the redis service.
type Deduplicator interface {
	MarkIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type VisitService struct {
	repo   VisitWriter
	dedup  Deduplicator
	logger *slog.Logger
	now    func() time.Time
}

// NewVisitService accepts a nil dedup, in which case every visit is stored.
func NewVisitService(repo VisitWriter, dedup Deduplicator, logger *slog.Logger) *VisitService {
	return &VisitService{
		repo:   repo,
		dedup:  dedup,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// TrackVisit records a page view. recorded is false when the visit was a
// duplicate inside DedupWindow and nothing was written.
func (s *VisitService) TrackVisit(ctx context.Context, req entity.TrackVisitRequest, ip string) (*entity.Visit, bool, error) {
	pageURL := strings.TrimSpace(req.PageURL)
	if pageURL == "" {
		return nil, false, ErrPageURLRequired
	}

	if !s.markFirstSeen(ctx, ip, pageURL) {
		return nil, false, nil
	}

	visit := &entity.Visit{
		PageURL:   pageURL,
		UserAgent: optional(req.UserAgent),
		IPAddress: optional(ip),
		VisitedAt: s.now(),
	}

	if err := s.repo.Create(ctx, visit); err != nil {
		return nil, false, fmt.Errorf("failed to track visit: %w", err)
	}

	return visit, true, nil
}

func (s *VisitService) markFirstSeen(ctx context.Context, ip, pageURL string) bool {
	if s.dedup == nil || ip == "" {
		return true
	}

	fresh, err := s.dedup.MarkIfAbsent(ctx, dedupKey(ip, pageURL), DedupWindow)
	if err != nil {
		s.logger.Warn("visit dedup unavailable, recording anyway",
			slog.String("page_url", pageURL), slog.Any("error", err))
		return true
	}
	return fresh
}

func dedupKey(ip, pageURL string) string {
	return "visit:dedup:" + ip + ":" + pageURL
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
