package faq

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
)

type FAQService interface {
	List(ctx context.Context) ([]entity.FAQ, error)
	Create(ctx context.Context, req entity.FAQRequest) (*entity.FAQ, error)
	Update(ctx context.Context, id uuid.UUID, req entity.FAQRequest) (*entity.FAQ, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	listCacheKey = "faqs:all"
	listCacheTTL = 10 * time.Minute
)

// Cache stores JSON values by key. Every FAQ write drops the cached list.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type faqService struct {
	repo  repository.FAQRepository
	cache Cache
}

// NewFAQService builds the service. cache may be nil.
func NewFAQService(repo repository.FAQRepository, cache Cache) FAQService {
	return &faqService{repo: repo, cache: cache}
}

// List serves the FAQ list from the cache when possible. A cache error of any
// kind falls through to the database.
func (s *faqService) List(ctx context.Context) ([]entity.FAQ, error) {
	if s.cache != nil {
		var cached []entity.FAQ
		if err := s.cache.Get(ctx, listCacheKey, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	faqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listCacheKey, faqs, listCacheTTL); err != nil {
			log.Printf("Warning: failed to cache faqs: %v", err)
		}
	}
	return faqs, nil
}

func (s *faqService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		log.Printf("Warning: failed to drop cached faqs: %v", err)
	}
}

func (s *faqService) Create(ctx context.Context, req entity.FAQRequest) (*entity.FAQ, error) {
	faq, err := s.repo.Create(ctx, normalize(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}
	s.invalidate(ctx)
	return faq, nil
}

func (s *faqService) Update(ctx context.Context, id uuid.UUID, req entity.FAQRequest) (*entity.FAQ, error) {
	faq, err := s.repo.Update(ctx, id, normalize(req))
	if err != nil {
		return nil, fmt.Errorf("failed to update faq %s: %w", id, err)
	}
	s.invalidate(ctx)
	return faq, nil
}

func (s *faqService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete faq %s: %w", id, err)
	}
	s.invalidate(ctx)
	return nil
}

// normalize trims the text fields and turns a blank category into NULL.
func normalize(req entity.FAQRequest) entity.FAQRequest {
	req.Question = strings.TrimSpace(req.Question)
	req.Answer = strings.TrimSpace(req.Answer)
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			req.Category = nil
		} else {
			req.Category = &category
		}
	}
	return req
}
