package faq

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	redisService "github.com/rblc/parts-marketplace-backend/internal/service/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFAQRepository struct {
	faqs      map[uuid.UUID]entity.FAQ
	lastInput entity.FAQRequest
	listErr   error
	lists     int
}

func newFakeRepo() *fakeFAQRepository {
	return &fakeFAQRepository{faqs: map[uuid.UUID]entity.FAQ{}}
}

func (f *fakeFAQRepository) List(ctx context.Context) ([]entity.FAQ, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	faqs := []entity.FAQ{}
	for _, faq := range f.faqs {
		faqs = append(faqs, faq)
	}
	return faqs, nil
}

func (f *fakeFAQRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error) {
	faq, ok := f.faqs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &faq, nil
}

func (f *fakeFAQRepository) Create(ctx context.Context, req entity.FAQRequest) (*entity.FAQ, error) {
	f.lastInput = req
	faq := entity.FAQ{
		ID:        uuid.Must(uuid.NewV4()),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	f.faqs[faq.ID] = faq
	return &faq, nil
}

func (f *fakeFAQRepository) Update(ctx context.Context, id uuid.UUID, req entity.FAQRequest) (*entity.FAQ, error) {
	f.lastInput = req
	faq, ok := f.faqs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	faq.Question, faq.Answer, faq.Category = req.Question, req.Answer, req.Category
	f.faqs[id] = faq
	return &faq, nil
}

func (f *fakeFAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.faqs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.faqs, id)
	return nil
}

func TestFAQService_CreateNormalizes(t *testing.T) {
	repo := newFakeRepo()
	blank := "  "

	faq, err := NewFAQService(repo, nil).Create(context.Background(), entity.FAQRequest{
		Question: "  Do you deliver to Musanze? ",
		Answer:   "Yes, within 48 hours.\n",
		Category: &blank,
	})

	require.NoError(t, err)
	assert.Equal(t, "Do you deliver to Musanze?", faq.Question)
	assert.Equal(t, "Yes, within 48 hours.", faq.Answer)
	assert.Nil(t, repo.lastInput.Category)
}

func TestFAQService_UpdateMissing(t *testing.T) {
	_, err := NewFAQService(newFakeRepo(), nil).Update(context.Background(), uuid.Must(uuid.NewV4()),
		entity.FAQRequest{Question: "q", Answer: "a"})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFAQService_Delete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewFAQService(repo, nil)
	category := " delivery "

	faq, err := svc.Create(context.Background(), entity.FAQRequest{Question: "q", Answer: "a", Category: &category})
	require.NoError(t, err)
	assert.Equal(t, "delivery", *faq.Category)

	require.NoError(t, svc.Delete(context.Background(), faq.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), faq.ID), repository.ErrNotFound)
}

func TestFAQService_ListError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("timeout")

	_, err := NewFAQService(repo, nil).List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list faqs")
}

func newTestCache(t *testing.T) (*redisService.Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cache, err := redisService.NewRedisService(redisService.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, mr
}

func TestFAQService_ListUsesCache(t *testing.T) {
	cache, mr := newTestCache(t)
	repo := newFakeRepo()
	svc := NewFAQService(repo, cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, entity.FAQRequest{Question: "Do you deliver?", Answer: "Yes"})
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lists)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, mr.Exists(listCacheKey))

	_, err = svc.Create(ctx, entity.FAQRequest{Question: "Warranty?", Answer: "30 days"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(listCacheKey))

	third, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, repo.lists)
}

func TestFAQService_ListFallsBackWhenCacheDown(t *testing.T) {
	cache, mr := newTestCache(t)
	repo := newFakeRepo()
	svc := NewFAQService(repo, cache)

	mr.Close()

	faqs, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, faqs)
	assert.Equal(t, 1, repo.lists)
}
