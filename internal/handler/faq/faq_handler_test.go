package faq

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFAQService struct {
	faqs map[uuid.UUID]entity.FAQ
	err  error
}

func (f *fakeFAQService) List(ctx context.Context) ([]entity.FAQ, error) {
	if f.err != nil {
		return nil, f.err
	}
	faqs := []entity.FAQ{}
	for _, faq := range f.faqs {
		faqs = append(faqs, faq)
	}
	return faqs, nil
}

func (f *fakeFAQService) Create(ctx context.Context, req entity.FAQRequest) (*entity.FAQ, error) {
	faq := entity.FAQ{ID: uuid.Must(uuid.NewV4()), Question: req.Question, Answer: req.Answer, CreatedAt: time.Now()}
	f.faqs[faq.ID] = faq
	return &faq, nil
}

func (f *fakeFAQService) Update(ctx context.Context, id uuid.UUID, req entity.FAQRequest) (*entity.FAQ, error) {
	faq, ok := f.faqs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	faq.Question, faq.Answer = req.Question, req.Answer
	f.faqs[id] = faq
	return &faq, nil
}

func (f *fakeFAQService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.faqs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.faqs, id)
	return nil
}

func setupRouter(svc *fakeFAQService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFAQHandler(svc)

	r := gin.New()
	r.GET("/faqs", h.ListFAQs)
	r.POST("/admin/faqs", h.CreateFAQ)
	r.PUT("/admin/faqs/:id", h.UpdateFAQ)
	r.DELETE("/admin/faqs/:id", h.DeleteFAQ)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestFAQHandler_CRUD(t *testing.T) {
	svc := &fakeFAQService{faqs: map[uuid.UUID]entity.FAQ{}}
	r := setupRouter(svc)

	rec := serve(r, http.MethodPost, "/admin/faqs", `{"question":"Do you deliver?","answer":"Yes"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.faqs, 1)

	var id uuid.UUID
	for k := range svc.faqs {
		id = k
	}

	rec = serve(r, http.MethodPut, "/admin/faqs/"+id.String(), `{"question":"Do you deliver?","answer":"Yes, countrywide"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "countrywide")

	rec = serve(r, http.MethodGet, "/faqs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = serve(r, http.MethodDelete, "/admin/faqs/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodDelete, "/admin/faqs/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFAQHandler_Validation(t *testing.T) {
	r := setupRouter(&fakeFAQService{faqs: map[uuid.UUID]entity.FAQ{}})

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/admin/faqs", `{"question":"no answer"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/admin/faqs/not-a-uuid", `{"question":"q","answer":"a"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		serve(r, http.MethodPut, "/admin/faqs/"+uuid.Must(uuid.NewV4()).String(), `{"question":"q","answer":"a"}`).Code)
}

func TestFAQHandler_ListError(t *testing.T) {
	r := setupRouter(&fakeFAQService{err: errors.New("db down")})

	rec := serve(r, http.MethodGet, "/faqs", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch FAQs","success":false}`, rec.Body.String())
}
