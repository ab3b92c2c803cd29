package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	visitService "github.com/rblc/parts-marketplace-backend/internal/service/visit"
	"github.com/rblc/parts-marketplace-backend/pkg/metrics"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

const maxTrackBodyBytes = 16 << 10

type SnapshotService interface {
	GetSnapshot(ctx context.Context, now time.Time) (*entity.AnalyticsSnapshot, error)
}

type VisitTracker interface {
	TrackVisit(ctx context.Context, req entity.TrackVisitRequest, ip string) (*entity.Visit, bool, error)
}

type AnalyticsHandler struct {
	snapshots SnapshotService
	tracker   VisitTracker
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewAnalyticsHandler(snapshots SnapshotService, tracker VisitTracker, m *metrics.Metrics, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		snapshots: snapshots,
		tracker:   tracker,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// GetAnalytics godoc
// @Summary      Visitor analytics
// @Description  Totals, last 7 days per UTC day and the 10 most visited pages. Recomputed on every call.
// @Tags         /api/v1/admin/analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.AnalyticsSnapshot
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  map[string]string
// @Router       /admin/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	snapshot, err := h.snapshots.GetSnapshot(c.Request.Context(), h.now())
	if err != nil {
		h.metrics.AnalyticsFailed()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, snapshot)
}

// TrackVisit godoc
// @Summary      Record a page visit
// @Description  Accepts a JSON body with any content type, as sent by navigator.sendBeacon.
// @Description  Repeated visits of the same page from the same IP within 30 seconds are acknowledged but not stored.
// @Tags         /api/v1/analytics
// @Accept       json
// @Produce      json
// @Param        visit  body      entity.TrackVisitRequest  true  "Visited page"
// @Success      200    {object}  map[string]bool
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /analytics/track [post]
func (h *AnalyticsHandler) TrackVisit(c *gin.Context) {
	req, err := readTrackRequest(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	_, recorded, err := h.tracker.TrackVisit(c.Request.Context(), req, utils.ClientIP(c.Request))
	if err != nil {
		if errors.Is(err, visitService.ErrPageURLRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page_url required"})
			return
		}
		h.logger.Error("analytics track error", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record visit"})
		return
	}

	h.metrics.VisitTracked(recorded)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// readTrackRequest decodes the body regardless of Content-Type. Fields that
// are not strings are treated as absent.
func readTrackRequest(r *http.Request) (entity.TrackVisitRequest, error) {
	var req entity.TrackVisitRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTrackBodyBytes))
	if err != nil {
		return req, err
	}
	if len(body) == 0 {
		return req, nil
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, err
	}

	req.PageURL, _ = fields["page_url"].(string)
	req.UserAgent, _ = fields["user_agent"].(string)
	return req, nil
}
