package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// Visit is one tracked page view. Rows are append-only.
type Visit struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PageURL   string    `json:"page_url" db:"page_url"`
	UserAgent *string   `json:"user_agent" db:"user_agent"`
	IPAddress *string   `json:"ip_address" db:"ip_address"`
	VisitedAt time.Time `json:"visited_at" db:"visited_at"`
}

type TrackVisitRequest struct {
	PageURL   string `json:"page_url"`
	UserAgent string `json:"user_agent"`
}

// DayBucket is the visit count of one UTC calendar day.
type DayBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"visitors"`
}

type PageRanking struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

// AnalyticsSnapshot is recomputed on every dashboard request.
type AnalyticsSnapshot struct {
	TotalVisitors    int64         `json:"totalVisitors"`
	VisitorsToday    int64         `json:"visitorsToday"`
	VisitorsThisWeek int64         `json:"visitorsThisWeek"`
	ChartData        []DayBucket   `json:"chartData"`
	MostVisitedPages []PageRanking `json:"mostVisitedPages"`
}
