package analytics

import (
	"fmt"
	"sort"

	"github.com/rblc/parts-marketplace-backend/internal/entity"
)

const UnknownPage = "(unknown)"

// PageFrequencies counts visits per distinct page in first-seen order.
func PageFrequencies(urls []string) []entity.PageRanking {
	frequencies := make([]entity.PageRanking, 0)
	index := make(map[string]int)

	for _, url := range urls {
		page := url
		if page == "" {
			page = UnknownPage
		}

		if i, ok := index[page]; ok {
			frequencies[i].Count++
			continue
		}

		index[page] = len(frequencies)
		frequencies = append(frequencies, entity.PageRanking{Page: page, Count: 1})
	}

	return frequencies
}

// RankPages returns at most limit pages by visit count, highest first. Pages
// with equal counts keep their first-seen order.
func RankPages(urls []string, limit int) ([]entity.PageRanking, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit=%d", ErrInvalidWindow, limit)
	}

	rankings := PageFrequencies(urls)
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Count > rankings[j].Count
	})

	if len(rankings) > limit {
		rankings = rankings[:limit]
	}

	return rankings, nil
}
