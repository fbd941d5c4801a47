package queries

import (
	"context"

	"queueless/internal/infra"
	"queueless/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

type TokenHistoryPage struct {
	Items []*TokenHistoryItem
	Next  *HistoryCursor
}

type HistoryQueries interface {
	TokenHistory(ctx context.Context, userID uuid.UUID, after *HistoryCursor, limit int) (*TokenHistoryPage, error)
}

type TokenHistoryReadStore interface {
	// ListByUser returns up to limit items strictly older than after (nil for the first page).
	ListByUser(ctx context.Context, userID uuid.UUID, after *HistoryCursor, limit int) ([]*TokenHistoryItem, error)
}

type historyQueriesImpl struct {
	readStore TokenHistoryReadStore
}

func NewHistoryQueries(readStore TokenHistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{readStore: readStore}
}

func (q *historyQueriesImpl) TokenHistory(ctx context.Context, userID uuid.UUID, after *HistoryCursor, limit int) (*TokenHistoryPage, error) {
	limit = ValidateLimit(limit)

	// one extra row tells whether another page exists
	items, err := q.readStore.ListByUser(ctx, userID, after, limit+1)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &TokenHistoryPage{Items: []*TokenHistoryItem{}}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	page := &TokenHistoryPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[limit-1]
		page.Next = &HistoryCursor{BookedAt: last.BookedAt, ID: last.ID}
	}
	return page, nil
}
