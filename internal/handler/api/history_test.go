//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"queueless/internal/handler/api"
	resdto "queueless/internal/handler/dto/response"
	"queueless/internal/handler/middleware"
	"queueless/internal/usecase/queries"
	"queueless/tests/common/httptest"
	queriesmock "queueless/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockHistoryQueries(ctrl)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	auth := middleware.NewAuthMiddleware(roleValidator{})
	router.GET("/api/tokens/history", auth.RequireAuth(), api.NewHistoryHandler(q).List)

	items := []*queries.TokenHistoryItem{{
		ID:                uuid.New(),
		Number:            5,
		DepartmentID:      uuid.New(),
		DepartmentName:    "Radiology",
		ServiceCenterName: "City Hospital",
		Day:               time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
		Status:            "SERVED",
		BookedAt:          time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC),
	}}

	t.Run("success: first page carries next cursor", func(t *testing.T) {
		next := &queries.HistoryCursor{BookedAt: items[0].BookedAt, ID: items[0].ID}
		q.EXPECT().TokenHistory(gomock.Any(), testUserID, nil, 0).
			Return(&queries.TokenHistoryPage{Items: items, Next: next}, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/tokens/history", nil, "citizen")

		var body resdto.TokenHistoryPageResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "2025-03-09", body.Items[0].Day)
		assert.Equal(t, "SERVED", body.Items[0].Status)
		assert.Equal(t, next.Encode(), body.NextCursor)
	})

	t.Run("success: cursor and limit are forwarded", func(t *testing.T) {
		cursor := queries.EncodeAfterCursor(items[0].BookedAt, items[0].ID)
		want := &queries.HistoryCursor{BookedAt: items[0].BookedAt, ID: items[0].ID}
		q.EXPECT().TokenHistory(gomock.Any(), testUserID, want, 10).
			Return(&queries.TokenHistoryPage{Items: []*queries.TokenHistoryItem{}}, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/tokens/history?limit=10&cursor="+cursor, nil, "citizen")

		var body resdto.TokenHistoryPageResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Empty(t, body.Items)
		assert.Empty(t, body.NextCursor)
	})

	t.Run("error: limit out of range", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/tokens/history?limit=500", nil, "citizen")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid limit")
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/tokens/history?cursor=not-a-cursor", nil, "citizen")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid cursor")
	})

	t.Run("error: read store failure", func(t *testing.T) {
		q.EXPECT().TokenHistory(gomock.Any(), testUserID, nil, 0).Return(nil, errors.New("db down"))
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/tokens/history", nil, "citizen")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
	})
}
