//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"queueless/internal/pkg/errs"
	"queueless/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	bookedAt := time.Date(2025, time.March, 10, 9, 15, 30, 123456789, time.UTC)

	cur, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(bookedAt, id))
	require.NoError(t, err)
	assert.Equal(t, id, cur.ID)
	assert.True(t, cur.BookedAt.Equal(bookedAt.Truncate(time.Microsecond)))
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"unknown version", enc("v9:1-" + uuid.NewString())},
		{"missing separator", enc("v1:12345")},
		{"bad timestamp", enc("v1:abc-" + uuid.NewString())},
		{"bad id", enc("v1:12345-not-a-uuid")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.DecodeAfterCursor(tt.cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		})
	}
}

func TestHistoryCursor_EncodeNil(t *testing.T) {
	var cur *queries.HistoryCursor
	assert.Empty(t, cur.Encode())
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultHistoryLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultHistoryLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxHistoryLimit, queries.ValidateLimit(queries.MaxHistoryLimit+1))
}
