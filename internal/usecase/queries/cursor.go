package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"queueless/internal/pkg/errs"

	"github.com/google/uuid"
)

const CursorVersionV1 = "v1"

var ErrInvalidCursor = errs.New("invalid cursor")

// HistoryCursor points just past the last item of a page ordered by (booked_at, id) descending.
type HistoryCursor struct {
	BookedAt time.Time
	ID       uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	payload := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (*HistoryCursor, error) {
	if cursor == "" {
		return nil, errs.Wrap(ErrInvalidCursor, "cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidCursor, "cursor is not base64url")
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return nil, errs.Wrap(ErrInvalidCursor, "unknown cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return nil, errs.Wrap(ErrInvalidCursor, "expected '<micros>-<uuid>'")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidCursor, "invalid timestamp %q", micros)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errs.Wrapf(ErrInvalidCursor, "invalid id %q", rawID)
	}
	return &HistoryCursor{BookedAt: time.UnixMicro(ts).UTC(), ID: id}, nil
}

func (c *HistoryCursor) Encode() string {
	if c == nil {
		return ""
	}
	return EncodeAfterCursor(c.BookedAt, c.ID)
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
