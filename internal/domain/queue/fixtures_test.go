//go:build unit

package queue_test

import (
	"testing"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	deptID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testDay = timeslot.NewDay(2025, time.March, 10)
	testKey = queue.NewDayKey(deptID, testDay)
)

func at(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.UTC)
}

func slotFixture(t *testing.T, start, end timeslot.TimeOfDay, capacity int, avg time.Duration) timeslot.TimeSlot {
	t.Helper()
	slot, err := timeslot.NewTimeSlot(uuid.New(), deptID, start, end, capacity, avg)
	require.NoError(t, err)
	return slot
}

func tokenFixture(number int64, slotID uuid.UUID) queue.Token {
	return queue.NewToken(uuid.New(), number, testKey, slotID, uuid.New(), "General Hospital", at(8, 0))
}
