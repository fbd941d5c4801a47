//go:build e2e

package queue_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"queueless/internal/domain/user"
	"queueless/internal/handler/dto/response"
	"queueless/tests/common/authtest"
	"queueless/tests/common/dbtest"
	"queueless/tests/common/httptest"
	"queueless/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	tokensURL  = "/api/queue/departments/%s/tokens"
	historyURL = "/api/tokens/history"
)

type QueueSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *QueueSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *QueueSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestQueueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QueueSuite))
}

// department opens a whole-day slot and loads it into the live registry.
func (s *QueueSuite) department(t *testing.T, name string, capacity int) uuid.UUID {
	t.Helper()
	centerID := dbtest.CreateServiceCenter(t, s.DB, dbtest.DefaultServiceCenter)
	deptID := dbtest.CreateDepartment(t, s.DB, centerID, name)
	dbtest.CreateTimeSlot(t, s.DB, deptID, "00:00", "23:59", capacity, 10)
	require.NoError(t, s.Sync.Sync(context.Background()))
	return deptID
}

// =============================================================================
// TestBookAndServe
// =============================================================================

func (s *QueueSuite) TestBookAndServe() {
	s.Run("Normal case: tokens are numbered, estimated and served in order", func() {
		t := s.T()
		deptID := s.department(t, "Radiology", 2)
		citizen := s.jwt.GenerateToken(t, uuid.New(), user.RoleCitizen)
		operator := s.jwt.GenerateToken(t, uuid.New(), user.RoleOperator)
		url := fmt.Sprintf(tokensURL, deptID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, citizen)
		var first response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, citizen)
		var second response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &second)

		expected := &response.TokenResponse{
			Number:            2,
			Label:             "T-002",
			DepartmentID:      deptID.String(),
			DepartmentName:    "Radiology",
			ServiceCenterName: dbtest.DefaultServiceCenter,
			Status:            "QUEUED",
			Position:          ptr(1),
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.TokenResponse{}, "ID", "Day", "SlotID", "UserID", "BookedAt", "EstimatedServeTime", "EstimatedWaitMinutes"),
		}
		if diff := cmp.Diff(expected, &second, opts...); diff != "" {
			t.Errorf("token response mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, first.EstimatedServeTime)
		require.NotNil(t, second.EstimatedServeTime)
		require.Equal(t, 10*time.Minute, second.EstimatedServeTime.Sub(*first.EstimatedServeTime))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, citizen)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Time slot is full")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/1/serve", nil, operator)
		var served response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &served)
		require.Equal(t, "SERVED", served.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"/2", nil, citizen)
		var waiting response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &waiting)
		require.NotNil(t, waiting.Position)
		require.Equal(t, 0, *waiting.Position)
		require.NotNil(t, waiting.EstimatedServeTime)
		require.True(t, first.EstimatedServeTime.Equal(*waiting.EstimatedServeTime))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, operator)
		var q response.QueueResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &q)
		require.Equal(t, 1, q.Served)
		require.Equal(t, int64(3), q.LastNumber)
		require.Len(t, q.Waiting, 1)
	})

	s.Run("Error case: citizens cannot serve or list", func() {
		t := s.T()
		deptID := s.department(t, "Cardiology", 5)
		citizen := s.jwt.GenerateToken(t, uuid.New(), user.RoleCitizen)
		url := fmt.Sprintf(tokensURL, deptID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, citizen)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/1/serve", nil, citizen)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, citizen)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()
		deptID := s.department(t, "Dermatology", 5)
		expired := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleCitizen)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(tokensURL, deptID), nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestHistory
// =============================================================================

func (s *QueueSuite) TestHistory() {
	s.Run("Normal case: booked tokens are persisted and paged", func() {
		t := s.T()
		deptID := s.department(t, "Orthopedics", 10)
		citizen := s.jwt.GenerateToken(t, uuid.New(), user.RoleCitizen)
		url := fmt.Sprintf(tokensURL, deptID)

		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, citizen)
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		}

		// persistence is asynchronous
		require.Eventually(t, func() bool {
			var count int
			err := s.DB.QueryRow(context.Background(),
				"SELECT count(*) FROM queue_tokens WHERE department_id = $1", deptID).Scan(&count)
			return err == nil && count == 3
		}, 5*time.Second, 50*time.Millisecond)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL+"?limit=2", nil, citizen)
		var page response.TokenHistoryPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 2)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL+"?limit=2&cursor="+page.NextCursor, nil, citizen)
		var rest response.TokenHistoryPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rest)
		require.Len(t, rest.Items, 1)
		require.Empty(t, rest.NextCursor)

		seen := map[int64]bool{}
		for _, it := range append(page.Items, rest.Items...) {
			seen[it.Number] = true
		}
		require.Equal(t, map[int64]bool{1: true, 2: true, 3: true}, seen)
	})
}

func ptr[T any](v T) *T { return &v }
