//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

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

func TestDepartmentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockDirectoryQueries(ctrl)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	auth := middleware.NewAuthMiddleware(roleValidator{})
	router.GET("/api/departments", auth.RequireAuth(), api.NewDepartmentHandler(q).List)

	deptID := uuid.New()
	centerID := uuid.New()
	slotID := uuid.New()

	t.Run("success: citizens see departments with their slots", func(t *testing.T) {
		q.EXPECT().ListDepartments(gomock.Any()).Return([]*queries.DepartmentView{{
			ID:                deptID,
			Name:              "Cardiology",
			ServiceCenterID:   centerID,
			ServiceCenterName: "Central Clinic",
			Slots: []queries.SlotView{{
				ID:                    slotID,
				Start:                 "09:00",
				End:                   "12:00",
				Capacity:              20,
				AverageServiceMinutes: 10,
			}},
		}}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/departments", nil, "citizen")
		var body struct {
			Departments []resdto.DepartmentResponse `json:"departments"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body.Departments, 1)
		got := body.Departments[0]
		assert.Equal(t, deptID.String(), got.ID)
		assert.Equal(t, "Central Clinic", got.ServiceCenterName)
		require.Len(t, got.Slots, 1)
		assert.Equal(t, slotID.String(), got.Slots[0].ID)
		assert.Equal(t, 20, got.Slots[0].Capacity)
		assert.Equal(t, 10, got.Slots[0].AverageServiceMinutes)
	})

	t.Run("success: empty directory", func(t *testing.T) {
		q.EXPECT().ListDepartments(gomock.Any()).Return([]*queries.DepartmentView{}, nil)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/departments", nil, "citizen")
		var body struct {
			Departments []resdto.DepartmentResponse `json:"departments"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Empty(t, body.Departments)
	})

	t.Run("error: unauthenticated", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/departments", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("error: unexpected failure", func(t *testing.T) {
		q.EXPECT().ListDepartments(gomock.Any()).Return(nil, errors.New("boom"))
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/departments", nil, "citizen")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal error")
	})
}
