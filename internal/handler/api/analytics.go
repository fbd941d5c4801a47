package api

import (
	"net/http"

	reqdto "queueless/internal/handler/dto/request"
	resdto "queueless/internal/handler/dto/response"
	"queueless/internal/handler/httperr"
	"queueless/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	q queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{q: q}
}

// @Summary Queue analytics
// @Description Status summary, peak booking hours and department usage for a day range
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	var q reqdto.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to are required", nil)
		return
	}
	from, to, err := q.Range()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.Analytics(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnalyticsView(view))
}
