package api

import (
	"net/http"

	reqdto "queueless/internal/handler/dto/request"
	resdto "queueless/internal/handler/dto/response"
	"queueless/internal/handler/httperr"
	"queueless/internal/handler/middleware"
	"queueless/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	q queries.HistoryQueries
}

func NewHistoryHandler(q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{q: q}
}

// @Summary Token history
// @Description Tokens booked by the current user, newest first
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Maximum items (1-200)"
// @Success 200 {object} resdto.TokenHistoryPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /tokens/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var q reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}
	var after *queries.HistoryCursor
	if q.Cursor != "" {
		cur, err := queries.DecodeAfterCursor(q.Cursor)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		after = cur
	}
	page, err := h.q.TokenHistory(c.Request.Context(), userID, after, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenHistoryPage(page))
}
