package api

import (
	"net/http"

	resdto "queueless/internal/handler/dto/response"
	"queueless/internal/handler/httperr"
	"queueless/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	q queries.DirectoryQueries
}

func NewDepartmentHandler(q queries.DirectoryQueries) *DepartmentHandler {
	return &DepartmentHandler{q: q}
}

// @Summary List departments
// @Description Departments open for booking, grouped by service center, with their daily slots
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.DepartmentResponse
// @Failure 401 {object} httperr.Response
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	views, err := h.q.ListDepartments(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": resdto.FromDepartmentViews(views)})
}
