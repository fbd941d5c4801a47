package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	reqdto "queueless/internal/handler/dto/request"
	resdto "queueless/internal/handler/dto/response"
	"queueless/internal/handler/httperr"
	"queueless/internal/handler/middleware"
	"queueless/internal/pkg/clock"
	"queueless/internal/usecase/commands"
	"queueless/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueueHandler struct {
	cmds  commands.BookingCommands
	q     queries.QueueQueries
	clock clock.Clock
	loc   *time.Location
}

func NewQueueHandler(cmds commands.BookingCommands, q queries.QueueQueries, clk clock.Clock, loc *time.Location) *QueueHandler {
	return &QueueHandler{cmds: cmds, q: q, clock: clk, loc: loc}
}

// @Summary Book a token
// @Description Join the department queue at the slot covering the requested time
// @Tags queue
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param request body reqdto.BookTokenRequest false "Booking request"
// @Success 201 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /queue/departments/{departmentId}/tokens [post]
func (h *QueueHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	deptID, err := uuid.Parse(c.Param("departmentId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid department id", nil)
		return
	}
	// an empty body books for now
	var req reqdto.BookTokenRequest
	if err = c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.BookToken(c.Request.Context(), commands.BookTokenInput{
		UserID:        userID,
		DepartmentID:  deptID,
		RequestedTime: req.RequestedTime,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", tokenPath(view.DepartmentID, view.Day, view.Number))
	c.JSON(http.StatusCreated, resdto.FromTokenView(view))
}

// @Summary Mark token served
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param number path int true "Token number"
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /queue/departments/{departmentId}/tokens/{number}/serve [post]
func (h *QueueHandler) Serve(c *gin.Context) {
	h.complete(c, queue.StatusServed)
}

// @Summary Mark token missed
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param number path int true "Token number"
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /queue/departments/{departmentId}/tokens/{number}/miss [post]
func (h *QueueHandler) Miss(c *gin.Context) {
	h.complete(c, queue.StatusMissed)
}

func (h *QueueHandler) complete(c *gin.Context, outcome queue.Status) {
	deptID, day, number, ok := h.tokenRef(c)
	if !ok {
		return
	}
	view, err := h.cmds.CompleteToken(c.Request.Context(), commands.CompleteTokenInput{
		DepartmentID: deptID,
		Day:          day,
		Number:       number,
		Outcome:      outcome,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenView(view))
}

// @Summary Get a token
// @Description Live status, position and estimate of one token
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param number path int true "Token number"
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /queue/departments/{departmentId}/tokens/{number} [get]
func (h *QueueHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	deptID, day, number, ok := h.tokenRef(c)
	if !ok {
		return
	}
	actor := queries.Actor{UserID: userID, Role: role}
	view, err := h.q.GetToken(c.Request.Context(), actor, deptID, day, number)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTokenView(view))
}

// @Summary List a department queue
// @Description Waiting tokens in order with positions and estimates
// @Tags queue
// @Produce json
// @Security BearerAuth
// @Param departmentId path string true "Department ID"
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.QueueResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /queue/departments/{departmentId}/tokens [get]
func (h *QueueHandler) List(c *gin.Context) {
	deptID, err := uuid.Parse(c.Param("departmentId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid department id", nil)
		return
	}
	day, ok := h.day(c)
	if !ok {
		return
	}
	view, err := h.q.ListQueue(c.Request.Context(), deptID, day)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQueueView(view))
}

func (h *QueueHandler) tokenRef(c *gin.Context) (uuid.UUID, timeslot.Day, int64, bool) {
	deptID, err := uuid.Parse(c.Param("departmentId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid department id", nil)
		return uuid.Nil, timeslot.Day{}, 0, false
	}
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid token number", nil)
		return uuid.Nil, timeslot.Day{}, 0, false
	}
	day, ok := h.day(c)
	if !ok {
		return uuid.Nil, timeslot.Day{}, 0, false
	}
	return deptID, day, number, true
}

func (h *QueueHandler) day(c *gin.Context) (timeslot.Day, bool) {
	var q reqdto.DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return timeslot.Day{}, false
	}
	day, err := q.DayOr(timeslot.DayOf(h.clock.Now(), h.loc))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return timeslot.Day{}, false
	}
	return day, true
}

func tokenPath(deptID uuid.UUID, day string, number int64) string {
	return "/api/queue/departments/" + deptID.String() + "/tokens/" + strconv.FormatInt(number, 10) + "?day=" + day
}
