package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. An equivalent existing task is reported as a duplicate instead of being inserted.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errInvalidPayload, err))
		return
	}

	input := todo.CreateInput{Title: req.Title}
	if s := strings.TrimSpace(req.DueDate); s != "" {
		due, err := h.dates.Parse(s, time.Now())
		if err != nil {
			h.respondError(c, fmt.Errorf("%w: unrecognized due_date %q", errInvalidPayload, s))
			return
		}
		input.DueDate = &due
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task, newest first.
// @Tags        Todos
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.ListAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAll: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Search godoc
// @Summary     Search tasks
// @Description Returns tasks whose title contains the query, case-insensitive.
// @Tags        Todos
// @Produce     json
// @Param       query query string true "Title substring"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /todos/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Search(ctx, c.Query("query"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by id. The mirrored calendar event is removed as well.
// @Tags        Todos
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.respondError(c, fmt.Errorf("%w: id must be an integer", errInvalidPayload))
		return
	}

	n, err := h.uc.DeleteByIDs(ctx, []int64{id})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteByIDs: %v", err)
		h.respondError(c, err)
		return
	}
	if n == 0 {
		h.respondError(c, todo.ErrTaskNotFound)
		return
	}

	response.OK(c, deleteResp{Deleted: n})
}
