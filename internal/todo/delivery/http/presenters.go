package http

import (
	"time"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/response"
)

type createReq struct {
	Title   string `json:"title" binding:"required"`
	DueDate string `json:"due_date"` // ISO date or a phrase like "tomorrow"
}

type taskResp struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	DueDate         *response.Date `json:"due_date"`
	CalendarEventID string         `json:"calendar_event_id,omitempty"`
	CreatedAt       string         `json:"created_at"`
}

type createResp struct {
	Task       taskResp `json:"task"`
	Duplicate  bool     `json:"duplicate"`
	Backfilled bool     `json:"backfilled"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

type deleteResp struct {
	Deleted int64 `json:"deleted"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		CalendarEventID: t.CalendarEventID,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	return resp
}

func (h *handler) newCreateResp(out todo.CreateOutput) createResp {
	return createResp{
		Task:       newTaskResp(out.Task),
		Duplicate:  out.Duplicate,
		Backfilled: out.Backfilled,
	}
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	resp := listResp{Tasks: make([]taskResp, 0, len(tasks)), Total: len(tasks)}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}
