package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nesia-inc/todo-app-ekram/internal/service"
	resp "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/response"
)

type TaskHandler struct {
	tasks *service.TaskService
	stats *service.StatsService
}

func NewTaskHandler(tasks *service.TaskService, stats *service.StatsService) *TaskHandler {
	return &TaskHandler{tasks: tasks, stats: stats}
}

func (h *TaskHandler) Mount(g *gin.RouterGroup) {
	g.POST("/tasks", h.create)
	g.POST("/users/:id/tasks/:taskId/status", h.changeStatus)
}

type createTaskIn struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
	UserID  uint   `json:"userId"`
}

func (h *TaskHandler) create(c *gin.Context) {
	var in createTaskIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	t, err := h.tasks.Create(c.Request.Context(), service.CreateTaskInput{
		Title:   in.Title,
		Content: in.Content,
		Status:  in.Status,
		UserID:  in.UserID,
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	h.stats.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, resp.OK(t))
}

type changeStatusIn struct {
	Status string `json:"status"`
}

func (h *TaskHandler) changeStatus(c *gin.Context) {
	userID, err := pathID(c, "id")
	if err != nil {
		writeErr(c, err)
		return
	}
	taskID, err := pathID(c, "taskId")
	if err != nil {
		writeErr(c, err)
		return
	}
	var in changeStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	t, err := h.tasks.ChangeStatus(c.Request.Context(), userID, taskID, in.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	h.stats.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, resp.OK(t))
}
