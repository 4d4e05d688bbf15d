package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nesia-inc/todo-app-ekram/internal/service"
	resp "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
	stats *service.StatsService
}

func NewUserHandler(users *service.UserService, stats *service.StatsService) *UserHandler {
	return &UserHandler{users: users, stats: stats}
}

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.list)
	g.POST("/users", h.create)
	g.GET("/users/:id", h.get)
	g.PUT("/users/:id", h.update)
	g.DELETE("/users/:id", h.delete)
}

func (h *UserHandler) list(c *gin.Context) {
	out, err := h.users.List(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"users": out}))
}

type createUserIn struct {
	Name string `json:"name"`
}

func (h *UserHandler) create(c *gin.Context) {
	var in createUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.users.Create(c.Request.Context(), in.Name)
	if err != nil {
		writeErr(c, err)
		return
	}
	h.stats.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeErr(c, err)
		return
	}
	out, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(out))
}

func (h *UserHandler) update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeErr(c, err)
		return
	}
	var in createUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.users.Rename(c.Request.Context(), id, in.Name)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

func (h *UserHandler) delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeErr(c, err)
		return
	}
	report, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	h.stats.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, resp.OK(report))
}
