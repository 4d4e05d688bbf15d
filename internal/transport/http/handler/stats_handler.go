package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nesia-inc/todo-app-ekram/internal/service"
	resp "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/response"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Mount(g *gin.RouterGroup) {
	g.GET("/stats", h.overview)
}

func (h *StatsHandler) overview(c *gin.Context) {
	st, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(st))
}
