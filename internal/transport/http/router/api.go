package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Nesia-inc/todo-app-ekram/internal/transport/http/handler"
	mdw "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, uh *handler.UserHandler, th *handler.TaskHandler, sh *handler.StatsHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	uh.Mount(api)
	th.Mount(api)
	sh.Mount(api)

	return r
}
