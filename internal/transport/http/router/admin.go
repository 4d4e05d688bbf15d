package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nesia-inc/todo-app-ekram/internal/core/auth"
	"github.com/Nesia-inc/todo-app-ekram/internal/transport/http/handler"
	mdw "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, adminH *handler.AdminHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.MaxBodyBytes(1<<20),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	adminH.MountPublic(admin)

	protected := admin.Group("")
	protected.Use(mdw.AuthJWT(jwter, "admin"))
	adminH.MountProtected(protected)

	return r
}
