package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nesia-inc/todo-app-ekram/internal/core/auth"
	"github.com/Nesia-inc/todo-app-ekram/internal/service"
	resp "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/response"
	"github.com/Nesia-inc/todo-app-ekram/pkg/utils"
)

// AdminCredential is the single back-office login provisioned in config.
type AdminCredential struct {
	Username     string
	PasswordHash string
}

type AdminHandler struct {
	users *service.UserService
	admin *service.AdminService
	cred  AdminCredential
	jwter *auth.JWTer
}

func NewAdminHandler(users *service.UserService, admin *service.AdminService, cred AdminCredential, jwter *auth.JWTer) *AdminHandler {
	return &AdminHandler{users: users, admin: admin, cred: cred, jwter: jwter}
}

func (h *AdminHandler) MountPublic(g *gin.RouterGroup) {
	g.POST("/auth/login", h.login)
}

func (h *AdminHandler) MountProtected(g *gin.RouterGroup) {
	g.GET("/users", h.listUsers)
	g.DELETE("/users/:id", h.deleteUser)
}

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	if in.Username != h.cred.Username || !utils.CheckPassword(in.Password, h.cred.PasswordHash) {
		c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid credentials"))
		return
	}
	tok, err := h.jwter.Issue(in.Username, "admin")
	if err != nil || tok == "" {
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "issue token failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"token": tok, "expiresAt": time.Now().Add(h.jwter.TTL).Unix()}))
}

type adminListQ struct {
	Offset int `form:"offset,default=0"`
	Limit  int `form:"limit,default=20"`
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	var q adminListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	out, err := h.admin.ListUsers(c.Request.Context(), q.Offset, q.Limit)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(out))
}

func (h *AdminHandler) deleteUser(c *gin.Context) {
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
	c.JSON(http.StatusOK, resp.OK(report))
}
