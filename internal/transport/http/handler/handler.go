package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nesia-inc/todo-app-ekram/internal/domain"
	resp "github.com/Nesia-inc/todo-app-ekram/internal/transport/http/response"
)

// writeErr maps the error taxonomy onto HTTP: Validation/Conflict 400,
// NotFound 404, everything else 500.
func writeErr(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, ""))
		return
	}
	switch de.Kind {
	case domain.KindValidation, domain.KindConflict:
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, de.Error()))
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, resp.Error(resp.CodeNotFound, de.Error()))
	default:
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, de.Error()))
	}
}

func pathID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, domain.Validation("invalid " + name)
	}
	return uint(v), nil
}
