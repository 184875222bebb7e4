package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/printshop/internal/domain/errors"
	"github.com/polkiloo/printshop/internal/domain/model"
	"github.com/polkiloo/printshop/internal/server/http/dto"
	"github.com/polkiloo/printshop/internal/server/http/middleware"
)

const codeBadRequest = "BAD_REQUEST"

// CurrentCaller extracts the resolved caller from context.
func CurrentCaller(c *gin.Context) model.Caller {
	val, ok := c.Get(middleware.CallerContextKey)
	if !ok {
		return model.Caller{}
	}
	caller, _ := val.(model.Caller)
	return caller
}

func statusForKind(kind domainErrors.Kind) int {
	switch kind {
	case domainErrors.KindUnauthorized:
		return http.StatusUnauthorized
	case domainErrors.KindInvalidAction:
		return http.StatusBadRequest
	case domainErrors.KindNotFound:
		return http.StatusNotFound
	case domainErrors.KindInvalidTransition, domainErrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	kind := domainErrors.KindOf(err)
	message := err.Error()
	if kind == domainErrors.KindInternal {
		message = "internal error"
	}
	c.AbortWithStatusJSON(statusForKind(kind), dto.ErrorResponse{
		Success: false,
		Code:    string(kind),
		Error:   message,
	})
}

func writeBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Success: false,
		Code:    codeBadRequest,
		Error:   message,
	})
}
