package handler

import (
	"errors"
	"net/http"

	"friends-corner/internal/service"
	"friends-corner/internal/store"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// writeError maps the workflow error taxonomy onto HTTP statuses. fallback is
// the user-visible message for unexpected store failures.
func writeError(c *gin.Context, err error, notFoundMsg, fallback string) {
	var ve service.ValidationError
	switch {
	case errors.As(err, &ve):
		fail(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrDuplicate):
		fail(c, http.StatusConflict, "A record with that name already exists")
	default:
		fail(c, http.StatusInternalServerError, fallback)
	}
}
