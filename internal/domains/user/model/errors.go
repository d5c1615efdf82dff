package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shelftrack-backend/internal/shared/response"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

type errorConfig struct {
	Status  int
	Title   string
	Message string
}

var userErrorMap = map[error]errorConfig{
	ErrUserNotFound:       {http.StatusNotFound, "USER_001", "User not found"},
	ErrEmailTaken:         {http.StatusConflict, "USER_002", "Email already registered"},
	ErrInvalidCredentials: {http.StatusUnauthorized, "USER_003", "Invalid email or password"},
	ErrInvalidToken:       {http.StatusUnauthorized, "USER_004", "Invalid or expired refresh token"},
}

// HandleUserError writes the mapped error response and reports whether err was non-nil.
func HandleUserError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	for target, cfg := range userErrorMap {
		if errors.Is(err, target) {
			response.ErrorResponse(c, cfg.Status, cfg.Title, cfg.Message)
			return true
		}
	}
	response.InternalServerError(c, err.Error())
	return true
}
