package utils

import (
	"github.com/gin-gonic/gin"
)

// Response format standar semua endpoint, biar frontend enak bacanya
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"` // omitempty: kalau null, ga usah dimunculin
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}
