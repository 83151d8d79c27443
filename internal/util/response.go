package util

import (
	"errors"
	"net/http"
	"trivia_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "internal server error",
}

// StatusMessage 固定的错误提示文案
func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

// Success 在 data 上追加 success: true
func Success(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Error(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: StatusMessage(code),
	})
}

func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound)
}

func Unprocessable(c *gin.Context) {
	Error(c, http.StatusUnprocessableEntity)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError)
}

// AbortWithError 按错误类型输出响应，原因只写日志
func AbortWithError(c *gin.Context, err error) {
	kind := KindOf(err)
	code := kind.Status()

	fields := []zap.Field{
		zap.String("kind", kind.String()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}
	if id, ok := c.Get(RequestIDKey); ok {
		fields = append(fields, zap.Any("request_id", id))
	}

	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Err != nil {
		logger.Log.Error("Request failed", fields...)
	} else {
		logger.Log.Debug("Request rejected", fields...)
	}

	c.Set(ErrorKindKey, kind.String())
	Error(c, code)
}
