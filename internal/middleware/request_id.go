package middleware

import (
	"time"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID 透传或生成 X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(util.RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(util.RequestIDKey, id)
		c.Writer.Header().Set(util.RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog 请求日志
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(util.RequestIDKey)),
		}
		if kind := c.GetString(util.ErrorKindKey); kind != "" {
			fields = append(fields, zap.String("error_kind", kind))
		}

		if c.Writer.Status() >= 500 {
			logger.Log.Warn("Request", fields...)
			return
		}
		logger.Log.Info("Request", fields...)
	}
}
