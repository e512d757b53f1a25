package logger

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 常用字段名
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldDurationMs = "duration_ms"
	FieldUserID     = "user_id"
	FieldError      = "error"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "requestID"
	loggerKey    = "logger"
)

// GinMiddleware 为每个请求分配请求 ID，并在结束时输出一行结构化访问日志
// 4xx 记为 warn，5xx 记为 error
func GinMiddleware(l *Logger) gin.HandlerFunc {
	httpLog := l.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLog := httpLog.With(FieldRequestID, requestID)
		c.Set(loggerKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		args := []any{
			FieldComponent, reqLog.component,
			FieldMethod, c.Request.Method,
			FieldPath, c.Request.URL.Path,
			FieldStatus, status,
			FieldDurationMs, time.Since(start).Milliseconds(),
			FieldClientIP, c.ClientIP(),
		}
		if uid, ok := c.Get("userID"); ok {
			args = append(args, FieldUserID, uid)
		}
		if len(c.Errors) > 0 {
			args = append(args, FieldError, c.Errors.String())
		}
		reqLog.Logger.Log(c.Request.Context(), level, "HTTP 请求完成", args...)
	}
}

// FromContext 取出请求级 Logger，没有时返回默认 slog
func FromContext(c *gin.Context) *Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*Logger); ok {
			return l
		}
	}
	return &Logger{Logger: slog.Default(), component: "http"}
}

// RequestID 返回当前请求 ID
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
