package api

import (
	"errors"
	"io"
	"net/http"

	"budgetapp/apperr"
	"budgetapp/config"
	"budgetapp/logger"

	"github.com/gin-gonic/gin"
)

// Response 失败响应结构
type Response struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message"`
}

// OKResponse 删除成功
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// OK 200 成功响应，直接输出数据
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created 201 成功响应
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Fail 按业务错误分类输出响应
// 内部错误写日志，release 模式下不向客户端暴露详情
func Fail(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		logger.FromContext(c).ErrorContext(c.Request.Context(), "请求处理失败",
			logger.FieldPath, c.FullPath(),
			logger.FieldError, err.Error())
		Error(c, status, config.SafeErrorMessage(err, "服务器内部错误"))
		return
	}
	Error(c, status, apperr.PublicMessage(err))
}

// bindJSON 解析请求体，失败时输出 400
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "请求体必须是合法的 JSON 对象")
		return false
	}
	return true
}

// bindOptionalJSON 同 bindJSON，空请求体按空对象处理
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "请求体必须是合法的 JSON 对象")
		return false
	}
	return true
}
