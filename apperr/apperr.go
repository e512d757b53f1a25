// Package apperr 定义业务错误类型及其到 HTTP 状态码的映射
package apperr

import (
	"errors"
	"net/http"
)

// Kind 错误分类
type Kind int

const (
	KindInternal       Kind = iota // 500
	KindValidation                 // 400 参数不合法
	KindAuthentication             // 401 未认证或身份无法解析
	KindNotFound                   // 404 不存在或不属于当前用户
	KindConflict                   // 409 唯一性冲突
	KindIntegrity                  // 400 存储层拒绝写入，消息中带上底层原因
)

// Error 业务错误
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Integrity 存储层约束失败，返回给客户端的消息包含原因
func Integrity(msg string, err error) *Error {
	return &Error{Kind: KindIntegrity, Message: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf 返回错误分类，非 *Error 一律视为内部错误
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status 返回错误对应的 HTTP 状态码
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindIntegrity:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage 返回可以展示给客户端的消息
// Integrity 需要带上原因；其他分类只返回 Message
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Kind == KindIntegrity {
		return e.Error()
	}
	return e.Message
}
