package util

import (
	"errors"
	"net/http"
)

// ErrorKind 区分失败原因，决定对外返回的状态码
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindNotFound
	KindUnprocessable
)

// Status 错误类型对应的 HTTP 状态码
func (k ErrorKind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// AppError 业务错误，Err 保留原始原因用于日志
type AppError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 同类错误视为相等，errors.Is(err, ErrStorage) 可匹配任意存储错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func newKind(kind ErrorKind, msg string) *AppError {
	return &AppError{Kind: kind, Msg: msg}
}

var (
	ErrQuestionNotFound   = newKind(KindNotFound, "question not found")
	ErrQuestionsPageEmpty = newKind(KindNotFound, "no questions on page")
	ErrCategoryNotFound   = newKind(KindUnprocessable, "category not found")
	ErrSearchTermRequired = newKind(KindBadRequest, "searchTerm is required")
	ErrInvalidBody        = newKind(KindBadRequest, "invalid request body")
	ErrInvalidFields      = newKind(KindUnprocessable, "invalid field values")
	ErrStorage            = newKind(KindUnprocessable, "storage failure")
)

// Wrap 保留 sentinel 的类型与信息，并附带原始错误
func Wrap(sentinel *AppError, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: err}
}

// KindOf 非 AppError 一律视为内部错误
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
