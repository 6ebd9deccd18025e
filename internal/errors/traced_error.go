package errors

import (
	"runtime/debug"
	"time"
)

// TracedError 带追踪信息的错误
type TracedError struct {
	*AppError
	Stack     string
	Timestamp time.Time
	Context   ErrorContext
}

// ErrorContext 错误上下文信息
type ErrorContext struct {
	Path      string
	Method    string
	ClientIP  string
	Timestamp time.Time
}

// NewTracedError 创建带追踪信息的错误
func NewTracedError(err error, ctx ErrorContext) *TracedError {
	var appErr *AppError
	if ae, ok := err.(*AppError); ok {
		appErr = ae
	} else {
		appErr = &AppError{
			Code:    ErrInternal,
			Message: err.Error(),
			Err:     err,
		}
	}

	return &TracedError{
		AppError:  appErr,
		Stack:     string(debug.Stack()),
		Timestamp: time.Now(),
		Context:   ctx,
	}
}
