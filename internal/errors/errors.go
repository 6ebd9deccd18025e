package errors

import "fmt"

// ErrorCode 定义错误码类型
type ErrorCode int

// 定义系统级错误码 (1000-1999)
const (
	ErrInternal ErrorCode = 1000 + iota
	ErrDatabase
	ErrTimeout
)

// 定义认证相关错误码 (2000-2999)
const (
	ErrUnauthorized ErrorCode = 2000 + iota
	ErrForbidden
	ErrInvalidToken
	ErrTokenExpired
)

// 定义请求相关错误码 (3000-3999)
const (
	ErrBadRequest ErrorCode = 3000 + iota
	ErrValidation
	ErrResourceNotFound
	ErrResourceExists
)

// 定义业务相关错误码 (4000-4999)
const (
	ErrUserNotFound ErrorCode = 4000 + iota
	ErrUserExists
	ErrBlogNotFound
	ErrCommentNotFound
	ErrLikeNotFound
	ErrLikeExists
	ErrFollowNotFound
	ErrFollowExists
)

// AppError 定义应用错误结构
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装已有错误
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Code 获取错误码，非 AppError 一律视为内部错误
func Code(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrInternal
}

// IsNotFound 判断是否为"资源不存在"类错误
func IsNotFound(err error) bool {
	switch Code(err) {
	case ErrResourceNotFound, ErrUserNotFound, ErrBlogNotFound, ErrCommentNotFound, ErrLikeNotFound, ErrFollowNotFound:
		return true
	}
	return false
}

// IsConflict 判断是否为唯一性/幂等性冲突错误
func IsConflict(err error) bool {
	switch Code(err) {
	case ErrResourceExists, ErrUserExists, ErrLikeExists, ErrFollowExists:
		return true
	}
	return false
}
