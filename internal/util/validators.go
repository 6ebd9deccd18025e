package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// ValidateHandle 验证用户名格式：字母、数字、下划线，长度3到30
func ValidateHandle(fl validator.FieldLevel) bool {
	handle, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return handlePattern.MatchString(handle)
}
