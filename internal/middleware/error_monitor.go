package middleware

import (
	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorMonitorMiddleware 收集请求处理中产生的错误并送入分析器
func ErrorMonitorMiddleware(analytics *errors.ErrorAnalytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			appErr, ok := e.Err.(*errors.AppError)
			if !ok {
				appErr = errors.Wrap(errors.ErrInternal, "未分类错误", e.Err)
			}

			traced := errors.NewTracedError(appErr, errors.ErrorContext{
				Path:     c.Request.URL.Path,
				Method:   c.Request.Method,
				ClientIP: c.ClientIP(),
			})
			analytics.Record(traced)

			zap.L().Error("请求处理错误",
				zap.Int("error_code", int(appErr.Code)),
				zap.String("error_message", appErr.Message),
				zap.Error(appErr.Err),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
		}
	}
}
