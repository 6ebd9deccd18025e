package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/Kishor-Irnak/wave.v0.1/internal/errors"
	"github.com/Kishor-Irnak/wave.v0.1/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验身份提供商签发的令牌并把 uid 写入上下文
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "需要认证"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "无效的认证格式"))
			c.Abort()
			return
		}

		uid, err := util.ValidateProviderToken(parts[1])
		if err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrUnauthorized, "无效或过期的令牌", err))
			c.Abort()
			return
		}

		c.Set("uid", uid)

		select {
		case <-ctx.Done():
			errors.HandleError(c, errors.New(errors.ErrTimeout, "请求超时"))
			c.Abort()
			return
		default:
			c.Next()
		}
	}
}
