package util

import (
	"errors"

	"github.com/Kishor-Irnak/wave.v0.1/config"

	"github.com/dgrijalva/jwt-go"
)

// ValidateProviderToken 校验身份提供商签发的 HS256 令牌并返回其中的 uid
// 本服务只做校验，不签发令牌
func ValidateProviderToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("意外的签名算法")
		}
		return []byte(config.AppConfig.AuthSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("无效的令牌")
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", errors.New("令牌缺少 uid 声明")
	}
	return uid, nil
}
