// Package auth 接口认证：JWT 令牌签发、校验、HTTP 中间件
//
// 账号与密码由外部身份服务商托管，服务端不存储任何口令。
// 客户端先在服务商侧完成登录，再用邮箱到 GET /jwt 换取本服务的访问令牌。
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey context 键类型
type contextKey string

const ctxKeyEmail contextKey = "auth_email"

// Config 认证配置
type Config struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

// DefaultConfig 返回默认认证配置
func DefaultConfig() Config {
	return Config{
		JWTSecret:      "",
		AccessTokenTTL: time.Hour,
	}
}

// Enabled 是否启用认证
// 未配置 JWT_SECRET 时进入无认证模式，所有受保护路由直接放行
func (c Config) Enabled() bool {
	return c.JWTSecret != ""
}

// Claims JWT 声明
// 只承载邮箱：角色与审核状态以数据库实时为准，不写进令牌
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// GenerateToken 为邮箱签发访问令牌
func GenerateToken(cfg Config, email string) (string, error) {
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken 解析并验证 JWT
func ParseToken(cfg Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// WithEmail 将认证邮箱注入 context
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ctxKeyEmail, email)
}

// GetEmail 从 context 获取认证邮箱
// 返回空字符串表示请求未经认证（无认证模式或公开路由）
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(ctxKeyEmail).(string)
	return email
}
