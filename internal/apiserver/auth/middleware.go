package auth

import (
	"log"
	"net/http"
	"strings"
)

// Require 包装需要认证的路由
// 缺少 Authorization 头返回 401；令牌无效或过期返回 403。
// 无认证模式（未配置密钥）下直接放行。
func Require(cfg Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.Enabled() {
			next(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			http.Error(w, `{"error":"invalid authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := ParseToken(cfg, parts[1])
		if err != nil {
			log.Printf("[auth] token parse error: %v", err)
			http.Error(w, `{"error":"forbidden access"}`, http.StatusForbidden)
			return
		}

		next(w, r.WithContext(WithEmail(r.Context(), claims.Email)))
	}
}
