package server

import (
	"net/http"

	"members-admin/internal/apiserver/article"
	"members-admin/internal/apiserver/auth"
	"members-admin/internal/apiserver/career"
	"members-admin/internal/apiserver/committee"
	"members-admin/internal/apiserver/execmsg"
	"members-admin/internal/apiserver/member"
)

// Router 返回配置好的 HTTP 路由
//
// 路由规则：
//
// 基础:
//   - GET /            - 存活探针
//   - GET /health      - 健康检查
//   - GET /metrics     - Prometheus 指标
//   - GET /jwt?email=  - 令牌签发
//
// 会员 (Member):
//   - GET    /members/generalmembers  - 列表（status/role 过滤）
//   - POST   /members                 - 自助注册（强制 pending）
//   - GET    /members/{id}            - 详情
//   - DELETE /members/{id}            - 删除
//   - PUT    /members/{id}            - 更新档案
//   - PUT    /members/status/{id}     - 审核状态
//   - PUT    /members/admin/{id} 等   - 角色晋升/降级
//   - GET    /members/email/{email} 等 - 状态/角色布尔
//   - DELETE /members/firebase/{uid}  - 删除身份服务商账号
//
// 其余领域：/committeeMembers、/articles、/career/jobs、
// /career/interns、/executiveMessages，详见各领域包。
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	// 基础接口
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /metrics", MetricsHandler())

	// 令牌签发
	auth.NewHandler(h.store, h.authCfg).RegisterRoutes(mux)

	// 各领域接口（写路由的认证在各包 RegisterRoutes 内显式声明）
	member.NewHandler(h.store, h.provider, h.authCfg).RegisterRoutes(mux)
	committee.NewHandler(h.store, h.photos, h.authCfg).RegisterRoutes(mux)
	article.NewHandler(h.store, h.authCfg).RegisterRoutes(mux)
	career.NewHandler(h.store, h.authCfg).RegisterRoutes(mux)
	execmsg.NewHandler(h.store, h.authCfg).RegisterRoutes(mux)

	// 指标 + CORS
	handler := h.metrics.MetricsMiddleware(mux)
	return corsMiddleware(handler)
}

// corsMiddleware 添加 CORS 头支持跨域请求
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
