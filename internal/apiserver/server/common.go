// Package server 路由配置与核心基础设施
//
// 文件组织：
//   - common.go: Handler 定义和通用工具函数
//   - handler.go: 路由配置
//   - metrics.go: Prometheus 指标
package server

import (
	"encoding/json"
	"net/http"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/apiserver/committee"
	"members-admin/internal/apiserver/member"
	"members-admin/internal/shared/storage"
)

// Handler API 处理器
//
// 所有外部协作方都以接口注入，未配置的可选依赖传 nil：
//   - photos: 对象存储（委员会头像清理）
//   - provider: 身份服务商（账号删除）
type Handler struct {
	store    storage.PersistentStore
	photos   committee.ObjectStore
	provider member.IdentityProvider
	authCfg  auth.Config
	metrics  *Metrics
}

// NewHandler 创建 Handler 实例
func NewHandler(store storage.PersistentStore, photos committee.ObjectStore, provider member.IdentityProvider, authCfg auth.Config) *Handler {
	return &Handler{
		store:    store,
		photos:   photos,
		provider: provider,
		authCfg:  authCfg,
		metrics:  NewMetrics("members_admin"),
	}
}

// writeJSON 将数据以 JSON 格式写入 HTTP 响应
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Health 健康检查接口
//
// 路由: GET /health
// 返回 {"status": "ok"} 表示服务正常运行。
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root 存活探针
//
// 路由: GET /
// 返回固定字符串，便于人工确认服务在线。
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("members admin server is running"))
}
