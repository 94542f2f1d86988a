package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"members-admin/internal/shared/model"
)

// MemberStore 会员存储接口（只需按邮箱查询）
type MemberStore interface {
	GetMemberByEmail(ctx context.Context, email string) (*model.Member, error)
}

// Handler 令牌签发 HTTP 处理器
type Handler struct {
	store MemberStore
	cfg   Config
}

// NewHandler 创建令牌处理器
func NewHandler(store MemberStore, cfg Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// RegisterRoutes 注册令牌签发路由
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /jwt", h.IssueToken)
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// IssueToken 为已注册会员签发访问令牌
// GET /jwt?email=...
// 邮箱未注册时返回 403 和空令牌（软拒绝），不泄露更多信息。
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	member, err := h.store.GetMemberByEmail(r.Context(), email)
	if err != nil {
		log.Printf("[auth.jwt] GetMemberByEmail error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if member == nil {
		writeJSON(w, http.StatusForbidden, tokenResponse{AccessToken: ""})
		return
	}

	token, err := GenerateToken(h.cfg, email)
	if err != nil {
		log.Printf("[auth.jwt] GenerateToken error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
