// Package member 会员领域 - HTTP 处理
package member

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/shared/identity"
	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"
)

// IdentityProvider 身份服务商接口（删除账号）
type IdentityProvider interface {
	DeleteUser(ctx context.Context, uid string) error
}

// Handler 会员领域 HTTP 处理器
type Handler struct {
	store    storage.PersistentStore
	provider IdentityProvider // 可为 nil（未配置身份服务商）
	authCfg  auth.Config
}

// NewHandler 创建会员处理器
func NewHandler(store storage.PersistentStore, provider IdentityProvider, authCfg auth.Config) *Handler {
	return &Handler{store: store, provider: provider, authCfg: authCfg}
}

// RegisterRoutes 注册会员相关路由
// 除自助注册（POST /members）外，所有写操作显式挂认证
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	gate := func(next http.HandlerFunc) http.HandlerFunc {
		return auth.Require(h.authCfg, next)
	}

	mux.HandleFunc("GET /members/generalmembers", h.List)
	mux.HandleFunc("POST /members", h.Create)
	mux.HandleFunc("GET /members/{id}", h.Get)
	mux.HandleFunc("DELETE /members/{id}", gate(h.Delete))
	mux.HandleFunc("DELETE /members/firebase/{uid}", gate(h.DeleteProviderAccount))
	mux.HandleFunc("GET /members/email/{email}", h.ApprovalFlag)
	mux.HandleFunc("GET /members/admin/{email}", h.AdminFlag)
	mux.HandleFunc("GET /members/moderator/{email}", h.ModeratorFlag)
	mux.HandleFunc("PUT /members/status/{id}", gate(h.UpdateStatus))
	mux.HandleFunc("PUT /members/admin/{id}", gate(h.PromoteAdmin))
	mux.HandleFunc("PUT /members/moderator/{id}", gate(h.PromoteModerator))
	mux.HandleFunc("PUT /members/demote/{id}", gate(h.DemoteToUser))
	mux.HandleFunc("PUT /members/moderator/demote/{id}", gate(h.DemoteModerator))
	mux.HandleFunc("GET /members/admins", h.ListApprovedAdmins)
	mux.HandleFunc("GET /users/{email}", h.GetByEmail)
	mux.HandleFunc("PUT /members/{id}", gate(h.UpdateProfile))
}

// List 获取会员列表
// GET /members/generalmembers?status=a,b&role=r
// status 为逗号分隔的状态集合（$in 匹配），role 精确匹配，均可省略
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := storage.MemberFilter{
		Role: r.URL.Query().Get("role"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, s)
			}
		}
	}

	members, err := h.store.ListMembers(r.Context(), filter)
	if err != nil {
		log.Printf("[member] ListMembers error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list members")
		return
	}
	if members == nil {
		members = []*model.Member{}
	}

	writeJSON(w, http.StatusOK, members)
}

// Create 会员自助注册
// 无论客户端提交什么，status 一律强制为 pending
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m model.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if m.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	m.Status = model.MemberStatusPending
	m.CreatedAt = time.Now()

	if err := h.store.CreateMember(r.Context(), &m); err != nil {
		log.Printf("[member] CreateMember error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create member")
		return
	}

	log.Printf("[member] Member registered: %s (%s)", m.Email, m.ID.Hex())
	writeJSON(w, http.StatusCreated, &m)
}

// Get 按 id 获取会员
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	m, err := h.store.GetMember(r.Context(), id)
	if err != nil {
		log.Printf("[member] GetMember error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get member")
		return
	}
	if m == nil {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// Delete 按 id 删除会员（只删本地文档，不涉及身份服务商）
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	n, err := h.store.DeleteMember(r.Context(), id)
	if err != nil {
		log.Printf("[member] DeleteMember error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete member")
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}

	log.Printf("[member] Member deleted: %s", id.Hex())
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": n})
}

// DeleteProviderAccount 删除身份服务商侧的账号
// uid 是服务商侧的账号 ID，不是本地文档 id；不触碰本地数据库。
func (h *Handler) DeleteProviderAccount(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	if h.provider == nil {
		writeError(w, http.StatusServiceUnavailable, "identity provider not configured")
		return
	}

	if err := h.provider.DeleteUser(r.Context(), uid); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("[member] provider DeleteUser error: %v", err)
		writeError(w, http.StatusBadGateway, "failed to delete user from identity provider")
		return
	}

	log.Printf("[member] Provider account deleted: %s", uid)
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted from identity provider"})
}

// ApprovalFlag 审核状态布尔；查无此人按未通过处理
func (h *Handler) ApprovalFlag(w http.ResponseWriter, r *http.Request) {
	m, err := h.store.GetMemberByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		log.Printf("[member] GetMemberByEmail error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isUserStatus": m.IsApproved()})
}

// AdminFlag 管理员角色布尔
func (h *Handler) AdminFlag(w http.ResponseWriter, r *http.Request) {
	m, err := h.store.GetMemberByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		log.Printf("[member] GetMemberByEmail error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": m.IsAdmin()})
}

// ModeratorFlag 版主角色布尔
func (h *Handler) ModeratorFlag(w http.ResponseWriter, r *http.Request) {
	m, err := h.store.GetMemberByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		log.Printf("[member] GetMemberByEmail error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isModerator": m.IsModerator()})
}

// UpdateStatus 更新会员审核状态
// 只改 status 一个字段；状态值不做枚举校验，按业务约定使用
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	res, err := h.store.UpdateMemberStatus(r.Context(), id, req.Status)
	if err != nil {
		log.Printf("[member] UpdateMemberStatus error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	log.Printf("[member] Status updated: %s -> %s", id.Hex(), req.Status)
	writeJSON(w, http.StatusOK, res)
}

// PromoteAdmin 提升为管理员（目标不存在则补插）
func (h *Handler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, model.MemberRoleAdmin, true)
}

// PromoteModerator 提升为版主（目标不存在则补插）
func (h *Handler) PromoteModerator(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, model.MemberRoleModerator, true)
}

// DemoteToUser 降级为普通用户（不补插，零匹配如实上报）
func (h *Handler) DemoteToUser(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, model.MemberRoleUser, false)
}

// DemoteModerator 版主降级为管理员（不补插）
func (h *Handler) DemoteModerator(w http.ResponseWriter, r *http.Request) {
	h.setRole(w, r, model.MemberRoleAdmin, false)
}

func (h *Handler) setRole(w http.ResponseWriter, r *http.Request, role model.MemberRole, upsert bool) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	res, err := h.store.SetMemberRole(r.Context(), id, role, upsert)
	if err != nil {
		log.Printf("[member] SetMemberRole error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update role")
		return
	}

	log.Printf("[member] Role set: %s -> %s (upsert=%v)", id.Hex(), role, upsert)
	writeJSON(w, http.StatusOK, res)
}

// ListApprovedAdmins 已审核通过的管理员列表
func (h *Handler) ListApprovedAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListApprovedAdmins(r.Context())
	if err != nil {
		log.Printf("[member] ListApprovedAdmins error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list admins")
		return
	}
	if admins == nil {
		admins = []*model.Member{}
	}
	writeJSON(w, http.StatusOK, admins)
}

// GetByEmail 按邮箱获取会员原始文档
// 未命中返回 404 和 null 响应体，前端据此区分"未注册"
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	m, err := h.store.GetMemberByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		log.Printf("[member] GetMemberByEmail error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if m == nil {
		writeJSON(w, http.StatusNotFound, nil)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// UpdateProfile 更新个人档案
// 只替换 MemberProfile 列出的字段，请求体中的其他字段一律忽略；
// 成功后返回更新后的完整文档
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var profile model.MemberProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.store.UpdateMemberProfile(r.Context(), id, profile)
	if err != nil {
		log.Printf("[member] UpdateMemberProfile error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if res.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "member not found")
		return
	}

	m, err := h.store.GetMember(r.Context(), id)
	if err != nil || m == nil {
		log.Printf("[member] GetMember after profile update error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load updated member")
		return
	}

	log.Printf("[member] Profile updated: %s", id.Hex())
	writeJSON(w, http.StatusOK, m)
}
