// Package committee 委员会领域 - HTTP 处理
package committee

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"
)

// ObjectStore 对象存储接口（按照片 URL 删除）
type ObjectStore interface {
	DeletePhotoURL(ctx context.Context, photoURL string) error
}

// Handler 委员会领域 HTTP 处理器
type Handler struct {
	store   storage.PersistentStore
	photos  ObjectStore // 可为 nil（未配置对象存储）
	authCfg auth.Config
}

// NewHandler 创建委员会处理器
func NewHandler(store storage.PersistentStore, photos ObjectStore, authCfg auth.Config) *Handler {
	return &Handler{store: store, photos: photos, authCfg: authCfg}
}

// RegisterRoutes 注册委员会相关路由
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /committeeMembers", h.List)
	mux.HandleFunc("POST /committeeMembers", auth.Require(h.authCfg, h.Create))
	mux.HandleFunc("DELETE /committeeMembers", auth.Require(h.authCfg, h.DeleteAll))
}

// List 获取委员会成员列表
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListCommitteeMembers(r.Context())
	if err != nil {
		log.Printf("[committee] ListCommitteeMembers error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list committee members")
		return
	}
	if members == nil {
		members = []*model.CommitteeMember{}
	}
	writeJSON(w, http.StatusOK, members)
}

// Create 创建委员会成员
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cm model.CommitteeMember
	if err := json.NewDecoder(r.Body).Decode(&cm); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if cm.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.store.CreateCommitteeMember(r.Context(), &cm); err != nil {
		log.Printf("[committee] CreateCommitteeMember error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create committee member")
		return
	}

	log.Printf("[committee] Committee member created: %s (%s)", cm.Name, cm.ID.Hex())
	writeJSON(w, http.StatusCreated, &cm)
}

// deleteItemResult 批量删除的单条结果
type deleteItemResult struct {
	ID           string `json:"id"`
	Deleted      bool   `json:"deleted"`
	PhotoDeleted bool   `json:"photoDeleted"`
	Error        string `json:"error,omitempty"`
}

// DeleteAll 清空委员会（换届）
// 逐条处理：配置了对象存储且带照片的先删照片，再删文档。
// 单条失败不中断循环，逐条结果返回给调用方。
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListCommitteeMembers(r.Context())
	if err != nil {
		log.Printf("[committee] ListCommitteeMembers error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list committee members")
		return
	}

	results := make([]deleteItemResult, 0, len(members))
	var deleted int64
	for _, cm := range members {
		item := deleteItemResult{ID: cm.ID.Hex()}

		if h.photos != nil && cm.PhotoURL != "" {
			if err := h.photos.DeletePhotoURL(r.Context(), cm.PhotoURL); err != nil {
				// 照片删不掉不阻止文档删除，记录后继续
				log.Printf("[committee] photo delete failed for %s: %v", cm.ID.Hex(), err)
				item.Error = "photo delete failed"
			} else {
				item.PhotoDeleted = true
			}
		}

		n, err := h.store.DeleteCommitteeMember(r.Context(), cm.ID)
		if err != nil {
			log.Printf("[committee] DeleteCommitteeMember error for %s: %v", cm.ID.Hex(), err)
			item.Error = "delete failed"
		} else if n > 0 {
			item.Deleted = true
			deleted++
		}

		results = append(results, item)
	}

	log.Printf("[committee] Committee cleared: %d/%d deleted", deleted, len(members))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deletedCount": deleted,
		"results":      results,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
