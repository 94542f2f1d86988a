// Package article 文章领域 - HTTP 处理
package article

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Handler 文章领域 HTTP 处理器
type Handler struct {
	store   storage.PersistentStore
	authCfg auth.Config
}

// NewHandler 创建文章处理器
func NewHandler(store storage.PersistentStore, authCfg auth.Config) *Handler {
	return &Handler{store: store, authCfg: authCfg}
}

// RegisterRoutes 注册文章相关路由
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /articles", h.List)
	mux.HandleFunc("POST /articles", auth.Require(h.authCfg, h.Create))
	mux.HandleFunc("GET /articles/{id}", h.Get)
	mux.HandleFunc("DELETE /articles/{id}", auth.Require(h.authCfg, h.Delete))
}

// List 获取文章列表（创建时间倒序）
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.ListArticles(r.Context())
	if err != nil {
		log.Printf("[article] ListArticles error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list articles")
		return
	}
	if articles == nil {
		articles = []*model.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// Create 发布文章
// createdAt 一律由服务端打时间戳，客户端提交的值被覆盖
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var a model.Article
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if a.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	a.CreatedAt = time.Now()

	if err := h.store.CreateArticle(r.Context(), &a); err != nil {
		log.Printf("[article] CreateArticle error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create article")
		return
	}

	log.Printf("[article] Article created: %s (%s)", a.Title, a.ID.Hex())
	writeJSON(w, http.StatusCreated, &a)
}

// Get 按 id 获取文章
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	a, err := h.store.GetArticle(r.Context(), id)
	if err != nil {
		log.Printf("[article] GetArticle error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get article")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// Delete 按 id 删除文章
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	n, err := h.store.DeleteArticle(r.Context(), id)
	if err != nil {
		log.Printf("[article] DeleteArticle error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete article")
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	log.Printf("[article] Article deleted: %s", id.Hex())
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": n})
}

func parseID(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	raw := r.PathValue("id")
	if !model.IsValidID(raw) {
		writeError(w, http.StatusBadRequest, "invalid id")
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return bson.ObjectID{}, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
