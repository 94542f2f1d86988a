// Package execmsg 领导寄语领域 - HTTP 处理
package execmsg

import (
	"encoding/json"
	"log"
	"net/http"

	"members-admin/internal/apiserver/auth"
	"members-admin/internal/shared/model"
	"members-admin/internal/shared/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Handler 领导寄语 HTTP 处理器
type Handler struct {
	store   storage.PersistentStore
	authCfg auth.Config
}

// NewHandler 创建领导寄语处理器
func NewHandler(store storage.PersistentStore, authCfg auth.Config) *Handler {
	return &Handler{store: store, authCfg: authCfg}
}

// RegisterRoutes 注册领导寄语路由
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /executiveMessages", h.List)
	mux.HandleFunc("POST /executiveMessages", auth.Require(h.authCfg, h.Create))
	mux.HandleFunc("DELETE /executiveMessages/{id}", auth.Require(h.authCfg, h.Delete))
}

// List 获取领导寄语列表
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.store.ListExecutiveMessages(r.Context())
	if err != nil {
		log.Printf("[execmsg] ListExecutiveMessages error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list executive messages")
		return
	}
	if msgs == nil {
		msgs = []*model.ExecutiveMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Create 发布领导寄语
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var em model.ExecutiveMessage
	if err := json.NewDecoder(r.Body).Decode(&em); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if em.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.store.CreateExecutiveMessage(r.Context(), &em); err != nil {
		log.Printf("[execmsg] CreateExecutiveMessage error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create executive message")
		return
	}

	log.Printf("[execmsg] Executive message created: %s (%s)", em.Name, em.ID.Hex())
	writeJSON(w, http.StatusCreated, &em)
}

// Delete 按 id 删除领导寄语
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	if !model.IsValidID(raw) {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	n, err := h.store.DeleteExecutiveMessage(r.Context(), id)
	if err != nil {
		log.Printf("[execmsg] DeleteExecutiveMessage error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete executive message")
		return
	}
	if n == 0 {
		writeError(w, http.StatusNotFound, "executive message not found")
		return
	}

	log.Printf("[execmsg] Executive message deleted: %s", id.Hex())
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": n})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
