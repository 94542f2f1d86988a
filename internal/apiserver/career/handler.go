// Package career 职业发展领域（招聘 + 实习） - HTTP 处理
package career

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

// Handler 职业发展领域 HTTP 处理器
type Handler struct {
	store   storage.PersistentStore
	authCfg auth.Config
}

// NewHandler 创建职业发展处理器
func NewHandler(store storage.PersistentStore, authCfg auth.Config) *Handler {
	return &Handler{store: store, authCfg: authCfg}
}

// RegisterRoutes 注册招聘与实习路由
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /career/jobs", h.ListJobs)
	mux.HandleFunc("POST /career/jobs", auth.Require(h.authCfg, h.CreateJob))
	mux.HandleFunc("GET /career/jobs/{id}", h.GetJob)

	mux.HandleFunc("GET /career/interns", h.ListInterns)
	mux.HandleFunc("POST /career/interns", auth.Require(h.authCfg, h.CreateIntern))
	mux.HandleFunc("GET /career/interns/{id}", h.GetIntern)
}

// ListJobs 获取职位列表（创建时间倒序）
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListJobs(r.Context())
	if err != nil {
		log.Printf("[career] ListJobs error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}
	writeJSON(w, http.StatusOK, jobs)
}

// CreateJob 发布职位，createdAt 由服务端打时间戳
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var j model.Job
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if j.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	j.CreatedAt = time.Now()

	if err := h.store.CreateJob(r.Context(), &j); err != nil {
		log.Printf("[career] CreateJob error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	log.Printf("[career] Job posted: %s (%s)", j.Title, j.ID.Hex())
	writeJSON(w, http.StatusCreated, &j)
}

// GetJob 按 id 获取职位
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	j, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		log.Printf("[career] GetJob error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if j == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, j)
}

// ListInterns 获取实习岗位列表（创建时间倒序）
func (h *Handler) ListInterns(w http.ResponseWriter, r *http.Request) {
	interns, err := h.store.ListInterns(r.Context())
	if err != nil {
		log.Printf("[career] ListInterns error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list interns")
		return
	}
	if interns == nil {
		interns = []*model.Intern{}
	}
	writeJSON(w, http.StatusOK, interns)
}

// CreateIntern 发布实习岗位，createdAt 由服务端打时间戳
func (h *Handler) CreateIntern(w http.ResponseWriter, r *http.Request) {
	var it model.Intern
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if it.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	it.CreatedAt = time.Now()

	if err := h.store.CreateIntern(r.Context(), &it); err != nil {
		log.Printf("[career] CreateIntern error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create intern")
		return
	}

	log.Printf("[career] Internship posted: %s (%s)", it.Title, it.ID.Hex())
	writeJSON(w, http.StatusCreated, &it)
}

// GetIntern 按 id 获取实习岗位
func (h *Handler) GetIntern(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	it, err := h.store.GetIntern(r.Context(), id)
	if err != nil {
		log.Printf("[career] GetIntern error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get intern")
		return
	}
	if it == nil {
		writeError(w, http.StatusNotFound, "intern not found")
		return
	}

	writeJSON(w, http.StatusOK, it)
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
