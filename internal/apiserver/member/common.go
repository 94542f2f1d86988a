package member

import (
	"encoding/json"
	"net/http"

	"members-admin/internal/shared/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// parseID 解析路径中的 {id}，非法格式写 400 并返回 ok=false
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
