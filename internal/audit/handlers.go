package audit

import (
	"net/http"
	"strconv"

	"campusbook/internal/api"
)

type Handlers struct {
	Repo *Repository
}

// List serves the admin audit trail, newest first, with a total count for
// pagination.
func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	limit := 100
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	entries, err := h.Repo.List(r.Context(), limit, offset)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	total, err := h.Repo.Count(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"logs": entries, "total": total})
}
