package auth

import (
	"net/http"

	"campusbook/internal/api"
	"campusbook/internal/user"
)

// ListUsers serves the admin account overview: student and faculty accounts,
// newest first. Admin accounts are not listed.
func (h Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListNonAdmins(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	if users == nil {
		users = []user.User{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}
