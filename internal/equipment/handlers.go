package equipment

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"campusbook/internal/api"
)

type Handlers struct {
	Repo  *Repository
	Cache *Cache
}

// Catalog lists bookable equipment for any authenticated caller, with
// optional ?category= equality filter and ?search= substring filter.
func (h Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	search := r.URL.Query().Get("search")

	var items []Equipment
	if category == "" {
		if cached, ok := h.Cache.GetCatalog(r.Context()); ok {
			items = cached
		}
	}
	if items == nil {
		var err error
		items, err = h.Repo.ListAvailable(r.Context(), category)
		if err != nil {
			api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
			return
		}
		if category == "" {
			h.Cache.SetCatalog(r.Context(), items)
		}
	}

	items = FilterBySearch(items, search)
	if items == nil {
		items = []Equipment{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"equipment": items})
}

type CreateRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity"`
	ImageURL    *string `json:"image_url"`
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid json")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if req.Name == "" || req.Category == "" || req.Quantity == 0 {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "name, category, and quantity are required")
		return
	}
	if req.Quantity < 1 {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "quantity must be at least 1")
		return
	}

	e, err := h.Repo.Create(r.Context(), req.Name, req.Category, req.Description, req.Quantity, req.ImageURL)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	h.Cache.Invalidate(r.Context())

	api.WriteJSON(w, http.StatusCreated, map[string]any{"equipment": e})
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	ImageURL    *string `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

// Update applies a partial replacement: absent fields keep their previous
// values.
func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "missing id")
		return
	}

	prev, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "equipment not found")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid json")
		return
	}

	name := prev.Name
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name = strings.TrimSpace(*req.Name)
	}
	category := prev.Category
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		category = strings.TrimSpace(*req.Category)
	}
	description := prev.Description
	if req.Description != nil {
		description = req.Description
	}
	quantity := prev.Quantity
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "quantity must be at least 1")
			return
		}
		quantity = *req.Quantity
	}
	imageURL := prev.ImageURL
	if req.ImageURL != nil {
		imageURL = req.ImageURL
	}
	isAvailable := prev.IsAvailable
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	e, err := h.Repo.Update(r.Context(), id, name, category, description, quantity, imageURL, isAvailable)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	h.Cache.Invalidate(r.Context())

	api.WriteJSON(w, http.StatusOK, map[string]any{"equipment": e})
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available"`
}

// SetAvailability is the dedicated toggle admins use to mark equipment
// unbookable without touching the rest of the record.
func (h Handlers) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "missing id")
		return
	}

	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsAvailable == nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "is_available is required")
		return
	}

	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "equipment not found")
		return
	}

	e, err := h.Repo.SetAvailability(r.Context(), id, *req.IsAvailable)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	h.Cache.Invalidate(r.Context())

	api.WriteJSON(w, http.StatusOK, map[string]any{"equipment": e})
}

// Delete is a hard delete. Bookings referencing the item keep their copy of
// the id; see the design notes on deleting equipment with open bookings.
func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "missing id")
		return
	}

	if _, err := h.Repo.GetByID(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "equipment not found")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	h.Cache.Invalidate(r.Context())

	api.WriteJSON(w, http.StatusOK, map[string]any{"message": "equipment deleted"})
}
