package booking

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusbook/internal/api"
	"campusbook/internal/audit"
	"campusbook/internal/equipment"
	"campusbook/internal/metrics"
	"campusbook/internal/user"
	"campusbook/pkg/db"
)

type Handlers struct {
	DB        *pgxpool.Pool
	Bookings  *Repository
	Equipment *equipment.Repository
	Users     *user.Repository
	Audit     *audit.Repository
}

type CreateRequest struct {
	EquipmentID string    `json:"equipment_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Purpose     string    `json:"purpose"`
	Notes       *string   `json:"notes"`
	Priority    string    `json:"priority"`
}

// Create handles a booking request: validate, lock the equipment row, run
// the overlap check against active bookings, and store a PENDING booking.
// The lock serializes concurrent requests for the same equipment, so two
// overlapping requests cannot both pass the check.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing identity")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid json")
		return
	}

	req.Purpose = strings.TrimSpace(req.Purpose)
	if req.EquipmentID == "" || req.StartTime.IsZero() || req.EndTime.IsZero() || req.Purpose == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "equipment_id, start_time, end_time, and purpose are required")
		return
	}
	if !req.EndTime.After(req.StartTime) {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "end_time must be after start_time")
		return
	}

	priority := NormalizePriority(req.Priority)

	var created *Booking
	var eq *equipment.Equipment
	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		var err error
		eq, err = equipment.GetForUpdate(r.Context(), tx, req.EquipmentID)
		if err != nil {
			api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "equipment not found")
			return pgx.ErrTxCommitRollback
		}
		if !eq.IsAvailable {
			api.WriteError(w, http.StatusBadRequest, api.CodeUnavailable, "equipment is not available")
			return pgx.ErrTxCommitRollback
		}

		active, err := ListActiveForEquipment(r.Context(), tx, req.EquipmentID)
		if err != nil {
			return err
		}
		if conflict := FindConflict(req.StartTime, req.EndTime, active); conflict != nil {
			metrics.BookingConflicts.Inc()
			api.WriteError(w, http.StatusBadRequest, api.CodeConflict, "equipment is already booked for the selected time period")
			return pgx.ErrTxCommitRollback
		}

		created, err = Insert(r.Context(), tx, u.ID, req.EquipmentID, req.StartTime, req.EndTime, req.Purpose, req.Notes, priority)
		return err
	})
	if err != nil {
		if err == pgx.ErrTxCommitRollback {
			return
		}
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}

	metrics.BookingsCreated.Inc()

	// Best-effort side effect: an audit failure must never fail the booking.
	if err := h.Audit.Insert(r.Context(), u.ID, audit.ActionBookingCreated, clientIP(r), map[string]any{
		"booking_id":     created.ID,
		"equipment_id":   eq.ID,
		"equipment_name": eq.Name,
		"start_time":     created.StartTime,
		"end_time":       created.EndTime,
		"purpose":        created.Purpose,
	}); err != nil {
		log.Printf("audit insert failed for booking %s: %v", created.ID, err)
	}

	detail := Detail{
		Booking:       *created,
		UserName:      u.Name,
		UserEmail:     u.Email,
		UserRole:      string(u.Role),
		EquipmentName: eq.Name,
		Category:      eq.Category,
	}
	if eq.ImageURL != nil {
		detail.ImageURL = *eq.ImageURL
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{"booking": detail})
}

// My lists the caller's bookings newest first, optionally filtered by status.
func (h Handlers) My(w http.ResponseWriter, r *http.Request) {
	u := api.UserFromContext(r.Context())
	if u == nil {
		api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing identity")
		return
	}

	status, ok := statusFilter(w, r)
	if !ok {
		return
	}

	items, err := h.Bookings.ListByUser(r.Context(), u.ID, status)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	writeBookings(w, items)
}

// Pending serves the admin queue: priority rank ascending, then created_at
// ascending within the same priority.
func (h Handlers) Pending(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bookings.ListPending(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	SortPendingQueue(items)
	writeBookings(w, items)
}

// All serves every booking newest first for admins, optionally filtered by a
// single status.
func (h Handlers) All(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(w, r)
	if !ok {
		return
	}

	items, err := h.Bookings.ListAll(r.Context(), status)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}
	writeBookings(w, items)
}

type DecisionRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

// Decide applies an admin decision (APPROVED, REJECTED, or CANCELLED) to a
// booking and appends exactly one audit entry for it. Overlap is not
// re-checked here: two overlapping PENDING requests can both be approved,
// which is the documented policy.
func (h Handlers) Decide(w http.ResponseWriter, r *http.Request) {
	admin := api.UserFromContext(r.Context())
	if admin == nil {
		api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "missing id")
		return
	}

	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid json")
		return
	}

	decision, err := ParseDecision(req.Status)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid status")
		return
	}

	var previous Status
	var updated *Booking
	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			api.WriteError(w, http.StatusNotFound, api.CodeNotFound, "booking not found")
			return pgx.ErrTxCommitRollback
		}
		previous = b.Status

		updated, err = UpdateDecision(r.Context(), tx, id, decision, req.AdminNotes)
		return err
	})
	if err != nil {
		if err == pgx.ErrTxCommitRollback {
			return
		}
		api.WriteError(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}

	metrics.BookingDecisions.WithLabelValues(string(decision)).Inc()

	equipmentName := "Unknown"
	if eq, err := h.Equipment.GetByID(r.Context(), updated.EquipmentID); err == nil {
		equipmentName = eq.Name
	}
	userName := "Unknown"
	if owner, err := h.Users.FindByID(r.Context(), updated.UserID); err == nil {
		userName = owner.Name
	}

	action, err := AuditAction(decision)
	if err == nil {
		if err := h.Audit.Insert(r.Context(), admin.ID, action, clientIP(r), map[string]any{
			"booking_id":      updated.ID,
			"equipment_id":    updated.EquipmentID,
			"equipment_name":  equipmentName,
			"user_id":         updated.UserID,
			"user_name":       userName,
			"previous_status": previous,
			"new_status":      decision,
			"admin_notes":     req.AdminNotes,
		}); err != nil {
			log.Printf("audit insert failed for booking %s: %v", updated.ID, err)
		}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"booking": updated})
}

func statusFilter(w http.ResponseWriter, r *http.Request) (Status, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("status"))
	if raw == "" || raw == "all" {
		return "", true
	}
	status, err := ParseStatus(raw)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeValidationFailed, "invalid status filter")
		return "", false
	}
	return status, true
}

func writeBookings(w http.ResponseWriter, items []Detail) {
	if items == nil {
		items = []Detail{}
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"bookings": items})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i > 0 {
		host = host[:i]
	}
	return host
}
