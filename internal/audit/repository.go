package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Action tags recorded for booking lifecycle events.
const (
	ActionBookingCreated   = "BOOKING_CREATED"
	ActionBookingApproved  = "BOOKING_APPROVED"
	ActionBookingRejected  = "BOOKING_REJECTED"
	ActionBookingCancelled = "BOOKING_CANCELLED"
)

type Entry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	IPAddress string          `json:"ip_address,omitempty"`
	CreatedAt time.Time       `json:"timestamp"`

	// Joined actor display fields.
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Insert appends one entry. Entries are never updated or deleted; callers
// treat failures as best-effort (log and continue).
func (r *Repository) Insert(ctx context.Context, actorID, action, ipAddress string, details any) error {
	var payload *string
	if details != nil {
		b, _ := json.Marshal(details)
		s := string(b)
		payload = &s
	}
	const q = `
INSERT INTO audit_log (id, user_id, action, details, ip_address, created_at)
VALUES ($1, $2, $3, CAST($4 AS jsonb), NULLIF($5,''), NOW())
`
	_, err := r.db.Exec(ctx, q, uuid.NewString(), actorID, action, payload, ipAddress)
	return err
}

// List returns entries newest first with actor display fields joined in.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	const q = `
SELECT a.id, a.user_id, a.action, COALESCE(a.details, '{}'::jsonb), COALESCE(a.ip_address,''), a.created_at,
       COALESCE(u.name, 'Unknown'), COALESCE(u.email, '')
FROM audit_log a
LEFT JOIN users u ON u.id = a.user_id
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &e.IPAddress, &e.CreatedAt, &e.UserName, &e.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n)
	return n, err
}
