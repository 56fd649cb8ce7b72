package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `id, user_id, equipment_id, start_time, end_time, status, purpose, notes, admin_notes, priority, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (*Booking, error) {
	b := &Booking{}
	if err := row.Scan(&b.ID, &b.UserID, &b.EquipmentID, &b.StartTime, &b.EndTime, &b.Status, &b.Purpose, &b.Notes, &b.AdminNotes, &b.Priority, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

// ListActiveForEquipment returns the PENDING and APPROVED bookings for one
// piece of equipment. Runs inside the booking-creation transaction so the
// overlap check sees a stable view under the equipment row lock.
func ListActiveForEquipment(ctx context.Context, tx pgx.Tx, equipmentID string) ([]Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE equipment_id = $1 AND status IN ('PENDING', 'APPROVED')
`
	rows, err := tx.Query(ctx, q, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// Insert persists a new PENDING booking and returns it.
func Insert(ctx context.Context, tx pgx.Tx, userID, equipmentID string, start, end time.Time, purpose string, notes *string, priority Priority) (*Booking, error) {
	const q = `
INSERT INTO bookings (id, user_id, equipment_id, start_time, end_time, status, purpose, notes, priority, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 'PENDING', $6, $7, $8, NOW(), NOW())
RETURNING ` + bookingColumns + `
`
	return scanBooking(tx.QueryRow(ctx, q, uuid.NewString(), userID, equipmentID, start, end, purpose, notes, string(priority)))
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRow(ctx, q, id))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return scanBooking(tx.QueryRow(ctx, q, id))
}

// UpdateDecision writes the admin's status decision and notes.
func UpdateDecision(ctx context.Context, tx pgx.Tx, id string, status Status, adminNotes *string) (*Booking, error) {
	const q = `
UPDATE bookings
SET status = $2, admin_notes = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + bookingColumns + `
`
	return scanBooking(tx.QueryRow(ctx, q, id, string(status), adminNotes))
}

const detailColumns = `
b.id, b.user_id, b.equipment_id, b.start_time, b.end_time, b.status, b.purpose, b.notes, b.admin_notes, b.priority, b.created_at, b.updated_at,
COALESCE(u.name, 'Unknown'), COALESCE(u.email, ''), COALESCE(u.role, 'student'),
COALESCE(e.name, 'Unknown Equipment'), COALESCE(e.category, ''), COALESCE(e.image_url, '')`

func scanDetail(rows pgx.Rows) (*Detail, error) {
	d := &Detail{}
	if err := rows.Scan(
		&d.ID, &d.UserID, &d.EquipmentID, &d.StartTime, &d.EndTime, &d.Status, &d.Purpose, &d.Notes, &d.AdminNotes, &d.Priority, &d.CreatedAt, &d.UpdatedAt,
		&d.UserName, &d.UserEmail, &d.UserRole,
		&d.EquipmentName, &d.Category, &d.ImageURL,
	); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Repository) queryDetails(ctx context.Context, q string, args ...any) ([]Detail, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// ListByUser returns one user's bookings newest first, optionally filtered to
// a single status, with equipment display fields joined.
func (r *Repository) ListByUser(ctx context.Context, userID string, status Status) ([]Detail, error) {
	q := `
SELECT ` + detailColumns + `
FROM bookings b
LEFT JOIN users u ON u.id = b.user_id
LEFT JOIN equipment e ON e.id = b.equipment_id
WHERE b.user_id = $1`
	args := []any{userID}
	if status != "" {
		q += ` AND b.status = $2`
		args = append(args, string(status))
	}
	q += `
ORDER BY b.created_at DESC`
	return r.queryDetails(ctx, q, args...)
}

// ListPending returns the PENDING queue ordered by created_at ascending.
// Priority ordering is applied in memory by SortPendingQueue so the final
// order never depends on a store-side composite index.
func (r *Repository) ListPending(ctx context.Context) ([]Detail, error) {
	const q = `
SELECT ` + detailColumns + `
FROM bookings b
LEFT JOIN users u ON u.id = b.user_id
LEFT JOIN equipment e ON e.id = b.equipment_id
WHERE b.status = 'PENDING'
ORDER BY b.created_at ASC`
	return r.queryDetails(ctx, q)
}

// ListAll returns every booking newest first, optionally filtered to a single
// status, with display fields joined.
func (r *Repository) ListAll(ctx context.Context, status Status) ([]Detail, error) {
	q := `
SELECT ` + detailColumns + `
FROM bookings b
LEFT JOIN users u ON u.id = b.user_id
LEFT JOIN equipment e ON e.id = b.equipment_id`
	args := []any{}
	if status != "" {
		q += `
WHERE b.status = $1`
		args = append(args, string(status))
	}
	q += `
ORDER BY b.created_at DESC`
	return r.queryDetails(ctx, q, args...)
}
