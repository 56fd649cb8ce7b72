package equipment

import (
	"context"

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

const equipmentColumns = `id, name, category, description, quantity, image_url, is_available, created_at, updated_at`

func scanEquipment(row interface{ Scan(dest ...any) error }) (*Equipment, error) {
	e := &Equipment{}
	if err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Description, &e.Quantity, &e.ImageURL, &e.IsAvailable, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// ListAvailable returns bookable equipment sorted by name, optionally
// restricted to one category.
func (r *Repository) ListAvailable(ctx context.Context, category string) ([]Equipment, error) {
	q := `SELECT ` + equipmentColumns + ` FROM equipment WHERE is_available = TRUE`
	args := []any{}
	if category != "" {
		q += ` AND category = $1`
		args = append(args, category)
	}
	q += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Equipment, error) {
	const q = `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	return scanEquipment(r.db.QueryRow(ctx, q, id))
}

// GetForUpdate locks the equipment row for the rest of the transaction.
// Booking creation takes this lock before its overlap check so two
// concurrent requests for the same equipment serialize.
func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Equipment, error) {
	const q = `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 FOR UPDATE`
	return scanEquipment(tx.QueryRow(ctx, q, id))
}

func (r *Repository) Create(ctx context.Context, name, category string, description *string, quantity int, imageURL *string) (*Equipment, error) {
	const q = `
INSERT INTO equipment (id, name, category, description, quantity, image_url, is_available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW(), NOW())
RETURNING ` + equipmentColumns + `
`
	return scanEquipment(r.db.QueryRow(ctx, q, uuid.NewString(), name, category, description, quantity, imageURL))
}

// Update replaces every mutable field; the handler resolves absent request
// fields to the previous values first.
func (r *Repository) Update(ctx context.Context, id, name, category string, description *string, quantity int, imageURL *string, isAvailable bool) (*Equipment, error) {
	const q = `
UPDATE equipment
SET name = $2, category = $3, description = $4, quantity = $5, image_url = $6, is_available = $7, updated_at = NOW()
WHERE id = $1
RETURNING ` + equipmentColumns + `
`
	return scanEquipment(r.db.QueryRow(ctx, q, id, name, category, description, quantity, imageURL, isAvailable))
}

func (r *Repository) SetAvailability(ctx context.Context, id string, available bool) (*Equipment, error) {
	const q = `
UPDATE equipment
SET is_available = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + equipmentColumns + `
`
	return scanEquipment(r.db.QueryRow(ctx, q, id, available))
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	return err
}
