package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, name, email, role, COALESCE(password_hash,''), created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	u := &User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) Create(ctx context.Context, name, email string, role Role, passwordHash string) (*User, error) {
	const q = `
INSERT INTO users (id, name, email, role, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, NULLIF($5,''), NOW(), NOW())
RETURNING ` + userColumns + `
`
	return scanUser(r.db.QueryRow(ctx, q, uuid.NewString(), name, email, string(role), passwordHash))
}

func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

// Provision inserts a user row for an identity seen for the first time.
// Used by the auth middleware when a valid token has no matching row; the
// default role is student per the provisioning contract.
func (r *Repository) Provision(ctx context.Context, id, name, email string) (*User, error) {
	const q = `
INSERT INTO users (id, name, email, role, created_at, updated_at)
VALUES ($1, $2, $3, 'student', NOW(), NOW())
ON CONFLICT (id) DO UPDATE SET updated_at = NOW()
RETURNING ` + userColumns + `
`
	return scanUser(r.db.QueryRow(ctx, q, id, name, email))
}

// ListNonAdmins returns student and faculty accounts, newest first.
func (r *Repository) ListNonAdmins(ctx context.Context) ([]User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users
WHERE role <> 'admin'
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// SetRole changes an account's role. Roles are fixed at creation for the
// public surface; only the dev seeding tool uses this to promote an admin.
func (r *Repository) SetRole(ctx context.Context, id string, role Role) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, id, string(role))
	return err
}
