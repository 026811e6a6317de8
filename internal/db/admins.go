package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdminUserRow is a stored admin account. Password holds the bcrypt hash.
type AdminUserRow struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	FullName  string
	Role      string
	Status    string
	LastLogin *time.Time
	CreatedAt time.Time
}

// GetAdminByUsername fetches an admin account by username. Returns nil when
// no such account exists.
func (db *DB) GetAdminByUsername(ctx context.Context, username string) (*AdminUserRow, error) {
	var a AdminUserRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, username, email, password, full_name, role, status, last_login, created_at
		 FROM admin_users
		 WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.Email, &a.Password, &a.FullName, &a.Role, &a.Status, &a.LastLogin, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &a, nil
}

// UpdateAdminLastLogin stamps a successful login.
func (db *DB) UpdateAdminLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE admin_users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// CreateAdminUser inserts an admin account with an already-hashed password.
func (db *DB) CreateAdminUser(ctx context.Context, username, email, passwordHash, fullName, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO admin_users (username, email, password, full_name, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		username, email, passwordHash, fullName, role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return id, nil
}
