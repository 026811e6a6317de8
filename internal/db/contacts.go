package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/michal/smartresume/internal/types"
)

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Newsletter bool      `json:"newsletter"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SaveContactMessage stores a contact form submission and returns its id.
func (db *DB) SaveContactMessage(ctx context.Context, req *types.ContactRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (first_name, last_name, email, phone, company, subject, message, newsletter)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Company,
		req.Subject, req.Message, req.Newsletter,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return id, nil
}

// GetContactMessage fetches one submission by id. Returns nil when no such
// message exists.
func (db *DB) GetContactMessage(ctx context.Context, id uuid.UUID) (*ContactMessage, error) {
	var m ContactMessage
	err := db.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(company, ''),
		        subject, message, newsletter, created_at
		 FROM contact_messages
		 WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Company,
		&m.Subject, &m.Message, &m.Newsletter, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return &m, nil
}

// ListContactMessages returns submissions, newest first.
func (db *DB) ListContactMessages(ctx context.Context, limit, offset int) ([]ContactMessage, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(company, ''),
		        subject, message, newsletter, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Company,
			&m.Subject, &m.Message, &m.Newsletter, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
