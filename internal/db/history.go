package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/michal/smartresume/internal/types"
)

// Resume history action types.
const (
	ActionDownloaded = "downloaded"
	ActionEmailed    = "emailed"
)

// ResumeActivity is one tracked generate action.
type ResumeActivity struct {
	ID           uuid.UUID       `json:"id"`
	UserName     string          `json:"userName"`
	UserEmail    string          `json:"userEmail"`
	JobRole      string          `json:"jobRole"`
	TemplateUsed string          `json:"templateUsed"`
	ResumeData   json.RawMessage `json:"resumeData,omitempty"`
	ActionType   string          `json:"actionType"`
	IPAddress    string          `json:"ipAddress,omitempty"`
	UserAgent    string          `json:"userAgent,omitempty"`
	FileSize     int64           `json:"fileSize"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// TrackResumeActivity records a generate action. Role name and template fall
// back to placeholders when the record carries no job role, matching how
// history rows have always been written.
func (db *DB) TrackResumeActivity(ctx context.Context, record *types.ResumeRecord, action, ipAddress, userAgent string, fileSize int64) (uuid.UUID, error) {
	roleName := "Unknown"
	template := "default"
	if record.JobRole != nil {
		if record.JobRole.Name != "" {
			roleName = record.JobRole.Name
		}
		if record.JobRole.Template != "" {
			template = record.JobRole.Template
		}
	}

	resumeData, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_history (user_name, user_email, job_role, template_used, resume_data, action_type, ip_address, user_agent, file_size)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		record.PersonalInfo.FullName(), record.PersonalInfo.Email, roleName, template,
		resumeData, action, ipAddress, userAgent, fileSize,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to track resume activity: %w", err)
	}
	return id, nil
}

// ListResumeHistory returns recent activity, newest first.
func (db *DB) ListResumeHistory(ctx context.Context, limit, offset int) ([]ResumeActivity, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_name, user_email, job_role, template_used, resume_data, action_type,
		        COALESCE(ip_address, ''), COALESCE(user_agent, ''), COALESCE(file_size, 0), created_at
		 FROM resume_history
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume history: %w", err)
	}
	defer rows.Close()

	var activities []ResumeActivity
	for rows.Next() {
		var a ResumeActivity
		if err := rows.Scan(&a.ID, &a.UserName, &a.UserEmail, &a.JobRole, &a.TemplateUsed,
			&a.ResumeData, &a.ActionType, &a.IPAddress, &a.UserAgent, &a.FileSize, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume history row: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// ResumeStats summarizes tracked activity for the admin dashboard.
type ResumeStats struct {
	TotalResumes int64            `json:"totalResumes"`
	ByAction     map[string]int64 `json:"byAction"`
	ByRole       map[string]int64 `json:"byRole"`
	LastActivity *time.Time       `json:"lastActivity,omitempty"`
}

// GetResumeStats aggregates resume_history counts.
func (db *DB) GetResumeStats(ctx context.Context) (*ResumeStats, error) {
	stats := &ResumeStats{
		ByAction: map[string]int64{},
		ByRole:   map[string]int64{},
	}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), MAX(created_at) FROM resume_history`,
	).Scan(&stats.TotalResumes, &stats.LastActivity)
	if err != nil {
		return nil, fmt.Errorf("failed to count resume history: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT action_type, COUNT(*) FROM resume_history GROUP BY action_type`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group by action: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var action string
		var count int64
		if err := rows.Scan(&action, &count); err != nil {
			return nil, fmt.Errorf("failed to scan action count: %w", err)
		}
		stats.ByAction[action] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	roleRows, err := db.pool.Query(ctx,
		`SELECT job_role, COUNT(*) FROM resume_history GROUP BY job_role`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group by role: %w", err)
	}
	defer roleRows.Close()
	for roleRows.Next() {
		var role string
		var count int64
		if err := roleRows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("failed to scan role count: %w", err)
		}
		stats.ByRole[role] = count
	}
	return stats, roleRows.Err()
}
