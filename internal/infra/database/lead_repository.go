package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chittyos/chittyconcierge/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create inserts one lead. Timestamps come from the database clock.
// No uniqueness on message_sid: Twilio redelivers create duplicate rows
// on purpose.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id,
			phone,
			message,
			category,
			urgency,
			suggested_response,
			message_sid,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Phone,
		lead.Message,
		lead.Category,
		lead.Urgency,
		lead.SuggestedResponse,
		lead.MessageSid,
		lead.Status,
	).Scan(
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

// List returns the 100 most recent leads, newest first.
func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT
			id,
			phone,
			message,
			category,
			urgency,
			suggested_response,
			message_sid,
			status,
			created_at,
			updated_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		err := rows.Scan(
			&lead.ID,
			&lead.Phone,
			&lead.Message,
			&lead.Category,
			&lead.Urgency,
			&lead.SuggestedResponse,
			&lead.MessageSid,
			&lead.Status,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

// UpdateStatus applies a status value to one lead and advances updated_at.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("lead not found: %s", id)
	}

	return nil
}
