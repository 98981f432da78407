// ABOUTME: Interaction log database operations
// ABOUTME: Handles creating, listing, and completing contact interactions
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const interactionColumns = `id, contact_id, type, title, description, created_by,
	scheduled_at, due_date, completed_at, is_completed,
	email_subject, email_sent_at, email_opened_at, email_clicked_at, priority, created_at`

func CreateInteraction(database *sql.DB, interaction *models.Interaction) error {
	interaction.ID = uuid.New()
	interaction.CreatedAt = time.Now().UTC()

	_, err := database.Exec(`
		INSERT INTO interactions (`+interactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, interaction.ID.String(), interaction.ContactID.String(), interaction.Type,
		interaction.Title, interaction.Description, interaction.CreatedBy,
		interaction.ScheduledAt, interaction.DueDate, interaction.CompletedAt, interaction.IsCompleted,
		interaction.EmailSubject, interaction.EmailSentAt, interaction.EmailOpenedAt, interaction.EmailClickedAt,
		nullableString(interaction.Priority), interaction.CreatedAt)

	return err
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanInteraction(row rowScanner) (*models.Interaction, error) {
	in := &models.Interaction{}
	var description, emailSubject, priority sql.NullString

	err := row.Scan(
		&in.ID, &in.ContactID, &in.Type, &in.Title, &description, &in.CreatedBy,
		&in.ScheduledAt, &in.DueDate, &in.CompletedAt, &in.IsCompleted,
		&emailSubject, &in.EmailSentAt, &in.EmailOpenedAt, &in.EmailClickedAt,
		&priority, &in.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	in.Description = description.String
	in.EmailSubject = emailSubject.String
	in.Priority = priority.String

	return in, nil
}

func ListInteractions(database *sql.DB, contactID uuid.UUID, limit int) ([]models.Interaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := database.Query(`
		SELECT `+interactionColumns+` FROM interactions
		WHERE contact_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, contactID.String(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		in, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, *in)
	}

	return interactions, rows.Err()
}

// CompleteInteraction marks an interaction done. Returns the updated row,
// or nil when the id is unknown.
func CompleteInteraction(database *sql.DB, id uuid.UUID) (*models.Interaction, error) {
	now := time.Now().UTC()
	result, err := database.Exec(`
		UPDATE interactions SET is_completed = 1, completed_at = ? WHERE id = ?
	`, now, id.String())
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	interaction, err := scanInteraction(database.QueryRow(`
		SELECT `+interactionColumns+` FROM interactions WHERE id = ?
	`, id.String()))
	if err != nil {
		return nil, err
	}
	return interaction, nil
}
