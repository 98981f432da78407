// ABOUTME: Deal database operations
// ABOUTME: Handles CRUD for monetary opportunities tied to contacts
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const dealColumns = `id, contact_id, title, value, stage, probability,
	expected_close_date, actual_close_date, created_by, assigned_to, created_at, updated_at`

func CreateDeal(database *sql.DB, deal *models.Deal) error {
	if deal.Value <= 0 {
		return fmt.Errorf("deal value must be positive")
	}
	if deal.Probability < 0 || deal.Probability > 100 {
		return fmt.Errorf("deal probability must be between 0 and 100")
	}

	deal.ID = uuid.New()
	now := time.Now().UTC()
	deal.CreatedAt = now
	deal.UpdatedAt = now
	if deal.Stage == "" {
		deal.Stage = models.StageProspect
	}

	_, err := database.Exec(`
		INSERT INTO deals (`+dealColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, deal.ID.String(), deal.ContactID.String(), deal.Title, deal.Value, deal.Stage, deal.Probability,
		deal.ExpectedCloseDate, deal.ActualCloseDate, deal.CreatedBy, deal.AssignedTo,
		deal.CreatedAt, deal.UpdatedAt)

	return err
}

func scanDeal(row rowScanner) (*models.Deal, error) {
	d := &models.Deal{}
	var assignedTo sql.NullString

	err := row.Scan(
		&d.ID, &d.ContactID, &d.Title, &d.Value, &d.Stage, &d.Probability,
		&d.ExpectedCloseDate, &d.ActualCloseDate, &d.CreatedBy, &assignedTo,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.AssignedTo = assignedTo.String

	return d, nil
}

func GetDeal(database *sql.DB, id uuid.UUID) (*models.Deal, error) {
	deal, err := scanDeal(database.QueryRow(`
		SELECT `+dealColumns+` FROM deals WHERE id = ?
	`, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func ListDeals(database *sql.DB, contactID *uuid.UUID, stage string, limit int) ([]models.Deal, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + dealColumns + ` FROM deals`
	var args []any
	switch {
	case contactID != nil:
		query += ` WHERE contact_id = ?`
		args = append(args, contactID.String())
	case stage != "":
		query += ` WHERE stage = ?`
		args = append(args, stage)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, *d)
	}

	return deals, rows.Err()
}

// UpdateDealStage moves a deal to a new stage, stamping the actual close
// date when it reaches a closed stage. Returns nil when the id is unknown.
func UpdateDealStage(database *sql.DB, id uuid.UUID, stage string, probability int) (*models.Deal, error) {
	now := time.Now().UTC()
	var actualClose *time.Time
	if stage == models.StageClosedWon || stage == models.StageClosedLost {
		actualClose = &now
	}

	result, err := database.Exec(`
		UPDATE deals SET stage = ?, probability = ?, actual_close_date = COALESCE(?, actual_close_date), updated_at = ?
		WHERE id = ?
	`, stage, probability, actualClose, now, id.String())
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

	return GetDeal(database, id)
}
