// ABOUTME: Contact database operations
// ABOUTME: Handles lead CRUD, admin updates, and engagement counter resets
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const contactColumns = `id, first_name, last_name, email, phone, company, location, message,
	source, status, dietary_interests, plant_based_level, tags, admin_notes,
	email_opens, email_clicks, emails_sent, website_visits, last_email_sent, last_email_opened,
	is_business_inquiry, inquiry_type, estimated_value, assigned_to,
	created_at, updated_at, last_contacted`

func CreateContact(database *sql.DB, contact *models.Contact) error {
	contact.ID = uuid.New()
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if contact.Source == "" {
		contact.Source = models.SourceContactForm
	}
	if contact.Status == "" {
		contact.Status = models.StatusNew
	}

	_, err := database.Exec(`
		INSERT INTO contacts (`+contactColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, contact.ID.String(), contact.FirstName, contact.LastName, contact.Email,
		contact.Phone, contact.Company, contact.Location, contact.Message,
		contact.Source, contact.Status, listToJSON(contact.DietaryInterests), contact.PlantBasedLevel,
		listToJSON(contact.Tags), contact.AdminNotes,
		contact.EmailOpens, contact.EmailClicks, contact.EmailsSent, contact.WebsiteVisits,
		contact.LastEmailSent, contact.LastEmailOpened,
		contact.IsBusinessInquiry, contact.InquiryType, contact.EstimatedValue, contact.AssignedTo,
		contact.CreatedAt, contact.UpdatedAt, contact.LastContacted)

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*models.Contact, error) {
	c := &models.Contact{}
	var (
		phone, company, location, message, plantBasedLevel sql.NullString
		adminNotes, inquiryType, assignedTo                sql.NullString
		dietaryInterests, tags                             string
		estimatedValue                                     sql.NullFloat64
	)

	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email,
		&phone, &company, &location, &message,
		&c.Source, &c.Status, &dietaryInterests, &plantBasedLevel,
		&tags, &adminNotes,
		&c.EmailOpens, &c.EmailClicks, &c.EmailsSent, &c.WebsiteVisits,
		&c.LastEmailSent, &c.LastEmailOpened,
		&c.IsBusinessInquiry, &inquiryType, &estimatedValue, &assignedTo,
		&c.CreatedAt, &c.UpdatedAt, &c.LastContacted,
	)
	if err != nil {
		return nil, err
	}

	c.Phone = phone.String
	c.Company = company.String
	c.Location = location.String
	c.Message = message.String
	c.PlantBasedLevel = plantBasedLevel.String
	c.AdminNotes = adminNotes.String
	c.InquiryType = inquiryType.String
	c.AssignedTo = assignedTo.String
	c.DietaryInterests = listFromJSON(dietaryInterests)
	c.Tags = listFromJSON(tags)
	if estimatedValue.Valid {
		c.EstimatedValue = &estimatedValue.Float64
	}

	return c, nil
}

func GetContact(database *sql.DB, id uuid.UUID) (*models.Contact, error) {
	contact, err := scanContact(database.QueryRow(`
		SELECT `+contactColumns+` FROM contacts WHERE id = ?
	`, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func GetContactByEmail(database *sql.DB, email string) (*models.Contact, error) {
	contact, err := scanContact(database.QueryRow(`
		SELECT `+contactColumns+` FROM contacts WHERE email = ? ORDER BY created_at DESC LIMIT 1
	`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func ListContacts(database *sql.DB, skip, limit int) ([]models.Contact, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := database.Query(`
		SELECT `+contactColumns+` FROM contacts
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}

	return contacts, rows.Err()
}

// UpdateContact applies the non-nil fields of updates and refreshes
// updated_at. Returns the updated contact, or nil when the id is unknown.
func UpdateContact(database *sql.DB, id uuid.UUID, updates *models.ContactUpdate) (*models.Contact, error) {
	set := "updated_at = ?"
	args := []any{time.Now().UTC()}

	add := func(column string, value any) {
		set += fmt.Sprintf(", %s = ?", column)
		args = append(args, value)
	}

	if updates.FirstName != nil {
		add("first_name", *updates.FirstName)
	}
	if updates.LastName != nil {
		add("last_name", *updates.LastName)
	}
	if updates.Email != nil {
		add("email", *updates.Email)
	}
	if updates.Phone != nil {
		add("phone", *updates.Phone)
	}
	if updates.Company != nil {
		add("company", *updates.Company)
	}
	if updates.Location != nil {
		add("location", *updates.Location)
	}
	if updates.Source != nil {
		add("source", *updates.Source)
	}
	if updates.Status != nil {
		add("status", *updates.Status)
	}
	if updates.DietaryInterests != nil {
		add("dietary_interests", listToJSON(*updates.DietaryInterests))
	}
	if updates.PlantBasedLevel != nil {
		add("plant_based_level", *updates.PlantBasedLevel)
	}
	if updates.Tags != nil {
		add("tags", listToJSON(*updates.Tags))
	}
	if updates.AdminNotes != nil {
		add("admin_notes", *updates.AdminNotes)
	}
	if updates.IsBusinessInquiry != nil {
		add("is_business_inquiry", *updates.IsBusinessInquiry)
	}
	if updates.InquiryType != nil {
		add("inquiry_type", *updates.InquiryType)
	}
	if updates.EstimatedValue != nil {
		add("estimated_value", *updates.EstimatedValue)
	}
	if updates.AssignedTo != nil {
		add("assigned_to", *updates.AssignedTo)
	}

	args = append(args, id.String())
	result, err := database.Exec("UPDATE contacts SET "+set+" WHERE id = ?", args...)
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

	return GetContact(database, id)
}

// RecordEmailSent bumps the sent counter and stamps last_email_sent plus
// last_contacted. Counters only move forward except by explicit reset.
func RecordEmailSent(database *sql.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	_, err := database.Exec(`
		UPDATE contacts
		SET emails_sent = emails_sent + 1, last_email_sent = ?, last_contacted = ?, updated_at = ?
		WHERE id = ?
	`, now, now, now, id.String())
	return err
}

func RecordEmailOpened(database *sql.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	_, err := database.Exec(`
		UPDATE contacts
		SET email_opens = email_opens + 1, last_email_opened = ?, updated_at = ?
		WHERE id = ?
	`, now, now, id.String())
	return err
}

// ResetEngagementCounters is the one sanctioned way counters move backward.
func ResetEngagementCounters(database *sql.DB, id uuid.UUID) error {
	_, err := database.Exec(`
		UPDATE contacts
		SET email_opens = 0, email_clicks = 0, emails_sent = 0, website_visits = 0, updated_at = ?
		WHERE id = ?
	`, time.Now().UTC(), id.String())
	return err
}
