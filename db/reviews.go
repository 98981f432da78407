// ABOUTME: Review and testimonial database operations
// ABOUTME: Handles review creation, moderation, and testimonial upserts
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const reviewColumns = `id, user_id, user_name, user_email, type, target_id, title, content,
	rating, helpful_count, status, is_featured, admin_notes, transition_period,
	verified_purchase, created_at, updated_at, approved_at, approved_by`

func CreateReview(database *sql.DB, review *models.Review) error {
	review.ID = uuid.New()
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now
	if review.Status == "" {
		review.Status = models.ReviewPending
	}

	var targetID any
	if review.TargetID != nil {
		targetID = review.TargetID.String()
	}

	_, err := database.Exec(`
		INSERT INTO reviews (`+reviewColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, review.ID.String(), review.UserID, review.UserName, review.UserEmail, review.Type,
		targetID, review.Title, review.Content, review.Rating, review.HelpfulCount,
		review.Status, review.IsFeatured, review.AdminNotes, review.TransitionPeriod,
		review.VerifiedPurchase, review.CreatedAt, review.UpdatedAt, review.ApprovedAt, review.ApprovedBy)

	return err
}

func scanReview(row rowScanner) (*models.Review, error) {
	r := &models.Review{}
	var targetID, adminNotes, transitionPeriod, approvedBy sql.NullString

	err := row.Scan(
		&r.ID, &r.UserID, &r.UserName, &r.UserEmail, &r.Type, &targetID, &r.Title, &r.Content,
		&r.Rating, &r.HelpfulCount, &r.Status, &r.IsFeatured, &adminNotes, &transitionPeriod,
		&r.VerifiedPurchase, &r.CreatedAt, &r.UpdatedAt, &r.ApprovedAt, &approvedBy,
	)
	if err != nil {
		return nil, err
	}

	if targetID.Valid {
		if id, err := uuid.Parse(targetID.String); err == nil {
			r.TargetID = &id
		}
	}
	r.AdminNotes = adminNotes.String
	r.TransitionPeriod = transitionPeriod.String
	r.ApprovedBy = approvedBy.String

	return r, nil
}

func GetReview(database *sql.DB, id uuid.UUID) (*models.Review, error) {
	review, err := scanReview(database.QueryRow(`
		SELECT `+reviewColumns+` FROM reviews WHERE id = ?
	`, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

func ListReviews(database *sql.DB, status string, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := database.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *r)
	}

	return reviews, rows.Err()
}

// ModerateReview moves a review out of pending. Approvals stamp the
// approver and time. Returns nil when the id is unknown.
func ModerateReview(database *sql.DB, id uuid.UUID, status, moderator string) (*models.Review, error) {
	now := time.Now().UTC()
	var approvedAt *time.Time
	approvedBy := ""
	if status == models.ReviewApproved {
		approvedAt = &now
		approvedBy = moderator
	}

	result, err := database.Exec(`
		UPDATE reviews SET status = ?, approved_at = ?, approved_by = ?, updated_at = ? WHERE id = ?
	`, status, approvedAt, approvedBy, now, id.String())
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

	return GetReview(database, id)
}

// UpsertTestimonial inserts or replaces a testimonial keyed by name+title.
func UpsertTestimonial(database *sql.DB, t *models.Testimonial) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_, err := database.Exec(`
		INSERT INTO testimonials (id, user_name, user_avatar, title, content, rating, transition_period, is_featured, admin_created, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_name, title) DO UPDATE SET
			user_avatar = excluded.user_avatar,
			content = excluded.content,
			rating = excluded.rating,
			transition_period = excluded.transition_period,
			is_featured = excluded.is_featured,
			admin_created = excluded.admin_created
	`, t.ID.String(), t.UserName, t.UserAvatar, t.Title, t.Content, t.Rating,
		t.TransitionPeriod, t.IsFeatured, t.AdminCreated, t.CreatedAt)

	return err
}

func ListTestimonials(database *sql.DB, featuredOnly bool) ([]models.Testimonial, error) {
	query := `SELECT id, user_name, user_avatar, title, content, rating, transition_period, is_featured, admin_created, created_at FROM testimonials`
	if featuredOnly {
		query += ` WHERE is_featured = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := database.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		var avatar, transitionPeriod sql.NullString
		if err := rows.Scan(&t.ID, &t.UserName, &avatar, &t.Title, &t.Content, &t.Rating,
			&transitionPeriod, &t.IsFeatured, &t.AdminCreated, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.UserAvatar = avatar.String
		t.TransitionPeriod = transitionPeriod.String
		testimonials = append(testimonials, t)
	}

	return testimonials, rows.Err()
}
