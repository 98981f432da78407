// ABOUTME: User account database operations
// ABOUTME: Handles account creation, lookup, token flows, and favorites
package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cravekind/backend/models"
)

const userColumns = `id, name, email, phone, location, age_group, dietary_goals,
	password_hash, role, is_verified, verification_token, reset_token, reset_token_expires,
	favorites, last_login, created_at, updated_at`

// CreateUser persists a new account. Dietary goals are validated before
// anything touches the store.
func CreateUser(database *sql.DB, user *models.User) error {
	if err := models.ValidateDietaryGoals(user.DietaryGoals); err != nil {
		return err
	}

	user.ID = uuid.New()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	_, err := database.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, user.ID.String(), user.Name, user.Email, user.Phone, user.Location, user.AgeGroup,
		listToJSON(user.DietaryGoals), user.PasswordHash, user.Role, user.IsVerified,
		nullableString(user.VerificationToken), nullableString(user.ResetToken), user.ResetTokenExpires,
		listToJSON(user.Favorites), user.LastLogin, user.CreatedAt, user.UpdatedAt)

	return err
}

// UpsertUser inserts or replaces an account keyed by email. Used by the
// seed loader; an existing row keeps its id and created_at.
func UpsertUser(database *sql.DB, user *models.User) error {
	if err := models.ValidateDietaryGoals(user.DietaryGoals); err != nil {
		return err
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	_, err := database.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			name = excluded.name,
			phone = excluded.phone,
			location = excluded.location,
			age_group = excluded.age_group,
			dietary_goals = excluded.dietary_goals,
			password_hash = excluded.password_hash,
			role = excluded.role,
			is_verified = excluded.is_verified,
			updated_at = excluded.updated_at
	`, user.ID.String(), user.Name, user.Email, user.Phone, user.Location, user.AgeGroup,
		listToJSON(user.DietaryGoals), user.PasswordHash, user.Role, user.IsVerified,
		nullableString(user.VerificationToken), nullableString(user.ResetToken), user.ResetTokenExpires,
		listToJSON(user.Favorites), user.LastLogin, user.CreatedAt, user.UpdatedAt)

	return err
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var (
		phone, location, ageGroup, verificationToken, resetToken sql.NullString
		dietaryGoals, favorites                                  string
	)

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &phone, &location, &ageGroup, &dietaryGoals,
		&u.PasswordHash, &u.Role, &u.IsVerified, &verificationToken, &resetToken, &u.ResetTokenExpires,
		&favorites, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Phone = phone.String
	u.Location = location.String
	u.AgeGroup = ageGroup.String
	u.VerificationToken = verificationToken.String
	u.ResetToken = resetToken.String
	u.DietaryGoals = listFromJSON(dietaryGoals)
	u.Favorites = listFromJSON(favorites)

	return u, nil
}

func GetUser(database *sql.DB, id uuid.UUID) (*models.User, error) {
	return getUserBy(database, "id", id.String())
}

func GetUserByEmail(database *sql.DB, email string) (*models.User, error) {
	return getUserBy(database, "email", strings.ToLower(strings.TrimSpace(email)))
}

func GetUserByResetToken(database *sql.DB, token string) (*models.User, error) {
	return getUserBy(database, "reset_token", token)
}

func GetUserByVerificationToken(database *sql.DB, token string) (*models.User, error) {
	return getUserBy(database, "verification_token", token)
}

func getUserBy(database *sql.DB, column, value string) (*models.User, error) {
	user, err := scanUser(database.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, value))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func MarkUserVerified(database *sql.DB, id uuid.UUID) error {
	_, err := database.Exec(`
		UPDATE users SET is_verified = 1, verification_token = NULL, updated_at = ? WHERE id = ?
	`, time.Now().UTC(), id.String())
	return err
}

func SetResetToken(database *sql.DB, id uuid.UUID, token string, expires time.Time) error {
	_, err := database.Exec(`
		UPDATE users SET reset_token = ?, reset_token_expires = ?, updated_at = ? WHERE id = ?
	`, token, expires, time.Now().UTC(), id.String())
	return err
}

func UpdatePassword(database *sql.DB, id uuid.UUID, passwordHash string) error {
	_, err := database.Exec(`
		UPDATE users SET password_hash = ?, reset_token = NULL, reset_token_expires = NULL, updated_at = ? WHERE id = ?
	`, passwordHash, time.Now().UTC(), id.String())
	return err
}

func RecordLogin(database *sql.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	_, err := database.Exec(`
		UPDATE users SET last_login = ?, updated_at = ? WHERE id = ?
	`, now, now, id.String())
	return err
}

func SetFavorites(database *sql.DB, id uuid.UUID, favorites []string) error {
	_, err := database.Exec(`
		UPDATE users SET favorites = ?, updated_at = ? WHERE id = ?
	`, listToJSON(favorites), time.Now().UTC(), id.String())
	return err
}
