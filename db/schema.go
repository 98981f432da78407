// ABOUTME: Database schema definitions
// ABOUTME: Handles SQLite table creation and secondary index statements
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT,
	location TEXT,
	age_group TEXT,
	dietary_goals TEXT NOT NULL DEFAULT '[]',
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user' CHECK(role IN ('user', 'admin')),
	is_verified INTEGER NOT NULL DEFAULT 0,
	verification_token TEXT,
	reset_token TEXT,
	reset_token_expires DATETIME,
	favorites TEXT NOT NULL DEFAULT '[]',
	last_login DATETIME,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	company TEXT,
	location TEXT,
	message TEXT,
	source TEXT NOT NULL DEFAULT 'contact_form',
	status TEXT NOT NULL DEFAULT 'new',
	dietary_interests TEXT NOT NULL DEFAULT '[]',
	plant_based_level TEXT,
	tags TEXT NOT NULL DEFAULT '[]',
	admin_notes TEXT,
	email_opens INTEGER NOT NULL DEFAULT 0 CHECK(email_opens >= 0),
	email_clicks INTEGER NOT NULL DEFAULT 0 CHECK(email_clicks >= 0),
	emails_sent INTEGER NOT NULL DEFAULT 0 CHECK(emails_sent >= 0),
	website_visits INTEGER NOT NULL DEFAULT 0 CHECK(website_visits >= 0),
	last_email_sent DATETIME,
	last_email_opened DATETIME,
	is_business_inquiry INTEGER NOT NULL DEFAULT 0,
	inquiry_type TEXT,
	estimated_value REAL,
	assigned_to TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	last_contacted DATETIME
);

CREATE TABLE IF NOT EXISTS interactions (
	id TEXT PRIMARY KEY,
	contact_id TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('email', 'phone', 'meeting', 'note', 'task')),
	title TEXT NOT NULL,
	description TEXT,
	created_by TEXT NOT NULL,
	scheduled_at DATETIME,
	due_date DATETIME,
	completed_at DATETIME,
	is_completed INTEGER NOT NULL DEFAULT 0,
	email_subject TEXT,
	email_sent_at DATETIME,
	email_opened_at DATETIME,
	email_clicked_at DATETIME,
	priority TEXT CHECK(priority IN ('low', 'medium', 'high') OR priority IS NULL),
	created_at DATETIME NOT NULL,
	FOREIGN KEY (contact_id) REFERENCES contacts(id)
);

CREATE TABLE IF NOT EXISTS deals (
	id TEXT PRIMARY KEY,
	contact_id TEXT NOT NULL,
	title TEXT NOT NULL,
	value REAL NOT NULL CHECK(value > 0),
	stage TEXT NOT NULL DEFAULT 'prospect' CHECK(stage IN ('prospect', 'proposal', 'negotiation', 'closed_won', 'closed_lost')),
	probability INTEGER NOT NULL DEFAULT 0 CHECK(probability BETWEEN 0 AND 100),
	expected_close_date DATETIME,
	actual_close_date DATETIME,
	created_by TEXT NOT NULL,
	assigned_to TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (contact_id) REFERENCES contacts(id)
);

CREATE TABLE IF NOT EXISTS alternatives (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	brand TEXT NOT NULL,
	type TEXT NOT NULL,
	meat_type TEXT NOT NULL,
	description TEXT,
	nutrition TEXT NOT NULL DEFAULT '{}',
	benefits TEXT NOT NULL DEFAULT '[]',
	availability TEXT NOT NULL DEFAULT '',
	price_range TEXT,
	preparation_time TEXT,
	difficulty_level TEXT,
	ingredients TEXT NOT NULL DEFAULT '[]',
	allergens TEXT NOT NULL DEFAULT '[]',
	certifications TEXT NOT NULL DEFAULT '[]',
	image_url TEXT,
	rating REAL NOT NULL DEFAULT 0 CHECK(rating BETWEEN 0 AND 5),
	review_count INTEGER NOT NULL DEFAULT 0 CHECK(review_count >= 0),
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	UNIQUE(name, brand)
);

CREATE TABLE IF NOT EXISTS meat_cravings (
	id TEXT PRIMARY KEY,
	meat_type TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	deficiency TEXT NOT NULL,
	deficiency_explanation TEXT NOT NULL,
	meat_side_effects TEXT NOT NULL DEFAULT '[]',
	recommended_supplements TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS recipes (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL UNIQUE,
	description TEXT,
	meat_type TEXT NOT NULL,
	alternative_id TEXT,
	cuisine_type TEXT NOT NULL DEFAULT 'other',
	prep_time INTEGER NOT NULL CHECK(prep_time > 0),
	cook_time INTEGER NOT NULL CHECK(cook_time > 0),
	total_time INTEGER NOT NULL CHECK(total_time > 0),
	servings INTEGER NOT NULL CHECK(servings > 0),
	difficulty TEXT NOT NULL,
	ingredients TEXT NOT NULL DEFAULT '[]',
	instructions TEXT NOT NULL DEFAULT '[]',
	tips TEXT NOT NULL DEFAULT '[]',
	nutrition_per_serving TEXT,
	tags TEXT NOT NULL DEFAULT '[]',
	image_url TEXT,
	video_url TEXT,
	rating REAL NOT NULL DEFAULT 0 CHECK(rating BETWEEN 0 AND 5),
	review_count INTEGER NOT NULL DEFAULT 0 CHECK(review_count >= 0),
	view_count INTEGER NOT NULL DEFAULT 0 CHECK(view_count >= 0),
	is_featured INTEGER NOT NULL DEFAULT 0,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_by TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (alternative_id) REFERENCES alternatives(id)
);

CREATE TABLE IF NOT EXISTS reviews (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	user_name TEXT NOT NULL,
	user_email TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('alternative_review', 'testimonial', 'recipe_review')),
	target_id TEXT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	rating INTEGER NOT NULL CHECK(rating BETWEEN 1 AND 5),
	helpful_count INTEGER NOT NULL DEFAULT 0 CHECK(helpful_count >= 0),
	status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'approved', 'rejected')),
	is_featured INTEGER NOT NULL DEFAULT 0,
	admin_notes TEXT,
	transition_period TEXT,
	verified_purchase INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	approved_at DATETIME,
	approved_by TEXT
);

CREATE TABLE IF NOT EXISTS testimonials (
	id TEXT PRIMARY KEY,
	user_name TEXT NOT NULL,
	user_avatar TEXT,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	rating INTEGER NOT NULL CHECK(rating BETWEEN 1 AND 5),
	transition_period TEXT,
	is_featured INTEGER NOT NULL DEFAULT 1,
	admin_created INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	UNIQUE(user_name, title)
);

CREATE TABLE IF NOT EXISTS analytics (
	id TEXT PRIMARY KEY,
	user_id TEXT,
	session_id TEXT,
	event_type TEXT NOT NULL,
	event_data TEXT NOT NULL DEFAULT '{}',
	page_url TEXT,
	user_agent TEXT,
	ip_address TEXT,
	timestamp DATETIME NOT NULL
);
`

// indexes are created best-effort after the schema; see EnsureIndexes.
var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_users_verification_token ON users(verification_token)`,
	`CREATE INDEX IF NOT EXISTS idx_users_reset_token ON users(reset_token)`,
	`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_email ON contacts(email)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_source ON contacts(source)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_contact_id ON interactions(contact_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_created_at ON interactions(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_contact_id ON deals(contact_id)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage)`,
	`CREATE INDEX IF NOT EXISTS idx_alternatives_meat_type ON alternatives(meat_type)`,
	`CREATE INDEX IF NOT EXISTS idx_alternatives_brand ON alternatives(brand)`,
	`CREATE INDEX IF NOT EXISTS idx_alternatives_is_active ON alternatives(is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_alternatives_rating ON alternatives(rating)`,
	`CREATE INDEX IF NOT EXISTS idx_recipes_meat_type ON recipes(meat_type)`,
	`CREATE INDEX IF NOT EXISTS idx_recipes_is_featured ON recipes(is_featured)`,
	`CREATE INDEX IF NOT EXISTS idx_recipes_is_active ON recipes(is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_target_id ON reviews(target_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_status ON reviews(status)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_testimonials_is_featured ON testimonials(is_featured)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_event_type ON analytics(event_type)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_timestamp ON analytics(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_user_id ON analytics(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_session_id ON analytics(session_id)`,
}

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
