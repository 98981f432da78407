// ABOUTME: Tests for contact-form intake
// ABOUTME: End-to-end submission, business classification, and validation
package web

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/models"
)

func TestSubmitContactForm(t *testing.T) {
	s, database := newTestServer(t)

	rec := doRequest(t, s, "POST", "/api/contact", map[string]string{
		"firstName": "Emma",
		"lastName":  "Rodriguez",
		"email":     "emma@example.com",
		"message":   "Hi! I'm interested in plant-based alternatives for chicken. Any recommendations?",
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Thank you for your message! We'll get back to you soon.", body["message"])

	contact, err := db.GetContactByEmail(database, "emma@example.com")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, models.SourceContactForm, contact.Source)
	assert.Equal(t, models.StatusNew, contact.Status)
	assert.False(t, contact.IsBusinessInquiry)
}

func TestSubmitContactFormBusinessInquiry(t *testing.T) {
	s, database := newTestServer(t)

	rec := doRequest(t, s, "POST", "/api/contact", map[string]string{
		"firstName": "Jordan",
		"lastName":  "Lee",
		"email":     "jordan@acme.example",
		"message":   "We run a restaurant chain and would love to discuss a business partnership and collaboration.",
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)

	contact, err := db.GetContactByEmail(database, "jordan@acme.example")
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.True(t, contact.IsBusinessInquiry)
}

func TestSubmitContactFormValidation(t *testing.T) {
	s, database := newTestServer(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing first name", map[string]string{"lastName": "R", "email": "a@example.com", "message": "hi"}},
		{"missing last name", map[string]string{"firstName": "E", "email": "a@example.com", "message": "hi"}},
		{"missing message", map[string]string{"firstName": "E", "lastName": "R", "email": "a@example.com"}},
		{"bad email", map[string]string{"firstName": "E", "lastName": "R", "email": "not-an-email", "message": "hi"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, "POST", "/api/contact", tc.body, "")
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}

	// Nothing was persisted for rejected submissions.
	contacts, err := db.ListContacts(database, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
