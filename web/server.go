// ABOUTME: JSON API server and route table
// ABOUTME: Public catalog and lead routes plus the JWT-gated admin surface
package web

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cravekind/backend/auth"
	"github.com/cravekind/backend/mail"
)

type Server struct {
	db     *sql.DB
	mailer *mail.Mailer
	jwt    *auth.JWT
}

func NewServer(database *sql.DB, mailer *mail.Mailer, jwt *auth.JWT) *Server {
	return &Server{db: database, mailer: mailer, jwt: jwt}
}

// Routes builds the full route table.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/contact", s.handleSubmitContact)

		r.Get("/cravings", s.handleListCravings)
		r.Get("/cravings/{meatType}", s.handleGetCraving)
		r.Get("/alternatives", s.handleListAlternatives)
		r.Get("/alternatives/{id}", s.handleGetAlternative)
		r.Get("/recipes", s.handleListRecipes)
		r.Get("/recipes/{id}", s.handleGetRecipe)
		r.Get("/testimonials", s.handleListTestimonials)
		r.Post("/reviews", s.handleSubmitReview)

		r.Post("/users/register", s.handleRegister)
		r.Post("/users/login", s.handleLogin)
		r.Post("/users/verify-email", s.handleVerifyEmail)
		r.Post("/users/password-reset", s.handlePasswordResetRequest)
		r.Post("/users/password-reset/confirm", s.handlePasswordResetConfirm)

		r.Post("/analytics/events", s.handleRecordEvent)

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAuth(s.jwt))
			r.Use(auth.RequireAdmin)

			r.Get("/contacts", s.handleListContacts)
			r.Get("/contacts/{id}", s.handleGetContact)
			r.Put("/contacts/{id}", s.handleUpdateContact)
			r.Get("/contacts/{id}/interactions", s.handleListInteractions)
			r.Post("/contacts/{id}/interactions", s.handleCreateInteraction)
			r.Put("/interactions/{id}/complete", s.handleCompleteInteraction)

			r.Get("/deals", s.handleListDeals)
			r.Post("/deals", s.handleCreateDeal)
			r.Put("/deals/{id}", s.handleUpdateDealStage)

			r.Get("/reviews", s.handleListReviews)
			r.Put("/reviews/{id}", s.handleModerateReview)

			r.Get("/crm-stats", s.handleCRMStats)
			r.Get("/dashboard", s.handleDashboard)
		})
	})

	return r
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Printf("Starting API server at %s", addr)
	return http.ListenAndServe(addr, s.Routes())
}
