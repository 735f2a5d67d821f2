package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/askloop/askloop-api/internal/api"
	apiMiddleware "github.com/askloop/askloop-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The identity middleware runs globally and never rejects a
// request; each handler enforces its own authorization.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.CORS)

	identity := apiMiddleware.NewIdentityMiddleware(app.tokenService)
	r.Use(identity.Attach)

	tokenHandler := api.NewTokenHandler(
		app.accountStore,
		app.tokenService,
		app.passwordVerifier,
		app.logger,
	)
	accountHandler := api.NewAccountHandler(
		app.accountStore,
		app.questionStore,
		app.answerStore,
		app.passwordHasher,
		app.logger,
	)
	questionHandler := api.NewQuestionHandler(app.questionStore, app.answerStore, app.logger)
	answerHandler := api.NewAnswerHandler(app.answerStore, app.logger)

	r.Post("/tokens", tokenHandler.Issue)

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", accountHandler.List)
		r.Post("/", accountHandler.Create)
		r.Get("/{id}", accountHandler.Get)
		r.Put("/{id}", accountHandler.Update)
		r.Delete("/{id}", accountHandler.Delete)
		r.Get("/{id}/questions", accountHandler.ListQuestions)
		r.Get("/{id}/answers", accountHandler.ListAnswers)
	})

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", questionHandler.List)
		r.Post("/", questionHandler.Create)
		r.Get("/{id}", questionHandler.Get)
		r.Put("/{id}", questionHandler.Update)
		r.Delete("/{id}", questionHandler.Delete)
		r.Get("/{id}/answers", questionHandler.ListAnswers)
	})

	r.Route("/answers", func(r chi.Router) {
		r.Get("/", answerHandler.List)
		r.Post("/", answerHandler.Create)
		r.Get("/{id}", answerHandler.Get)
		r.Put("/{id}", answerHandler.Update)
		r.Delete("/{id}", answerHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
