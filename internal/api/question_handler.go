package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/askloop/askloop-api/internal/api/shared"
	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/platform/logger"
	"github.com/askloop/askloop-api/internal/store"
)

// QuestionHandler handles question-related HTTP requests.
type QuestionHandler struct {
	questions store.QuestionStore
	answers   store.AnswerStore
	logger    *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler with the given dependencies.
func NewQuestionHandler(
	questions store.QuestionStore,
	answers store.AnswerStore,
	logger *slog.Logger,
) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionHandler{
		questions: questions,
		answers:   answers,
		logger:    logger.With(slog.String("component", "question_handler")),
	}
}

// List handles GET /questions. Public, no identity required.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// Get handles GET /questions/{id}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// Create handles POST /questions. Requires an attached identity; the new
// question is owned by it. The account existing at authentication time but
// not at write time surfaces as a validation failure, not a 500.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity := identityFromRequest(r)
	if err := identity.Require(); err != nil {
		respondError(w, r, err)
		return
	}

	var req QuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"request body is malformed"})
		return
	}

	if problems := domain.ValidateQuestionFields(req.Title, req.Description); len(problems) > 0 {
		shared.RespondWithValidationErrors(w, r, problems)
		return
	}

	question := domain.NewQuestion(identity.AccountID, req.Title, req.Description)
	id, err := h.questions.Create(r.Context(), question)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			shared.RespondWithValidationErrors(w, r, []string{"account doesn't exist"})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("question posted",
		slog.Int64("question_id", id),
		slog.Int64("account_id", identity.AccountID))
	w.Header().Set("Location", fmt.Sprintf("/questions/%d", id))
	shared.RespondWithStatus(w, http.StatusCreated)
}

// Update handles PUT /questions/{id}. Existence is checked before ownership
// and ownership before field validation.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := identityFromRequest(r).RequireOwner(question.AccountID); err != nil {
		respondError(w, r, err)
		return
	}

	var req QuestionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"request body is malformed"})
		return
	}

	if problems := domain.ValidateQuestionFields(req.Title, req.Description); len(problems) > 0 {
		shared.RespondWithValidationErrors(w, r, problems)
		return
	}

	if err := h.questions.Update(r.Context(), id, req.Title, req.Description); err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithStatus(w, http.StatusNoContent)
}

// Delete handles DELETE /questions/{id}. Deleting cascades to the
// question's answers.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := identityFromRequest(r).RequireOwner(question.AccountID); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.questions.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	log.Info("question deleted", slog.Int64("question_id", id))
	shared.RespondWithStatus(w, http.StatusNoContent)
}

// ListAnswers handles GET /questions/{id}/answers.
func (h *QuestionHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	answers, err := h.answers.GetByQuestionID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, answers)
}
