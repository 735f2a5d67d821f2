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

// AnswerHandler handles answer-related HTTP requests.
type AnswerHandler struct {
	answers store.AnswerStore
	logger  *slog.Logger
}

// NewAnswerHandler creates a new AnswerHandler with the given dependencies.
func NewAnswerHandler(answers store.AnswerStore, logger *slog.Logger) *AnswerHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AnswerHandler{
		answers: answers,
		logger:  logger.With(slog.String("component", "answer_handler")),
	}
}

// List handles GET /answers. Public, no identity required.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	answers, err := h.answers.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, answers)
}

// Get handles GET /answers/{id}.
func (h *AnswerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	answer, err := h.answers.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, answer)
}

// Create handles POST /answers. Requires an attached identity; the answer
// is owned by it and references the question from the request body. The
// database cannot say which foreign key was rejected, so the validation
// message names both.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	identity := identityFromRequest(r)
	if err := identity.Require(); err != nil {
		respondError(w, r, err)
		return
	}

	var req CreateAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"request body is malformed"})
		return
	}

	if problems := domain.ValidateAnswerFields(req.Description); len(problems) > 0 {
		shared.RespondWithValidationErrors(w, r, problems)
		return
	}

	answer := domain.NewAnswer(identity.AccountID, req.QuestionID, req.Description)
	id, err := h.answers.Create(r.Context(), answer)
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			shared.RespondWithValidationErrors(w, r, []string{"account doesn't exist, or question doesn't exist"})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("answer posted",
		slog.Int64("answer_id", id),
		slog.Int64("question_id", req.QuestionID),
		slog.Int64("account_id", identity.AccountID))
	w.Header().Set("Location", fmt.Sprintf("/answers/%d", id))
	shared.RespondWithStatus(w, http.StatusCreated)
}

// Update handles PUT /answers/{id}. Existence is checked before ownership
// and ownership before field validation.
func (h *AnswerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	answer, err := h.answers.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := identityFromRequest(r).RequireOwner(answer.AccountID); err != nil {
		respondError(w, r, err)
		return
	}

	var req UpdateAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"request body is malformed"})
		return
	}

	if problems := domain.ValidateAnswerFields(req.Description); len(problems) > 0 {
		shared.RespondWithValidationErrors(w, r, problems)
		return
	}

	if err := h.answers.Update(r.Context(), id, req.Description); err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithStatus(w, http.StatusNoContent)
}

// Delete handles DELETE /answers/{id}.
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	answer, err := h.answers.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := identityFromRequest(r).RequireOwner(answer.AccountID); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.answers.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	log.Info("answer deleted", slog.Int64("answer_id", id))
	shared.RespondWithStatus(w, http.StatusNoContent)
}
