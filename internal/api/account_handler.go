package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/askloop/askloop-api/internal/api/shared"
	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/platform/logger"
	"github.com/askloop/askloop-api/internal/service/auth"
	"github.com/askloop/askloop-api/internal/store"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accounts  store.AccountStore
	questions store.QuestionStore
	answers   store.AnswerStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(
	accounts store.AccountStore,
	questions store.QuestionStore,
	answers store.AnswerStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountHandler{
		accounts:  accounts,
		questions: questions,
		answers:   answers,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "account_handler")),
	}
}

// List handles GET /accounts. The password hash is excluded from the JSON
// encoding of domain.Account, so responses never carry it.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}

// Get handles GET /accounts/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, account)
}

// Create handles POST /accounts. Validation failures come back together as
// an ordered list; a duplicate username is a validation failure too, not an
// internal error.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"request body is malformed"})
		return
	}

	registration := domain.Registration{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	}
	if problems := registration.Validate(); len(problems) > 0 {
		shared.RespondWithValidationErrors(w, r, problems)
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	account := &domain.Account{
		Username:       req.Username,
		HashedPassword: hashed,
		Name:           req.Name,
	}

	id, err := h.accounts.Create(r.Context(), account)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			shared.RespondWithValidationErrors(w, r, []string{"username is taken"})
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("account registered", slog.Int64("account_id", id))
	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", id))
	shared.RespondWithStatus(w, http.StatusCreated)
}

// Update handles PUT /accounts/{id}. Only the owner may rename an account,
// and the ownership check runs before name validation: a wrong-owner request
// with a bad name still gets 401.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := identityFromRequest(r).RequireOwner(account.ID); err != nil {
		respondError(w, r, err)
		return
	}

	var req UpdateAccountRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithValidationErrors(w, r, []string{"request body is malformed"})
		return
	}

	if problems := domain.ValidateName(req.Name); len(problems) > 0 {
		shared.RespondWithValidationErrors(w, r, problems)
		return
	}

	if err := h.accounts.UpdateName(r.Context(), id, req.Name); err != nil {
		// The row can vanish between the load above and this write.
		respondError(w, r, err)
		return
	}
	shared.RespondWithStatus(w, http.StatusNoContent)
}

// Delete handles DELETE /accounts/{id}. Deleting cascades to the account's
// questions and their answers. Only the owner may delete an account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	account, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := identityFromRequest(r).RequireOwner(account.ID); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	log.Info("account deleted", slog.Int64("account_id", id))
	shared.RespondWithStatus(w, http.StatusNoContent)
}

// ListQuestions handles GET /accounts/{id}/questions.
func (h *AccountHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	questions, err := h.questions.GetByAccountID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// ListAnswers handles GET /accounts/{id}/answers.
func (h *AccountHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	answers, err := h.answers.GetByAccountID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, answers)
}
