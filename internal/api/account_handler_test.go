package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askloop/askloop-api/internal/api"
	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/mocks"
	"github.com/askloop/askloop-api/internal/store"
)

func accountRouter(accounts *mocks.MockAccountStore, questions *mocks.MockQuestionStore, answers *mocks.MockAnswerStore, hasher *mocks.MockPasswordHasher) chi.Router {
	if hasher == nil {
		hasher = &mocks.MockPasswordHasher{}
	}
	h := api.NewAccountHandler(accounts, questions, answers, hasher, nil)

	r := chi.NewRouter()
	r.Get("/accounts", h.List)
	r.Post("/accounts", h.Create)
	r.Get("/accounts/{id}", h.Get)
	r.Put("/accounts/{id}", h.Update)
	r.Delete("/accounts/{id}", h.Delete)
	r.Get("/accounts/{id}/questions", h.ListQuestions)
	r.Get("/accounts/{id}/answers", h.ListAnswers)
	return r
}

func TestAccountHandler_List_ExcludesPasswordHash(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountStore{
		GetAllFn: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{
				{ID: 1, Username: "alice1", HashedPassword: "$2a$10$verysecret", Name: "Alice"},
			}, nil
		},
	}
	router := accountRouter(accounts, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"username":"alice1"`)
	assert.NotContains(t, body, "verysecret")
	assert.NotContains(t, body, "password")
}

func TestAccountHandler_Get(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountStore{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Account, error) {
			if id != 1 {
				return nil, store.ErrAccountNotFound
			}
			return &domain.Account{ID: 1, Username: "alice1", HashedPassword: "hash", Name: "Alice"}, nil
		},
	}
	router := accountRouter(accounts, nil, nil, nil)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, float64(1), got["id"])
		assert.Equal(t, "alice1", got["username"])
		assert.NotContains(t, got, "password")
	})

	t.Run("missing row", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/99", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/abc", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccountHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success sets location and returns no body", func(t *testing.T) {
		var created *domain.Account
		accounts := &mocks.MockAccountStore{
			CreateFn: func(ctx context.Context, account *domain.Account) (int64, error) {
				created = account
				return 7, nil
			},
		}
		router := accountRouter(accounts, nil, nil, &mocks.MockPasswordHasher{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/accounts", api.CreateAccountRequest{
			Username: "alice1",
			Password: "secret1",
			Name:     "Alice",
		}))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/accounts/7", rec.Header().Get("Location"))
		assert.Empty(t, rec.Body.String())

		require.NotNil(t, created)
		assert.Equal(t, "alice1", created.Username)
		assert.Equal(t, "hashed:secret1", created.HashedPassword, "password must be hashed before persistence")
	})

	t.Run("validation failures come back ordered", func(t *testing.T) {
		router := accountRouter(&mocks.MockAccountStore{}, nil, nil, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/accounts", api.CreateAccountRequest{
			Username: "ab",
			Password: "",
			Name:     "Alice",
		}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"username is too short", "password is required"}, decodeStringArray(t, rec))
	})

	t.Run("duplicate username is a validation failure", func(t *testing.T) {
		accounts := &mocks.MockAccountStore{
			CreateFn: func(ctx context.Context, account *domain.Account) (int64, error) {
				return 0, store.ErrUsernameTaken
			},
		}
		router := accountRouter(accounts, nil, nil, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/accounts", api.CreateAccountRequest{
			Username: "alice1",
			Password: "secret1",
			Name:     "Alice",
		}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"username is taken"}, decodeStringArray(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		router := accountRouter(&mocks.MockAccountStore{}, nil, nil, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, rawRequest(http.MethodPost, "/accounts", "{oops"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountHandler_Update(t *testing.T) {
	t.Parallel()

	existing := &domain.Account{ID: 1, Username: "alice1", Name: "Alice"}

	newRouter := func(updateErr error) (chi.Router, *string) {
		var renamedTo string
		accounts := &mocks.MockAccountStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Account, error) {
				if id != existing.ID {
					return nil, store.ErrAccountNotFound
				}
				return existing, nil
			},
			UpdateNameFn: func(ctx context.Context, id int64, name string) error {
				renamedTo = name
				return updateErr
			},
		}
		return accountRouter(accounts, nil, nil, nil), &renamedTo
	}

	t.Run("missing row", func(t *testing.T) {
		router, _ := newRouter(nil)
		rec := httptest.NewRecorder()
		req := asAccount(jsonRequest(t, http.MethodPut, "/accounts/99", api.UpdateAccountRequest{Name: "Alicia"}), 1)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		router, _ := newRouter(nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPut, "/accounts/1", api.UpdateAccountRequest{Name: "Alicia"}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("wrong owner with invalid name still gets 401", func(t *testing.T) {
		router, _ := newRouter(nil)
		rec := httptest.NewRecorder()
		req := asAccount(jsonRequest(t, http.MethodPut, "/accounts/1", api.UpdateAccountRequest{Name: "x"}), 2)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("owner with invalid name", func(t *testing.T) {
		router, _ := newRouter(nil)
		rec := httptest.NewRecorder()
		req := asAccount(jsonRequest(t, http.MethodPut, "/accounts/1", api.UpdateAccountRequest{Name: "x"}), 1)
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"name is too short"}, decodeStringArray(t, rec))
	})

	t.Run("owner renames", func(t *testing.T) {
		router, renamedTo := newRouter(nil)
		rec := httptest.NewRecorder()
		req := asAccount(jsonRequest(t, http.MethodPut, "/accounts/1", api.UpdateAccountRequest{Name: "Alicia"}), 1)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "Alicia", *renamedTo)
	})

	t.Run("row vanishes between load and write", func(t *testing.T) {
		router, _ := newRouter(store.ErrAccountNotFound)
		rec := httptest.NewRecorder()
		req := asAccount(jsonRequest(t, http.MethodPut, "/accounts/1", api.UpdateAccountRequest{Name: "Alicia"}), 1)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccountHandler_Delete(t *testing.T) {
	t.Parallel()

	newRouter := func() (chi.Router, *bool) {
		var deleted bool
		accounts := &mocks.MockAccountStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Account, error) {
				if id != 1 {
					return nil, store.ErrAccountNotFound
				}
				return &domain.Account{ID: 1, Username: "alice1", Name: "Alice"}, nil
			},
			DeleteFn: func(ctx context.Context, id int64) error {
				deleted = true
				return nil
			},
		}
		return accountRouter(accounts, nil, nil, nil), &deleted
	}

	t.Run("missing row", func(t *testing.T) {
		router, _ := newRouter()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asAccount(httptest.NewRequest(http.MethodDelete, "/accounts/99", nil), 1))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		router, deleted := newRouter()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/accounts/1", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *deleted)
	})

	t.Run("wrong owner", func(t *testing.T) {
		router, deleted := newRouter()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asAccount(httptest.NewRequest(http.MethodDelete, "/accounts/1", nil), 2))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, *deleted)
	})

	t.Run("owner deletes", func(t *testing.T) {
		router, deleted := newRouter()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asAccount(httptest.NewRequest(http.MethodDelete, "/accounts/1", nil), 1))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, *deleted)
	})
}

func TestAccountHandler_NestedListings(t *testing.T) {
	t.Parallel()

	questions := &mocks.MockQuestionStore{
		GetByAccountIDFn: func(ctx context.Context, accountID int64) ([]domain.Question, error) {
			require.Equal(t, int64(1), accountID)
			return []domain.Question{{ID: 3, AccountID: 1, Title: "A title", Description: "A description.", CreatedAt: 1700000000000}}, nil
		},
	}
	answers := &mocks.MockAnswerStore{
		GetByAccountIDFn: func(ctx context.Context, accountID int64) ([]domain.Answer, error) {
			return []domain.Answer{}, nil
		},
	}
	router := accountRouter(&mocks.MockAccountStore{}, questions, answers, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/1/questions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(1), got[0]["accountId"])
	assert.Equal(t, float64(1700000000000), got[0]["createdAt"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/1/answers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestAccountHandler_InternalErrorIsOpaque(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountStore{
		GetAllFn: func(ctx context.Context) ([]domain.Account, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := accountRouter(accounts, nil, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}
