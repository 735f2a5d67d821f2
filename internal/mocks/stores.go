package mocks

import (
	"context"

	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/store"
)

// MockAccountStore implements store.AccountStore with per-method function
// fields. Unset methods panic, which makes an unexpected call an immediate
// test failure.
type MockAccountStore struct {
	CreateFn        func(ctx context.Context, account *domain.Account) (int64, error)
	GetAllFn        func(ctx context.Context) ([]domain.Account, error)
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
	UpdateNameFn    func(ctx context.Context, id int64, name string) error
	DeleteFn        func(ctx context.Context, id int64) error
}

var _ store.AccountStore = (*MockAccountStore)(nil)

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) (int64, error) {
	return m.CreateFn(ctx, account)
}

func (m *MockAccountStore) GetAll(ctx context.Context) ([]domain.Account, error) {
	return m.GetAllFn(ctx)
}

func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return m.GetByUsernameFn(ctx, username)
}

func (m *MockAccountStore) UpdateName(ctx context.Context, id int64, name string) error {
	return m.UpdateNameFn(ctx, id, name)
}

func (m *MockAccountStore) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

// MockQuestionStore implements store.QuestionStore with per-method function
// fields.
type MockQuestionStore struct {
	CreateFn         func(ctx context.Context, question *domain.Question) (int64, error)
	GetAllFn         func(ctx context.Context) ([]domain.Question, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Question, error)
	GetByAccountIDFn func(ctx context.Context, accountID int64) ([]domain.Question, error)
	UpdateFn         func(ctx context.Context, id int64, title, description string) error
	DeleteFn         func(ctx context.Context, id int64) error
}

var _ store.QuestionStore = (*MockQuestionStore)(nil)

func (m *MockQuestionStore) Create(ctx context.Context, question *domain.Question) (int64, error) {
	return m.CreateFn(ctx, question)
}

func (m *MockQuestionStore) GetAll(ctx context.Context) ([]domain.Question, error) {
	return m.GetAllFn(ctx)
}

func (m *MockQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockQuestionStore) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Question, error) {
	return m.GetByAccountIDFn(ctx, accountID)
}

func (m *MockQuestionStore) Update(ctx context.Context, id int64, title, description string) error {
	return m.UpdateFn(ctx, id, title, description)
}

func (m *MockQuestionStore) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

// MockAnswerStore implements store.AnswerStore with per-method function
// fields.
type MockAnswerStore struct {
	CreateFn          func(ctx context.Context, answer *domain.Answer) (int64, error)
	GetAllFn          func(ctx context.Context) ([]domain.Answer, error)
	GetByIDFn         func(ctx context.Context, id int64) (*domain.Answer, error)
	GetByQuestionIDFn func(ctx context.Context, questionID int64) ([]domain.Answer, error)
	GetByAccountIDFn  func(ctx context.Context, accountID int64) ([]domain.Answer, error)
	UpdateFn          func(ctx context.Context, id int64, description string) error
	DeleteFn          func(ctx context.Context, id int64) error
}

var _ store.AnswerStore = (*MockAnswerStore)(nil)

func (m *MockAnswerStore) Create(ctx context.Context, answer *domain.Answer) (int64, error) {
	return m.CreateFn(ctx, answer)
}

func (m *MockAnswerStore) GetAll(ctx context.Context) ([]domain.Answer, error) {
	return m.GetAllFn(ctx)
}

func (m *MockAnswerStore) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *MockAnswerStore) GetByQuestionID(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return m.GetByQuestionIDFn(ctx, questionID)
}

func (m *MockAnswerStore) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Answer, error) {
	return m.GetByAccountIDFn(ctx, accountID)
}

func (m *MockAnswerStore) Update(ctx context.Context, id int64, description string) error {
	return m.UpdateFn(ctx, id, description)
}

func (m *MockAnswerStore) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}
