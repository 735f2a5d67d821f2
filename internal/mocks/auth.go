package mocks

import (
	"context"

	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService with canned results.
type MockTokenService struct {
	AccessToken string
	IDToken     string
	IssueErr    error

	// VerifyAccountID and VerifyErr control VerifyAccessToken; VerifiedWith
	// records the token string it was called with.
	VerifyAccountID int64
	VerifyErr       error
	VerifiedWith    string
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) IssueAccessToken(ctx context.Context, accountID int64) (string, error) {
	if m.IssueErr != nil {
		return "", m.IssueErr
	}
	return m.AccessToken, nil
}

func (m *MockTokenService) IssueIDToken(ctx context.Context, account *domain.Account) (string, error) {
	if m.IssueErr != nil {
		return "", m.IssueErr
	}
	return m.IDToken, nil
}

func (m *MockTokenService) VerifyAccessToken(ctx context.Context, tokenString string) (int64, error) {
	m.VerifiedWith = tokenString
	if m.VerifyErr != nil {
		return 0, m.VerifyErr
	}
	return m.VerifyAccountID, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier with a fixed result.
type MockPasswordVerifier struct {
	CompareErr error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.CompareErr
}

// MockPasswordHasher implements auth.PasswordHasher with a fixed result.
type MockPasswordHasher struct {
	Hashed  string
	HashErr error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.Hashed != "" {
		return m.Hashed, nil
	}
	return "hashed:" + password, nil
}
