package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/askloop/askloop-api/internal/config"
	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/platform/logger"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA signing.
// The access and identity credentials are signed with independent secrets so a
// leaked display token can never authorize a mutation.
type hmacTokenService struct {
	accessKey []byte
	idKey     []byte
	timeFunc  func() time.Time // Injectable for testing
}

// accessClaims is the claim set of the access credential. The accountId claim
// is the only input to authorization decisions.
type accessClaims struct {
	AccountID int64 `json:"accountId"`
	jwt.RegisteredClaims
}

// idClaims is the claim set of the identity credential, for client-side
// display only.
type idClaims struct {
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA256 signing with
// the two secrets from the auth configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if len(cfg.AccessTokenSecret) < 32 {
		return nil, fmt.Errorf("access token secret must be at least 32 characters")
	}
	if len(cfg.IDTokenSecret) < 32 {
		return nil, fmt.Errorf("id token secret must be at least 32 characters")
	}

	return &hmacTokenService{
		accessKey: []byte(cfg.AccessTokenSecret),
		idKey:     []byte(cfg.IDTokenSecret),
		timeFunc:  time.Now,
	}, nil
}

// IssueAccessToken creates a signed access credential for the account.
func (s *hmacTokenService) IssueAccessToken(ctx context.Context, accountID int64) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := accessClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  fmt.Sprintf("%d", accountID),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.accessKey)
	if err != nil {
		log.Error("failed to sign access token",
			"error", err,
			"account_id", accountID)
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signedToken, nil
}

// IssueIDToken creates a signed identity-claim credential for the account.
func (s *hmacTokenService) IssueIDToken(ctx context.Context, account *domain.Account) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := idClaims{
		Name:              account.Name,
		PreferredUsername: account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  fmt.Sprintf("%d", account.ID),
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.idKey)
	if err != nil {
		log.Error("failed to sign id token",
			"error", err,
			"account_id", account.ID)
		return "", fmt.Errorf("failed to sign id token: %w", err)
	}

	return signedToken, nil
}

// VerifyAccessToken validates an access credential's signature and returns
// the account ID it carries.
func (s *hmacTokenService) VerifyAccessToken(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	token, err := jwt.ParseWithClaims(
		tokenString,
		&accessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.accessKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("access token verification failed: malformed token", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("access token verification failed: invalid signature", "error", err)
		default:
			log.Debug("access token verification failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		log.Debug("access token verification failed: invalid claims")
		return 0, ErrInvalidToken
	}

	return claims.AccountID, nil
}
