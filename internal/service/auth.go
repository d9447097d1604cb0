// Package service holds the queue state machine and owner authentication.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/token-queue/internal/crypto"
	"github.com/and161185/token-queue/internal/errs"
	"github.com/and161185/token-queue/internal/limiter"
	"github.com/and161185/token-queue/internal/model"
	"github.com/and161185/token-queue/internal/repository"
)

// Owner credential limits.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 64
	MinPasswordLen = 8
)

// AuthService registers shop owners and issues their access tokens.
type AuthService interface {
	// Register creates a new owner account.
	Register(ctx context.Context, username, password string) (ownerID string, err error)
	// LoginWithIP applies rate limiting by (username, peer) and authenticates the owner.
	LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.Owner, error)
}

type AuthServiceImpl struct {
	owners    repository.OwnerRepository
	hasher    pkgcrypto.Hasher
	signKey   []byte
	accessTTL time.Duration
	lim       limiter.Limiter
	log       *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(
	owners repository.OwnerRepository,
	hasher pkgcrypto.Hasher,
	signKey []byte,
	accessTTL time.Duration,
	lim limiter.Limiter,
	log *zap.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{owners: owners, hasher: hasher, signKey: signKey, accessTTL: accessTTL, lim: lim, log: log}
}

// Register validates credentials and stores the Argon2id hash with a fresh salt.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if n := len(username); n < MinUsernameLen || n > MaxUsernameLen {
		return "", fmt.Errorf("%w: username must be %d..%d bytes", errs.ErrValidation, MinUsernameLen, MaxUsernameLen)
	}
	if len(password) < MinPasswordLen {
		return "", fmt.Errorf("%w: password shorter than %d", errs.ErrValidation, MinPasswordLen)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	hash, salt, err := s.hasher.Derive(password)
	if err != nil {
		return "", err
	}
	o := &model.Owner{ID: id, Username: username, PwdHash: hash, SaltAuth: salt}
	if err := s.owners.Create(ctx, o); err != nil {
		return "", err
	}
	s.log.Info("owner registered", zap.String("owner_id", id.String()))
	return id.String(), nil
}

// LoginWithIP authenticates with rate limiting by (username, ip).
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.Owner, error) {
	username = strings.TrimSpace(username)
	key := limiter.KeyFor(username, ip)

	wait, err := s.lim.Allow(ctx, key)
	if err != nil {
		return model.Tokens{}, model.Owner{}, err
	}
	if wait > 0 {
		return model.Tokens{}, model.Owner{}, fmt.Errorf("%w: retry in %s", errs.ErrRateLimited, wait.Round(time.Second))
	}

	o, err := s.owners.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Tokens{}, model.Owner{}, err
	}
	if err != nil || !s.hasher.Verify(password, o.SaltAuth, o.PwdHash) {
		blocked, ferr := s.lim.Failure(ctx, key)
		if ferr != nil {
			s.log.Warn("record login failure", zap.Error(ferr))
		}
		if blocked > 0 {
			s.log.Info("login blocked", zap.String("username", username), zap.Duration("for", blocked))
			return model.Tokens{}, model.Owner{}, errs.ErrRateLimited
		}
		return model.Tokens{}, model.Owner{}, errs.ErrUnauthorized
	}

	// best-effort
	if err := s.lim.Success(ctx, key); err != nil {
		s.log.Warn("reset login attempts", zap.Error(err))
	}

	access, exp, err := s.issueAccessToken(o.ID)
	if err != nil {
		return model.Tokens{}, model.Owner{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *o, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(ownerID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   ownerID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}
