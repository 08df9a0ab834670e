package user

import (
	"context"
	"errors"
	"fmt"

	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/crypto/bcrypt"

	"courier/infrastructure"
)

// minPasswordEntropy rejects trivially guessable passwords before any
// hashing work is done.
const minPasswordEntropy = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account and returns its id. The exact username,
// case-sensitive, is what must be unique.
func (s *Service) Register(ctx context.Context, username, password string) (int64, error) {
	if err := passwordvalidator.Validate(password, minPasswordEntropy); err != nil {
		return 0, fmt.Errorf("%w: %v", infrastructure.ErrWeakPassword, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hashing failed: %w", err)
	}

	return s.repo.CreateUser(ctx, username, string(hash))
}

// Authenticate verifies a username/password pair and returns the account id.
// Unknown usernames and wrong passwords produce the same error so callers
// cannot probe for registered accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (int64, error) {
	id, hash, err := s.repo.CredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, infrastructure.ErrUnknownUser) {
			return 0, infrastructure.ErrInvalidCredentials
		}
		return 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return 0, infrastructure.ErrInvalidCredentials
	}

	return id, nil
}
