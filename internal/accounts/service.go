package accounts

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const minPasswordLength = 6

// dummyHash is compared against when login targets an unknown email so the
// response time does not reveal whether the account exists.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("credential-padding"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("bcrypt: %v", err))
	}
	return h
}()

// Service contains account business logic.
type Service struct {
	Repo Repo
}

// Register validates and creates a new account. Username and email are
// stored lower-cased so lookups are case-insensitive.
func (s *Service) Register(ctx context.Context, username, email, name, password string) (User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if !usernamePattern.MatchString(username) {
		return User{}, fmt.Errorf("%w: username must be 3-20 characters (letters, numbers, _ or -)", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return User{}, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if name == "" {
		name = username
	}

	// Pre-creation duplicate check. The unique constraints still backstop
	// concurrent registrations; the repo maps that race to the same error.
	if _, err := s.Repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login authenticates by email and password. Unknown accounts and wrong
// passwords produce the same error, and both paths run a bcrypt compare.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Get returns the account by id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.Repo.GetByID(ctx, id)
}
