package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "ab", "a@b.co", "secret1"},
		{"long username", "this-username-is-way-too-long", "a@b.co", "secret1"},
		{"bad username chars", "has space", "a@b.co", "secret1"},
		{"bad email", "valid_user", "not-an-email", "secret1"},
		{"email missing tld", "valid_user", "a@b", "secret1"},
		{"short password", "valid_user", "a@b.co", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.email, "", tc.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterLowercasesIdentifiers(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	user, err := svc.Register(context.Background(), "MixedCase", "User@Example.COM", "Pat", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "mixedcase", user.Username)
	assert.Equal(t, "user@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegisterDefaultsNameToUsername(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	user, err := svc.Register(context.Background(), "quiet_org", "quiet@example.com", "", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "quiet_org", user.Name)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	_, err := svc.Register(ctx, "taken", "taken@example.com", "Pat", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "taken", "other@example.com", "Pat", "secret1")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Register(ctx, "different", "TAKEN@example.com", "Pat", "secret1")
	assert.ErrorIs(t, err, ErrAlreadyExists, "email comparison must be case-insensitive")
}

type countingRepo struct {
	*MemoryRepo
	creates int
}

func (r *countingRepo) Create(ctx context.Context, user User) error {
	r.creates++
	return r.MemoryRepo.Create(ctx, user)
}

func TestRegisterDuplicateNeverReachesCreate(t *testing.T) {
	repo := &countingRepo{MemoryRepo: NewMemoryRepo()}
	svc := &Service{Repo: repo}
	ctx := context.Background()

	_, err := svc.Register(ctx, "first_org", "first@example.com", "", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "first_org", "second@example.com", "", "secret1")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Register(ctx, "second_org", "first@example.com", "", "secret1")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	assert.Equal(t, 1, repo.creates, "duplicates must be caught before the write")
}

func TestLoginSucceedsWithAnyEmailCasing(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	_, err := svc.Register(ctx, "pat_org", "pat@example.com", "Pat", "secret1")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "PAT@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "pat_org", user.Username)
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	_, err := svc.Register(ctx, "pat_org", "pat@example.com", "Pat", "secret1")
	require.NoError(t, err)

	// Wrong password for a real account and any password for a missing
	// account must be indistinguishable to the caller.
	_, wrongPassword := svc.Login(ctx, "pat@example.com", "not-the-password")
	_, unknownEmail := svc.Login(ctx, "ghost@example.com", "whatever")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
