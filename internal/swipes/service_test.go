package swipes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"causematch-backend/internal/accounts"
	"causematch-backend/internal/profiles"
)

func newTestService(t *testing.T) (*Service, *accounts.Service, *profiles.Service) {
	t.Helper()
	accountRepo := accounts.NewMemoryRepo()
	profileRepo := profiles.NewMemoryRepo()
	return &Service{
			Repo:     NewMemoryRepo(),
			Profiles: profileRepo,
			Accounts: accountRepo,
		},
		&accounts.Service{Repo: accountRepo},
		&profiles.Service{Repo: profileRepo}
}

func seedUserWithProfile(t *testing.T, accountSvc *accounts.Service, profileSvc *profiles.Service, username, orgName string) (string, string) {
	t.Helper()
	ctx := context.Background()
	user, err := accountSvc.Register(ctx, username, username+"@example.com", "", "secret1")
	require.NoError(t, err)
	profile, err := profileSvc.Save(ctx, user.ID, profiles.Input{OrganizationName: orgName})
	require.NoError(t, err)
	return user.ID, profile.ID
}

func TestRecordRejectsUnknownAction(t *testing.T) {
	svc, accountSvc, profileSvc := newTestService(t)
	viewerID, _ := seedUserWithProfile(t, accountSvc, profileSvc, "viewer", "Viewer Org")
	_, profileID := seedUserWithProfile(t, accountSvc, profileSvc, "other", "Other Org")

	_, err := svc.Record(context.Background(), viewerID, profileID, "superlike")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestRecordRejectsSelfDecision(t *testing.T) {
	svc, accountSvc, profileSvc := newTestService(t)
	viewerID, ownProfileID := seedUserWithProfile(t, accountSvc, profileSvc, "viewer", "Viewer Org")

	_, err := svc.Record(context.Background(), viewerID, ownProfileID, ActionLike)
	assert.ErrorIs(t, err, ErrSelfDecision)
}

func TestRecordMissingProfile(t *testing.T) {
	svc, accountSvc, profileSvc := newTestService(t)
	viewerID, _ := seedUserWithProfile(t, accountSvc, profileSvc, "viewer", "Viewer Org")

	_, err := svc.Record(context.Background(), viewerID, "no-such-profile", ActionLike)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRecordOverwritesEarlierDecision(t *testing.T) {
	svc, accountSvc, profileSvc := newTestService(t)
	viewerID, _ := seedUserWithProfile(t, accountSvc, profileSvc, "viewer", "Viewer Org")
	_, profileID := seedUserWithProfile(t, accountSvc, profileSvc, "other", "Other Org")
	ctx := context.Background()

	first, err := svc.Record(ctx, viewerID, profileID, ActionPass)
	require.NoError(t, err)

	second, err := svc.Record(ctx, viewerID, profileID, ActionLike)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-deciding must update the same row")
	assert.Equal(t, ActionLike, second.Action)

	stored, err := svc.Repo.Get(ctx, viewerID, profileID)
	require.NoError(t, err)
	assert.Equal(t, ActionLike, stored.Action)
}

func TestBrowseExcludesSelfAndAnnotatesDecisions(t *testing.T) {
	svc, accountSvc, profileSvc := newTestService(t)
	viewerID, viewerProfileID := seedUserWithProfile(t, accountSvc, profileSvc, "viewer", "Viewer Org")
	_, likedID := seedUserWithProfile(t, accountSvc, profileSvc, "liked", "Liked Org")
	_, freshID := seedUserWithProfile(t, accountSvc, profileSvc, "fresh", "Fresh Org")
	ctx := context.Background()

	_, err := svc.Record(ctx, viewerID, likedID, ActionLike)
	require.NoError(t, err)

	candidates, err := svc.Browse(ctx, viewerID)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	byProfile := make(map[string]Candidate)
	for _, cand := range candidates {
		assert.NotEqual(t, viewerProfileID, cand.Profile.ID, "viewer's own profile in deck")
		assert.NotEmpty(t, cand.OwnerUsername)
		byProfile[cand.Profile.ID] = cand
	}
	assert.Equal(t, ActionLike, byProfile[likedID].Decision)
	assert.Empty(t, byProfile[freshID].Decision)
}

func TestBrowseSkipsProfilesWithoutOrganizationName(t *testing.T) {
	svc, accountSvc, profileSvc := newTestService(t)
	viewerID, _ := seedUserWithProfile(t, accountSvc, profileSvc, "viewer", "Viewer Org")
	ctx := context.Background()

	// A profile that only has a file reference is not browseable yet.
	blank, err := accountSvc.Register(ctx, "blank", "blank@example.com", "", "secret1")
	require.NoError(t, err)
	_, err = profileSvc.UpdateFileReference(ctx, blank.ID, "a.pdf", "proposals/1_a.pdf", "local://proposals/1_a.pdf")
	require.NoError(t, err)

	candidates, err := svc.Browse(ctx, viewerID)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
