package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhive/hostel-manager/internal/entity"
)

func TestUsersCounts(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	require.NoError(t, seedUser(ctx, db, 1, "Ana", "ana@test.com", entity.UserRoleGuest, &now, now.Add(-time.Hour)))
	require.NoError(t, seedUser(ctx, db, 2, "Ben", "ben@test.com", entity.UserRoleHost, nil, weekAgo.Add(-time.Hour)))
	require.NoError(t, seedUser(ctx, db, 3, "Cleo", "cleo@test.com", entity.UserRoleGuest, &weekAgo, weekAgo))

	total, err := db.Users().CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	recent, err := db.Users().CountUsersCreatedSince(ctx, now.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, recent)

	// cutoff instant is included, same as the window queries
	atCutoff, err := db.Users().CountUsersCreatedSince(ctx, weekAgo)
	require.NoError(t, err)
	assert.Equal(t, 2, atCutoff)

	window, err := db.Users().CountUsersCreatedBetween(ctx, weekAgo, now)
	require.NoError(t, err)
	assert.Equal(t, 2, window)

	verified, err := db.Users().CountUsersVerifiedBetween(ctx, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, verified)
}

func TestUsersGroupByRole(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, seedUser(ctx, db, 1, "Ana", "ana@test.com", entity.UserRoleGuest, nil, now))
	require.NoError(t, seedUser(ctx, db, 2, "Ben", "ben@test.com", entity.UserRoleGuest, nil, now))
	require.NoError(t, seedUser(ctx, db, 3, "Cleo", "cleo@test.com", entity.UserRoleHost, nil, now))

	groups, err := db.Users().GroupUsersByRole(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	counts := map[string]int{}
	for _, g := range groups {
		counts[g.Label.String] = g.Count
	}
	assert.Equal(t, 2, counts["guest"])
	assert.Equal(t, 1, counts["host"])
}

func TestRecentlyVerifiedUsers(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ana", "Ben", "Cleo"} {
		ts := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, seedUser(ctx, db, i+1, name, name+"@test.com", entity.UserRoleGuest, &ts, base))
	}
	require.NoError(t, seedUser(ctx, db, 4, "Dan", "dan@test.com", entity.UserRoleGuest, nil, base))

	users, err := db.Users().RecentlyVerifiedUsers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Cleo", users[0].Name)
	assert.Equal(t, "Ben", users[1].Name)
	assert.True(t, users[0].IsVerified)
}
