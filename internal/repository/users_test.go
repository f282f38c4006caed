package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/repository"
)

func TestUserRepository_Lookups(t *testing.T) {
	kv := newTestKV(t)
	repo := repository.NewUserRepository(kv)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.User{
		Name:     "Ayşe Yılmaz",
		Username: "ayse",
		Email:    "Ayse@example.com",
		Role:     "editor",
		Status:   domain.UserStatusTeacher,
	})
	require.NoError(t, err)
	assert.False(t, created.JoinedAt.IsZero())

	t.Run("username lookup is case-insensitive", func(t *testing.T) {
		assert.NotNil(t, repo.GetByUsername(ctx, "AYSE"))
		assert.NotNil(t, repo.GetByUsername(ctx, "  ayse "))
		assert.Nil(t, repo.GetByUsername(ctx, "fatma"))
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		assert.NotNil(t, repo.GetByEmail(ctx, "ayse@EXAMPLE.com"))
		assert.Nil(t, repo.GetByEmail(ctx, "other@example.com"))
	})

	t.Run("password never round-trips through json", func(t *testing.T) {
		got := repo.GetByID(ctx, created.ID)
		require.NotNil(t, got)
		assert.Empty(t, got.Password)
	})
}

func TestSessionRepository_Upsert(t *testing.T) {
	kv := newTestKV(t)
	repo := repository.NewSessionRepository(kv)
	ctx := context.Background()

	sess := domain.Session{Token: "tok-1", UserID: "u-1", Name: "Ayşe", Role: "editor"}
	require.NoError(t, repo.Put(ctx, sess))

	got := repo.GetByToken(ctx, "tok-1")
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserID)

	// Upsert replaces in place
	sess.Role = "admin"
	require.NoError(t, repo.Put(ctx, sess))
	got = repo.GetByToken(ctx, "tok-1")
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Role)

	assert.Nil(t, repo.GetByToken(ctx, "unknown"))
}
