package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func newUser(slackID string, active bool) *model.User {
	return &model.User{
		WorkspaceID: 1,
		SlackUserID: slackID,
		DisplayName: "Dana",
		Active:      active,
	}
}

func TestCreate_DuplicateSlackID(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("U001", true)))

	err := repo.Create(ctx, newUser("U001", true))
	assert.ErrorIs(t, err, model.ErrUserAlreadyExists)
}

func TestGetBySlackID(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	created := newUser("U001", true)
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.GetBySlackID(ctx, "U001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetBySlackID(ctx, "U999")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestListActiveByWorkspace(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("U001", true)))
	require.NoError(t, repo.Create(ctx, newUser("U002", false)))

	other := newUser("U003", true)
	other.WorkspaceID = 2
	require.NoError(t, repo.Create(ctx, other))

	users, err := repo.ListActiveByWorkspace(ctx, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "U001", users[0].SlackUserID)
}

func TestSetActive(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	user := newUser("U001", true)
	require.NoError(t, repo.Create(ctx, user))

	updated, err := repo.SetActive(ctx, user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = repo.SetActive(ctx, 999, true)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	user := newUser("U001", true)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID), model.ErrUserNotFound)
}
