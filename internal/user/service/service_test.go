package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/user/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) GetBySlackID(ctx context.Context, slackUserID string) (*model.User, error) {
	args := m.Called(ctx, slackUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) ListActiveByWorkspace(ctx context.Context, workspaceID uint) ([]model.User, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockRepository) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) SetActive(ctx context.Context, id uint, active bool) (*model.User, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSubscribe_NewUser(t *testing.T) {
	repo := &mockRepository{}
	svc := New(repo, zap.NewNop().Sugar())
	ctx := context.Background()

	repo.On("GetBySlackID", ctx, "U001").Return(nil, model.ErrUserNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.SlackUserID == "U001" && u.Active
	})).Return(nil)

	user, err := svc.Subscribe(ctx, &model.CreateUserRequest{
		WorkspaceID: 1,
		SlackUserID: "U001",
		DisplayName: "Dana",
	})
	require.NoError(t, err)
	assert.True(t, user.Active)
	repo.AssertExpectations(t)
}

func TestSubscribe_ReactivatesInactiveUser(t *testing.T) {
	repo := &mockRepository{}
	svc := New(repo, zap.NewNop().Sugar())
	ctx := context.Background()

	existing := &model.User{ID: 7, SlackUserID: "U001", Active: false}
	repo.On("GetBySlackID", ctx, "U001").Return(existing, nil)
	repo.On("SetActive", ctx, uint(7), true).
		Return(&model.User{ID: 7, SlackUserID: "U001", Active: true}, nil)

	user, err := svc.Subscribe(ctx, &model.CreateUserRequest{
		WorkspaceID: 1,
		SlackUserID: "U001",
		DisplayName: "Dana",
	})
	require.NoError(t, err)
	assert.True(t, user.Active)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscribe_ActiveUserConflicts(t *testing.T) {
	repo := &mockRepository{}
	svc := New(repo, zap.NewNop().Sugar())
	ctx := context.Background()

	repo.On("GetBySlackID", ctx, "U001").
		Return(&model.User{ID: 7, SlackUserID: "U001", Active: true}, nil)

	_, err := svc.Subscribe(ctx, &model.CreateUserRequest{
		WorkspaceID: 1,
		SlackUserID: "U001",
		DisplayName: "Dana",
	})
	assert.ErrorIs(t, err, model.ErrUserAlreadyExists)
}

func TestSubscribe_EmptySlackID(t *testing.T) {
	repo := &mockRepository{}
	svc := New(repo, zap.NewNop().Sugar())

	_, err := svc.Subscribe(context.Background(), &model.CreateUserRequest{WorkspaceID: 1})
	assert.ErrorIs(t, err, model.ErrInvalidSlackUserID)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &mockRepository{}
	svc := New(repo, zap.NewNop().Sugar())
	ctx := context.Background()

	tz := "Europe/Berlin"
	stored := &model.User{ID: 7, SlackUserID: "U001", DisplayName: "Dana", Active: true}
	repo.On("GetByID", ctx, uint(7)).Return(stored, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Timezone != nil && *u.Timezone == tz && u.DisplayName == "Dana"
	})).Return(nil)

	user, err := svc.Update(ctx, 7, &model.UpdateUserRequest{Timezone: &tz})
	require.NoError(t, err)
	assert.Equal(t, tz, *user.Timezone)
	repo.AssertExpectations(t)
}

func TestUnsubscribe(t *testing.T) {
	repo := &mockRepository{}
	svc := New(repo, zap.NewNop().Sugar())
	ctx := context.Background()

	repo.On("SetActive", ctx, uint(7), false).
		Return(&model.User{ID: 7, Active: false}, nil)

	user, err := svc.Unsubscribe(ctx, 7)
	require.NoError(t, err)
	assert.False(t, user.Active)
}
