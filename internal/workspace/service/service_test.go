package service

import (
	"context"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/workspace/model"
	"github.com/antonk9218/standup-bot/internal/workspace/repository"
)

func setupService(t *testing.T) Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Workspace{}))

	log := zap.NewNop().Sugar()
	return New(repository.New(db, log), log)
}

func TestGetOrCreate_AppliesDefaults(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ws, err := svc.GetOrCreate(ctx, "T001", "C001")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ws.DefaultTime)
	assert.Equal(t, "America/New_York", ws.Timezone)

	// A second install call returns the same workspace.
	again, err := svc.GetOrCreate(ctx, "T001", "C999")
	require.NoError(t, err)
	assert.Equal(t, ws.ID, again.ID)
	assert.Equal(t, "C001", again.ReportChannelID)
}

func TestUpdateSettings(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ws, err := svc.GetOrCreate(ctx, "T001", "C001")
	require.NoError(t, err)

	newTime := "10:30"
	newTZ := "Europe/Berlin"
	newChannel := "C777"

	updated, err := svc.UpdateSettings(ctx, ws.ID, &model.UpdateSettingsRequest{
		DefaultTime:     &newTime,
		Timezone:        &newTZ,
		ReportChannelID: &newChannel,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30", updated.DefaultTime)
	assert.Equal(t, "Europe/Berlin", updated.Timezone)
	assert.Equal(t, "C777", updated.ReportChannelID)
}

func TestUpdateSettings_RejectsInvalidValues(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ws, err := svc.GetOrCreate(ctx, "T001", "C001")
	require.NoError(t, err)

	badTime := "25:99"
	_, err = svc.UpdateSettings(ctx, ws.ID, &model.UpdateSettingsRequest{DefaultTime: &badTime})
	assert.ErrorIs(t, err, model.ErrInvalidDispatchTime)

	badTZ := "Not/AZone"
	_, err = svc.UpdateSettings(ctx, ws.ID, &model.UpdateSettingsRequest{Timezone: &badTZ})
	assert.ErrorIs(t, err, model.ErrInvalidTimezone)

	// A failed update leaves the stored settings untouched.
	stored, err := svc.Get(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", stored.DefaultTime)
	assert.Equal(t, "America/New_York", stored.Timezone)
}

func TestUpdateSettings_UnknownWorkspace(t *testing.T) {
	svc := setupService(t)

	newTime := "10:00"
	_, err := svc.UpdateSettings(context.Background(), 999, &model.UpdateSettingsRequest{DefaultTime: &newTime})
	assert.ErrorIs(t, err, model.ErrWorkspaceNotFound)
}
