package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/antonk9218/standup-bot/internal/standup/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.StandupReport{}, &model.StandupState{})
	require.NoError(t, err)

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReportRepository_GetOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	day := date(2025, time.March, 10)

	first, err := repo.GetOrCreate(ctx, 1, day)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.IsTerminal())

	second, err := repo.GetOrCreate(ctx, 1, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := repo.GetOrCreate(ctx, 1, date(2025, time.March, 11))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestReportRepository_UniqueUserDate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	day := date(2025, time.March, 10)

	require.NoError(t, db.WithContext(ctx).Create(&model.StandupReport{UserID: 1, ReportDate: day}).Error)

	err := db.WithContext(ctx).Create(&model.StandupReport{UserID: 1, ReportDate: day}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestReportRepository_GetByUserDate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())

	_, err := repo.GetByUserDate(context.Background(), 42, date(2025, time.March, 10))
	assert.ErrorIs(t, err, model.ErrReportNotFound)
}

func TestReportRepository_SetAnswer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	report, err := repo.GetOrCreate(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	require.NoError(t, repo.SetAnswer(ctx, report.ID, model.SlotFeeling, "great"))
	require.NoError(t, repo.SetAnswer(ctx, report.ID, model.SlotBlockers, "none"))

	stored, err := repo.GetByUserDate(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, "great", stored.Answer(model.SlotFeeling))
	assert.Equal(t, "none", stored.Answer(model.SlotBlockers))
	assert.Empty(t, stored.Answer(model.SlotYesterday))
}

func TestReportRepository_SetAnswer_UnknownReport(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())

	err := repo.SetAnswer(context.Background(), 999, model.SlotFeeling, "great")
	assert.ErrorIs(t, err, model.ErrReportNotFound)
}

func TestReportRepository_MarkCompleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	report, err := repo.GetOrCreate(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	completed, err := repo.MarkCompleted(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.IsTerminal())

	_, err = repo.MarkCompleted(ctx, report.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyCompleted)

	_, err = repo.MarkSkipped(ctx, report.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyCompleted)
}

func TestReportRepository_MarkSkipped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	report, err := repo.GetOrCreate(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	skipped, err := repo.MarkSkipped(ctx, report.ID)
	require.NoError(t, err)
	assert.True(t, skipped.Skipped)
	assert.True(t, skipped.IsTerminal())

	_, err = repo.MarkSkipped(ctx, report.ID)
	assert.ErrorIs(t, err, model.ErrAlreadySkipped)

	_, err = repo.MarkCompleted(ctx, report.ID)
	assert.ErrorIs(t, err, model.ErrAlreadySkipped)
}

func TestReportRepository_LatestTerminalForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.LatestTerminalForUser(ctx, 1)
	assert.ErrorIs(t, err, model.ErrReportNotFound)

	older, err := repo.GetOrCreate(ctx, 1, date(2025, time.March, 6))
	require.NoError(t, err)
	_, err = repo.MarkCompleted(ctx, older.ID)
	require.NoError(t, err)

	newer, err := repo.GetOrCreate(ctx, 1, date(2025, time.March, 7))
	require.NoError(t, err)
	_, err = repo.MarkSkipped(ctx, newer.ID)
	require.NoError(t, err)

	// An in-progress report on a later date must not count.
	_, err = repo.GetOrCreate(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	latest, err := repo.LatestTerminalForUser(ctx, 1)
	require.NoError(t, err)
	assert.True(t, latest.ReportDate.Equal(date(2025, time.March, 7)))
	assert.True(t, latest.Skipped)
}

func TestStateRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	day := date(2025, time.March, 10)

	_, err := repo.GetByUser(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStateNotFound)

	state, err := repo.Create(ctx, 1, day)
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentQuestionIndex)
	assert.Equal(t, day, state.PendingReportDate)

	stored, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, state.ID, stored.ID)
}

func TestStateRepository_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	_, err = repo.Create(ctx, 1, date(2025, time.March, 11))
	assert.ErrorIs(t, err, model.ErrStateAlreadyExists)
}

func TestStateRepository_Replace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	state, err := repo.Create(ctx, 1, date(2025, time.March, 8))
	require.NoError(t, err)

	state, err = repo.Advance(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentQuestionIndex)

	replaced, err := repo.Replace(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, 0, replaced.CurrentQuestionIndex)
	assert.Equal(t, date(2025, time.March, 10), replaced.PendingReportDate)

	stored, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, replaced.ID, stored.ID)
}

func TestStateRepository_Advance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	state, err := repo.Create(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	for i := 1; i < model.QuestionCount(); i++ {
		state, err = repo.Advance(ctx, state)
		require.NoError(t, err)
		assert.Equal(t, i, state.CurrentQuestionIndex)
	}
}

func TestStateRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStateRepository(db, zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, date(2025, time.March, 10))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1))

	_, err = repo.GetByUser(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStateNotFound)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx, 1))
}
