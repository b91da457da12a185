// Package service implements the standup core: the daily dispatch batch,
// the per-reply answer state machine and the skip path. Persistence and
// message transport are injected collaborators; the service holds no
// in-process flow state, so a restart loses nothing.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/standup/model"
	"github.com/antonk9218/standup-bot/internal/standup/repository"
	userRepo "github.com/antonk9218/standup-bot/internal/user/repository"
	workspaceRepo "github.com/antonk9218/standup-bot/internal/workspace/repository"
)

// Notifier is the message transport consumed by the core. Rendering of the
// Message variants is the implementation's concern.
type Notifier interface {
	// SendDirectMessage delivers a message to a user's DM channel.
	SendDirectMessage(ctx context.Context, slackUserID string, msg model.Message) error

	// PostToChannel posts a message to a shared channel.
	PostToChannel(ctx context.Context, channelID string, msg model.Message) error

	// AckInteraction acknowledges a button interaction.
	AckInteraction(ctx context.Context, responseURL string) error
}

// OutcomeKind tags the result of processing one inbound reply.
type OutcomeKind string

const (
	// OutcomeNextQuestion means the answer was recorded and the next
	// question was sent to the user.
	OutcomeNextQuestion OutcomeKind = "next_question"
	// OutcomeReportComplete means the final answer was recorded, the
	// report finalized and posted to the workspace channel.
	OutcomeReportComplete OutcomeKind = "report_complete"
)

// Outcome describes what processing one reply did.
type Outcome struct {
	Kind   OutcomeKind
	Report *model.StandupReport
	// NextQuestionIndex is set for OutcomeNextQuestion.
	NextQuestionIndex int
}

// Service defines the standup core operations.
type Service interface {
	// RunOnce executes one dispatch tick over every workspace.
	RunOnce(ctx context.Context, now time.Time) error

	// RunWorkspace executes one dispatch tick for a single workspace.
	RunWorkspace(ctx context.Context, workspaceID uint, now time.Time) error

	// ProcessAnswer handles one inbound reply from a user.
	ProcessAnswer(ctx context.Context, slackUserID, text string) (*Outcome, error)

	// Skip marks today's standup skipped for the user.
	Skip(ctx context.Context, slackUserID string) error
}

type service struct {
	reports    repository.ReportRepository
	states     repository.StateRepository
	users      userRepo.Repository
	workspaces workspaceRepo.Repository
	notifier   Notifier
	logger     *zap.SugaredLogger
}

// New creates a standup service instance.
func New(
	reports repository.ReportRepository,
	states repository.StateRepository,
	users userRepo.Repository,
	workspaces workspaceRepo.Repository,
	notifier Notifier,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		reports:    reports,
		states:     states,
		users:      users,
		workspaces: workspaces,
		notifier:   notifier,
		logger:     logger,
	}
}
