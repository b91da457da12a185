package service

import (
	"context"
	"errors"
	"time"

	"github.com/antonk9218/standup-bot/internal/standup/model"
	userModel "github.com/antonk9218/standup-bot/internal/user/model"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// Skip marks today's standup skipped for the user. Partial answers already
// recorded for today stay on the report; the flow state is cleared and a
// skip notice goes to the workspace channel. Skipping twice is a silent
// no-op, and skipping after completion only re-confirms.
func (s *service) Skip(ctx context.Context, slackUserID string) error {
	user, err := s.users.GetBySlackID(ctx, slackUserID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return model.ErrNoActiveStandup
		}
		return err
	}

	log := s.logger.With("user_id", user.ID, "slack_user_id", slackUserID)

	ws, err := s.workspaces.GetByID(ctx, user.WorkspaceID)
	if err != nil {
		return err
	}

	// The skipped day is the pending flow's day when one is live, else
	// the user's local today.
	date := timeutil.LocalDate(time.Now(), user.NotificationTimezone(), ws.Timezone)
	state, err := s.states.GetByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, model.ErrStateNotFound) {
		return err
	}
	if state != nil {
		date = state.PendingReportDate
	}

	report, err := s.reports.GetOrCreate(ctx, user.ID, date)
	if err != nil {
		return err
	}

	skipped, err := s.reports.MarkSkipped(ctx, report.ID)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrAlreadySkipped):
		log.Debugw("skip: already skipped", "report_date", date)
		return s.states.Delete(ctx, user.ID)
	case errors.Is(err, model.ErrAlreadyCompleted):
		log.Debugw("skip: report already completed", "report_date", date)
		if derr := s.states.Delete(ctx, user.ID); derr != nil {
			return derr
		}
		s.sendNotice(ctx, slackUserID, model.NewConfirmation(
			"Your standup for today is already submitted, so there's nothing to skip."))
		return nil
	default:
		return err
	}

	if err := s.states.Delete(ctx, user.ID); err != nil {
		return err
	}

	log.Infow("standup skipped", "report_date", skipped.ReportDate)

	s.sendNotice(ctx, slackUserID, model.NewConfirmation(
		"Okay, skipping today's standup. See you tomorrow!"))

	notice := model.NewSkipNotice(skipped, user.SlackUserID, user.DisplayName)
	if err := s.notifier.PostToChannel(ctx, ws.ReportChannelID, notice); err != nil {
		log.Errorw("skip: channel post failed", "channel_id", ws.ReportChannelID, "error", err)
	}

	return nil
}
