package service

import (
	"context"
	"errors"
	"time"

	"github.com/antonk9218/standup-bot/internal/standup/model"
	userModel "github.com/antonk9218/standup-bot/internal/user/model"
	workspaceModel "github.com/antonk9218/standup-bot/internal/workspace/model"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// RunOnce executes one dispatch tick over every installed workspace.
// Store failures are collected per workspace and returned joined; progress
// already committed for earlier users is never rolled back.
func (s *service) RunOnce(ctx context.Context, now time.Time) error {
	s.logger.Infow("dispatch tick started", "now", now)

	workspaces, err := s.workspaces.ListAll(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, ws := range workspaces {
		if err := s.runWorkspace(ctx, &ws, now); err != nil {
			errs = append(errs, err)
		}
	}

	s.logger.Infow("dispatch tick finished", "workspaces", len(workspaces), "failures", len(errs))
	return errors.Join(errs...)
}

// RunWorkspace executes one dispatch tick for a single workspace.
func (s *service) RunWorkspace(ctx context.Context, workspaceID uint, now time.Time) error {
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	return s.runWorkspace(ctx, ws, now)
}

func (s *service) runWorkspace(ctx context.Context, ws *workspaceModel.Workspace, now time.Time) error {
	users, err := s.users.ListActiveByWorkspace(ctx, ws.ID)
	if err != nil {
		return err
	}

	var errs []error
	for _, user := range users {
		if err := s.dispatchUser(ctx, ws, &user, now); err != nil {
			// One user's store failure never blocks the rest of the batch.
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// dispatchUser decides, for one user, whether this tick should do nothing,
// leave an in-progress flow alone, start a fresh standup, or start a
// catch-up standup covering missed days.
func (s *service) dispatchUser(ctx context.Context, ws *workspaceModel.Workspace, user *userModel.User, now time.Time) error {
	today := timeutil.LocalDate(now, user.NotificationTimezone(), ws.Timezone)

	log := s.logger.With("user_id", user.ID, "slack_user_id", user.SlackUserID, "today", today)

	// Already completed or skipped today: nothing to send, nothing to touch.
	report, err := s.reports.GetByUserDate(ctx, user.ID, today)
	if err != nil && !errors.Is(err, model.ErrReportNotFound) {
		return err
	}
	if report != nil && report.IsTerminal() {
		log.Debugw("dispatch: already handled today")
		return nil
	}

	state, err := s.states.GetByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, model.ErrStateNotFound) {
		return err
	}

	if state != nil {
		if !state.IsStaleFor(today) {
			// Mid-flow for today; never re-send while the user is answering.
			log.Debugw("dispatch: flow already in progress")
			return nil
		}

		// Stale state: the user abandoned a prior day's flow (or the
		// process died mid-flow). This is the sole recovery mechanism:
		// the stale flow is superseded by a catch-up flow for today.
		lastDate := state.PendingReportDate
		if last, err := s.reports.LatestTerminalForUser(ctx, user.ID); err == nil {
			lastDate = last.ReportDate
		} else if !errors.Is(err, model.ErrReportNotFound) {
			return err
		}

		if _, err := s.states.Replace(ctx, user.ID, today); err != nil {
			return err
		}

		log.Infow("dispatch: stale state replaced with catch-up", "last_date", lastDate)
		s.sendKickoff(ctx, user, model.NewCatchUpPrompt(lastDate, timeutil.DaysBetween(lastDate, today)))
		return nil
	}

	// No state: look at the last terminal report to detect a gap.
	last, err := s.reports.LatestTerminalForUser(ctx, user.ID)
	if err != nil && !errors.Is(err, model.ErrReportNotFound) {
		return err
	}

	kickoff := model.NewQuestion(0)
	if last != nil && last.ReportDate.Before(timeutil.PreviousWorkday(today)) {
		kickoff = model.NewCatchUpPrompt(last.ReportDate, timeutil.DaysBetween(last.ReportDate, today))
	}

	if _, err := s.states.Create(ctx, user.ID, today); err != nil {
		if errors.Is(err, model.ErrStateAlreadyExists) {
			// Lost a race with a concurrent dispatcher; that one sends.
			log.Warnw("dispatch: state appeared concurrently, skipping")
			return nil
		}
		return err
	}

	if kickoff.Kind == model.MessageCatchUpPrompt {
		log.Infow("dispatch: catch-up standup started", "last_date", kickoff.LastReportDate, "missed_days", kickoff.MissedDays)
	} else {
		log.Infow("dispatch: fresh standup started")
	}

	s.sendKickoff(ctx, user, kickoff)
	return nil
}

// sendKickoff delivers the first message of a flow. A send failure is
// logged and swallowed: the state stays live, so the next tick's
// stale-state branch retries naturally.
func (s *service) sendKickoff(ctx context.Context, user *userModel.User, msg model.Message) {
	if err := s.notifier.SendDirectMessage(ctx, user.SlackUserID, msg); err != nil {
		s.logger.Errorw("dispatch: kickoff send failed",
			"user_id", user.ID,
			"slack_user_id", user.SlackUserID,
			"kind", msg.Kind,
			"error", err,
		)
	}
}
