package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonk9218/standup-bot/internal/standup/model"
	userModel "github.com/antonk9218/standup-bot/internal/user/model"
)

// ProcessAnswer records one inbound reply against the user's current
// question, advances the flow, and on the final answer finalizes the
// report and posts it to the workspace channel.
//
// A reply with no live state (including a duplicate delivery after
// completion) yields ErrNoActiveStandup and a guidance DM; it never
// touches any report.
func (s *service) ProcessAnswer(ctx context.Context, slackUserID, text string) (*Outcome, error) {
	user, err := s.users.GetBySlackID(ctx, slackUserID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return nil, model.ErrNoActiveStandup
		}
		return nil, err
	}

	log := s.logger.With("user_id", user.ID, "slack_user_id", slackUserID)

	state, err := s.states.GetByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, model.ErrStateNotFound) {
			log.Debugw("answer with no standup in progress")
			s.sendNotice(ctx, slackUserID, model.NewErrorNotice(
				"You have no standup in progress right now. I'll ping you at your next standup time."))
			return nil, model.ErrNoActiveStandup
		}
		return nil, err
	}

	report, err := s.reports.GetOrCreate(ctx, user.ID, state.PendingReportDate)
	if err != nil {
		s.sendNotice(ctx, slackUserID, somethingWentWrong())
		return nil, err
	}

	question := model.QuestionAt(state.CurrentQuestionIndex)
	if err := s.reports.SetAnswer(ctx, report.ID, question.Slot, text); err != nil {
		// State untouched: a retry re-enters at the same question.
		s.sendNotice(ctx, slackUserID, somethingWentWrong())
		return nil, err
	}

	log.Debugw("answer recorded", "question_index", state.CurrentQuestionIndex, "slot", question.Slot)

	if state.CurrentQuestionIndex+1 == model.QuestionCount() {
		return s.finalize(ctx, user, state, report)
	}

	state, err = s.states.Advance(ctx, state)
	if err != nil {
		s.sendNotice(ctx, slackUserID, somethingWentWrong())
		return nil, err
	}

	next := model.NewQuestion(state.CurrentQuestionIndex)
	if err := s.notifier.SendDirectMessage(ctx, slackUserID, next); err != nil {
		// The flow stays live; the user can still answer once the
		// transport recovers, and tomorrow's tick recovers otherwise.
		log.Errorw("next question send failed", "question_index", state.CurrentQuestionIndex, "error", err)
		return nil, fmt.Errorf("%w: %w", model.ErrNotifierFailure, err)
	}

	return &Outcome{Kind: OutcomeNextQuestion, Report: report, NextQuestionIndex: state.CurrentQuestionIndex}, nil
}

// finalize completes the report, clears the state and posts the compiled
// report to the workspace channel.
func (s *service) finalize(ctx context.Context, user *userModel.User, state *model.StandupState, report *model.StandupReport) (*Outcome, error) {
	log := s.logger.With("user_id", user.ID, "report_id", report.ID)

	completed, err := s.reports.MarkCompleted(ctx, report.ID)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyCompleted) {
			// Duplicate final answer; converge on the terminal outcome.
			log.Warnw("finalize: report already completed")
			_ = s.states.Delete(ctx, user.ID)
			return &Outcome{Kind: OutcomeReportComplete, Report: report}, nil
		}
		s.sendNotice(ctx, user.SlackUserID, somethingWentWrong())
		return nil, err
	}

	if err := s.states.Delete(ctx, user.ID); err != nil {
		return nil, err
	}

	log.Infow("standup completed", "report_date", completed.ReportDate)

	s.sendNotice(ctx, user.SlackUserID, model.NewConfirmation(
		"All done, thanks! Your standup has been shared with the team."))

	ws, err := s.workspaces.GetByID(ctx, user.WorkspaceID)
	if err != nil {
		log.Errorw("finalize: workspace lookup failed", "error", err)
		return &Outcome{Kind: OutcomeReportComplete, Report: completed}, nil
	}

	summary := model.NewReportSummary(completed, user.SlackUserID, user.DisplayName)
	if err := s.notifier.PostToChannel(ctx, ws.ReportChannelID, summary); err != nil {
		log.Errorw("finalize: channel post failed", "channel_id", ws.ReportChannelID, "error", err)
	}

	return &Outcome{Kind: OutcomeReportComplete, Report: completed}, nil
}

// sendNotice delivers a best-effort DM; failures are only logged.
func (s *service) sendNotice(ctx context.Context, slackUserID string, msg model.Message) {
	if err := s.notifier.SendDirectMessage(ctx, slackUserID, msg); err != nil {
		s.logger.Errorw("notice send failed", "slack_user_id", slackUserID, "kind", msg.Kind, "error", err)
	}
}

func somethingWentWrong() model.Message {
	return model.NewErrorNotice("Something went wrong saving your answer, please try again.")
}
