// Package notifier implements the Slack message transport. It owns all
// rendering: the core hands over tagged Message values and this package
// turns them into Block Kit payloads.
package notifier

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/standup/model"
	"github.com/antonk9218/standup-bot/pkg/timeutil"
)

// skipActionID identifies the "skip today" button in interaction payloads.
const skipActionID = "standup_skip"

// SkipActionID returns the block action id the interactions handler
// matches on.
func SkipActionID() string { return skipActionID }

// slackAPI is the subset of the slack-go client the notifier uses.
type slackAPI interface {
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// SlackNotifier delivers standup messages through the Slack Web API.
type SlackNotifier struct {
	client slackAPI
	logger *zap.SugaredLogger
}

// New creates a Slack notifier from a bot token.
func New(botToken string, logger *zap.SugaredLogger) *SlackNotifier {
	return &SlackNotifier{
		client: slack.New(botToken),
		logger: logger,
	}
}

// SendDirectMessage opens (or reuses) the user's DM channel and posts the
// rendered message there.
func (n *SlackNotifier) SendDirectMessage(ctx context.Context, slackUserID string, msg model.Message) error {
	channel, _, _, err := n.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{slackUserID},
	})
	if err != nil {
		n.logger.Errorw("open DM conversation failed", "slack_user_id", slackUserID, "error", err)
		return fmt.Errorf("%w: open conversation: %w", model.ErrNotifierFailure, err)
	}

	if err := n.post(ctx, channel.ID, msg); err != nil {
		return err
	}

	n.logger.Debugw("DM sent", "slack_user_id", slackUserID, "kind", msg.Kind)
	return nil
}

// PostToChannel posts the rendered message to a shared channel.
func (n *SlackNotifier) PostToChannel(ctx context.Context, channelID string, msg model.Message) error {
	if err := n.post(ctx, channelID, msg); err != nil {
		return err
	}

	n.logger.Debugw("channel message sent", "channel_id", channelID, "kind", msg.Kind)
	return nil
}

// AckInteraction replaces the interactive message via its response URL so
// the button does not stay clickable.
func (n *SlackNotifier) AckInteraction(ctx context.Context, responseURL string) error {
	err := slack.PostWebhookContext(ctx, responseURL, &slack.WebhookMessage{
		Text:            "Got it!",
		ReplaceOriginal: true,
	})
	if err != nil {
		n.logger.Errorw("interaction ack failed", "error", err)
		return fmt.Errorf("%w: ack interaction: %w", model.ErrNotifierFailure, err)
	}
	return nil
}

func (n *SlackNotifier) post(ctx context.Context, channelID string, msg model.Message) error {
	fallback, blocks := render(msg)

	options := []slack.MsgOption{slack.MsgOptionText(fallback, false)}
	if len(blocks) > 0 {
		options = append(options, slack.MsgOptionBlocks(blocks...))
	}

	if _, _, err := n.client.PostMessageContext(ctx, channelID, options...); err != nil {
		n.logger.Errorw("post message failed", "channel_id", channelID, "kind", msg.Kind, "error", err)
		return fmt.Errorf("%w: post message: %w", model.ErrNotifierFailure, err)
	}
	return nil
}

// render maps one Message variant to its fallback text and Block Kit blocks.
func render(msg model.Message) (string, []slack.Block) {
	switch msg.Kind {
	case model.MessageQuestion:
		return msg.QuestionText, questionBlocks(greetingFor(msg.QuestionIndex), msg.QuestionText)

	case model.MessageCatchUpPrompt:
		greeting := fmt.Sprintf(
			"Welcome back! :wave: Your last standup was on *%s* (%d days ago). Let's catch up on today.",
			timeutil.FormatDate(msg.LastReportDate), msg.MissedDays,
		)
		return msg.QuestionText, questionBlocks(greeting, msg.QuestionText)

	case model.MessageConfirmation, model.MessageErrorNotice:
		return msg.Text, []slack.Block{section(msg.Text)}

	case model.MessageReportSummary:
		return summaryFallback(msg), summaryBlocks(msg)

	case model.MessageSkipNotice:
		text := fmt.Sprintf(":fast_forward: *%s* skipped standup for %s.",
			msg.DisplayName, timeutil.FormatDate(msg.Report.ReportDate))
		return text, []slack.Block{section(text)}
	}

	return msg.Text, nil
}

func greetingFor(index int) string {
	if index == 0 {
		return "Good morning! :sunny: Time for your daily standup."
	}
	return ""
}

// questionBlocks builds the optional greeting, the question itself and the
// skip button.
func questionBlocks(greeting, question string) []slack.Block {
	var blocks []slack.Block
	if greeting != "" {
		blocks = append(blocks, section(greeting))
	}

	blocks = append(blocks,
		section(fmt.Sprintf("*%s*", question)),
		slack.NewActionBlock(
			"standup_actions",
			slack.NewButtonBlockElement(
				skipActionID,
				"skip",
				slack.NewTextBlockObject(slack.PlainTextType, "Skip today", false, false),
			),
		),
	)
	return blocks
}

func summaryBlocks(msg model.Message) []slack.Block {
	report := msg.Report

	header := slack.NewHeaderBlock(slack.NewTextBlockObject(
		slack.PlainTextType,
		fmt.Sprintf(":memo: Standup: %s", msg.DisplayName),
		true, false,
	))

	blocks := []slack.Block{
		header,
		section(fmt.Sprintf("<@%s> · %s", msg.SlackUserID, timeutil.FormatDate(report.ReportDate))),
		slack.NewDividerBlock(),
	}

	for _, q := range model.Questions {
		answer := report.Answer(q.Slot)
		if answer == "" {
			answer = "_no answer_"
		}
		blocks = append(blocks, section(fmt.Sprintf("*%s*\n%s", q.Text, answer)))
	}

	return blocks
}

func summaryFallback(msg model.Message) string {
	return fmt.Sprintf("Standup from %s for %s",
		msg.DisplayName, timeutil.FormatDate(msg.Report.ReportDate))
}

func section(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
		nil, nil,
	)
}
