package model

import "time"

// MessageKind tags an outbound message variant.
type MessageKind string

// Outbound message kinds. Rendering is the notifier's concern; the core
// only decides which variant to send and with what payload.
const (
	MessageQuestion      MessageKind = "question"
	MessageCatchUpPrompt MessageKind = "catch_up_prompt"
	MessageConfirmation  MessageKind = "confirmation"
	MessageErrorNotice   MessageKind = "error_notice"
	MessageReportSummary MessageKind = "report_summary"
	MessageSkipNotice    MessageKind = "skip_notice"
)

// Message is a tagged variant describing one outbound send. Only the
// fields relevant to its Kind are populated.
type Message struct {
	Kind MessageKind

	// QuestionIndex and QuestionText are set for MessageQuestion and
	// MessageCatchUpPrompt (the prompt carries the first question).
	QuestionIndex int
	QuestionText  string

	// LastReportDate and MissedDays describe the gap for MessageCatchUpPrompt.
	LastReportDate time.Time
	MissedDays     int

	// Text carries the body for MessageConfirmation and MessageErrorNotice.
	Text string

	// Report and DisplayName are set for MessageReportSummary and
	// MessageSkipNotice; SlackUserID lets the renderer mention the author.
	Report      *StandupReport
	DisplayName string
	SlackUserID string
}

// NewQuestion builds a plain question message for the given index.
func NewQuestion(index int) Message {
	return Message{
		Kind:          MessageQuestion,
		QuestionIndex: index,
		QuestionText:  QuestionAt(index).Text,
	}
}

// NewCatchUpPrompt builds the kickoff for a missed-days flow. It names the
// last known report date and carries question zero.
func NewCatchUpPrompt(lastReportDate time.Time, missedDays int) Message {
	return Message{
		Kind:           MessageCatchUpPrompt,
		QuestionIndex:  0,
		QuestionText:   QuestionAt(0).Text,
		LastReportDate: lastReportDate,
		MissedDays:     missedDays,
	}
}

// NewConfirmation builds a short acknowledgment message.
func NewConfirmation(text string) Message {
	return Message{Kind: MessageConfirmation, Text: text}
}

// NewErrorNotice builds a user-visible error message.
func NewErrorNotice(text string) Message {
	return Message{Kind: MessageErrorNotice, Text: text}
}

// NewReportSummary builds the compiled report posted to the channel.
func NewReportSummary(report *StandupReport, slackUserID, displayName string) Message {
	return Message{
		Kind:        MessageReportSummary,
		Report:      report,
		SlackUserID: slackUserID,
		DisplayName: displayName,
	}
}

// NewSkipNotice builds the channel notice for a skipped standup.
func NewSkipNotice(report *StandupReport, slackUserID, displayName string) Message {
	return Message{
		Kind:        MessageSkipNotice,
		Report:      report,
		SlackUserID: slackUserID,
		DisplayName: displayName,
	}
}
