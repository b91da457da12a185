package notifier

import (
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonk9218/standup-bot/internal/standup/model"
)

func TestRender_Question(t *testing.T) {
	fallback, blocks := render(model.NewQuestion(0))

	assert.Equal(t, model.Questions[0].Text, fallback)
	require.NotEmpty(t, blocks)

	// The kickoff carries a greeting, the question and the skip button.
	actions, ok := blocks[len(blocks)-1].(*slack.ActionBlock)
	require.True(t, ok)
	require.Len(t, actions.Elements.ElementSet, 1)

	button, ok := actions.Elements.ElementSet[0].(*slack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, SkipActionID(), button.ActionID)
}

func TestRender_FollowUpQuestionHasNoGreeting(t *testing.T) {
	_, first := render(model.NewQuestion(0))
	_, followUp := render(model.NewQuestion(1))

	assert.Len(t, followUp, len(first)-1)
}

func TestRender_CatchUpPrompt(t *testing.T) {
	last := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	fallback, blocks := render(model.NewCatchUpPrompt(last, 5))

	assert.Equal(t, model.Questions[0].Text, fallback)
	require.NotEmpty(t, blocks)

	greeting, ok := blocks[0].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, greeting.Text.Text, "Wednesday, Mar 5")
	assert.Contains(t, greeting.Text.Text, "5 days")
}

func TestRender_ReportSummary(t *testing.T) {
	feeling := "good"
	report := &model.StandupReport{
		ReportDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Feeling:    &feeling,
	}

	fallback, blocks := render(model.NewReportSummary(report, "U001", "Dana"))

	assert.Contains(t, fallback, "Dana")
	// Header, author line, divider, one section per question.
	assert.Len(t, blocks, 3+len(model.Questions))

	answered, ok := blocks[3].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, answered.Text.Text, "good")

	unanswered, ok := blocks[4].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, unanswered.Text.Text, "no answer")
}

func TestRender_SkipNotice(t *testing.T) {
	report := &model.StandupReport{
		ReportDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Skipped:    true,
	}

	fallback, blocks := render(model.NewSkipNotice(report, "U001", "Dana"))

	assert.Contains(t, fallback, "Dana")
	assert.Contains(t, fallback, "skipped")
	assert.Len(t, blocks, 1)
}

func TestRender_Confirmation(t *testing.T) {
	fallback, blocks := render(model.NewConfirmation("done"))

	assert.Equal(t, "done", fallback)
	require.Len(t, blocks, 1)
}
