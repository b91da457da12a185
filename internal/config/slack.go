package config

import "fmt"

// SlackConfig holds Slack API credentials and defaults.
type SlackConfig struct {
	// BotToken is the xoxb- bot token used for API calls.
	BotToken string
	// SigningSecret verifies inbound event and interaction payloads.
	SigningSecret string
	// DefaultReportChannel is the channel used when a workspace has none configured.
	DefaultReportChannel string
}

// LoadSlackConfigFromEnv loads Slack configuration from environment variables.
func LoadSlackConfigFromEnv() SlackConfig {
	return SlackConfig{
		BotToken:             GetEnv("SLACK_BOT_TOKEN", ""),
		SigningSecret:        GetEnv("SLACK_SIGNING_SECRET", ""),
		DefaultReportChannel: GetEnv("SLACK_REPORT_CHANNEL", ""),
	}
}

// Validate validates Slack configuration.
func (c SlackConfig) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if c.SigningSecret == "" {
		return fmt.Errorf("SLACK_SIGNING_SECRET is required")
	}
	return nil
}
