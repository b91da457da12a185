// Package handler provides the Slack webhook endpoints: the Events API
// callback carrying DM replies and the interactivity callback carrying
// button clicks. Both verify Slack's request signature before parsing.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"

	"github.com/antonk9218/standup-bot/internal/notifier"
	"github.com/antonk9218/standup-bot/internal/standup/model"
	"github.com/antonk9218/standup-bot/internal/standup/service"
)

const processTimeout = 30 * time.Second

// Handler handles Slack webhook requests.
type Handler struct {
	service       service.Service
	notifier      service.Notifier
	signingSecret string
	logger        *zap.SugaredLogger
}

// New creates a new Slack webhook handler instance.
func New(svc service.Service, n service.Notifier, signingSecret string, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service:       svc,
		notifier:      n,
		signingSecret: signingSecret,
		logger:        logger,
	}
}

// Events handles POST /slack/events requests.
func (h *Handler) Events(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.logger.Errorw("event parse failed", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.String(http.StatusOK, challenge.Challenge)

	case slackevents.CallbackEvent:
		// Slack redelivers on slow responses; replaying a reply would
		// push it into the wrong answer slot, so retries are dropped.
		if c.GetHeader("X-Slack-Retry-Num") == "" {
			h.handleCallback(event)
		}
		c.Status(http.StatusOK)

	default:
		c.Status(http.StatusOK)
	}
}

func (h *Handler) handleCallback(event slackevents.EventsAPIEvent) {
	msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}
	if !isUserDM(msg) {
		return
	}

	// Ack within Slack's deadline; the state machine runs off-request.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		if _, err := h.service.ProcessAnswer(ctx, msg.User, msg.Text); err != nil {
			if errors.Is(err, model.ErrNoActiveStandup) {
				return
			}
			h.logger.Errorw("answer processing failed", "slack_user_id", msg.User, "error", err)
		}
	}()
}

// Interactions handles POST /slack/interactions requests.
func (h *Handler) Interactions(c *gin.Context) {
	body, ok := h.verifiedBody(c)
	if !ok {
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(form.Get("payload")), &callback); err != nil {
		h.logger.Errorw("interaction payload parse failed", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}

	if callback.Type == slack.InteractionTypeBlockActions {
		for _, action := range callback.ActionCallback.BlockActions {
			if action.ActionID == notifier.SkipActionID() {
				h.handleSkip(callback.User.ID, callback.ResponseURL)
				break
			}
		}
	}

	c.Status(http.StatusOK)
}

func (h *Handler) handleSkip(slackUserID, responseURL string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		if responseURL != "" {
			if err := h.notifier.AckInteraction(ctx, responseURL); err != nil {
				h.logger.Warnw("skip ack failed", "slack_user_id", slackUserID, "error", err)
			}
		}

		if err := h.service.Skip(ctx, slackUserID); err != nil && !errors.Is(err, model.ErrNoActiveStandup) {
			h.logger.Errorw("skip failed", "slack_user_id", slackUserID, "error", err)
		}
	}()
}

// verifiedBody reads the request body and checks Slack's signature.
// On failure the response is already written.
func (h *Handler) verifiedBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(c.Request.Header, h.signingSecret)
	if err != nil {
		h.logger.Warnw("signature header missing", "error", err)
		c.Status(http.StatusUnauthorized)
		return nil, false
	}
	if _, err := verifier.Write(body); err != nil {
		c.Status(http.StatusInternalServerError)
		return nil, false
	}
	if err := verifier.Ensure(); err != nil {
		h.logger.Warnw("signature verification failed", "error", err)
		c.Status(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

// isUserDM reports whether the event is a plain user message in a DM.
// Bot echoes, edits and thread broadcasts are filtered out.
func isUserDM(msg *slackevents.MessageEvent) bool {
	return msg.ChannelType == "im" &&
		msg.BotID == "" &&
		msg.SubType == "" &&
		msg.User != "" &&
		msg.Text != ""
}
