package slack

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/notifier"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier sends operation outcomes to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (n *Notifier) SendSuccess(message string) {
	n.send(message, "good")
}

func (n *Notifier) SendError(message string) {
	n.send(message, "danger")
}

func (n *Notifier) send(message, color string) {
	attachment := slack.Attachment{
		Text:  message,
		Color: color,
	}
	_, _, err := n.api.PostMessageContext(context.Background(), n.channelID, slack.MsgOptionAttachments(attachment))
	if err != nil {
		log.Error("Failed to send Slack notification", "error", err, "message", message)
		n.metrics.IncNotifFailed()
		return
	}
	n.metrics.IncNotifSent()
}
