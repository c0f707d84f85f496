// Package mailer sends user feedback to the team by email.
//
// It uses Resend (resend-go) as the email provider and renders the
// message body from an HTML template.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"
)

// FeedbackMessage is one piece of user feedback to be delivered.
type FeedbackMessage struct {
	Name     string
	Email    string
	Feedback string
}

// Mailer delivers feedback messages.
type Mailer interface {
	Send(ctx context.Context, msg FeedbackMessage) error
}

// MailerConfig represents the configuration for the feedback mailer.
type MailerConfig struct {
	APIKey      string
	FromAddress string
	Subject     string
	Recipients  []string
}

// Client wraps the Resend client. It implements Mailer.
type Client struct {
	config MailerConfig
	client *resend.Client
}

var bodyTemplate = template.Must(template.New("feedback").Parse(`
<h2>New Feedback Received</h2>
<p><strong>From:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Feedback:</strong></p>
<p>{{.Feedback}}</p>
<p>Thank you for helping us improve the Capricorn Medical Research App.</p>
`))

// NewWithConfig creates a new Client with the given configuration.
func NewWithConfig(config MailerConfig) (*Client, error) {
	if config.FromAddress == "" {
		return nil, fmt.Errorf("from address is required")
	}
	if len(config.Recipients) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	if config.Subject == "" {
		config.Subject = "Capricorn Medical Research App Feedback"
	}

	return &Client{
		config: config,
		client: resend.NewClient(config.APIKey),
	}, nil
}

// Send emails the feedback to the configured team recipients. When the
// submitter left a plausible address they receive a copy as well.
func (c *Client) Send(ctx context.Context, msg FeedbackMessage) error {
	body, err := renderBody(msg)
	if err != nil {
		return fmt.Errorf("failed to render feedback email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    c.config.FromAddress,
		To:      c.recipientsFor(msg),
		Subject: c.config.Subject,
		Html:    body,
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *Client) recipientsFor(msg FeedbackMessage) []string {
	recipients := make([]string, len(c.config.Recipients))
	copy(recipients, c.config.Recipients)

	if strings.Contains(msg.Email, "@") {
		recipients = append(recipients, msg.Email)
	}

	return recipients
}

func renderBody(msg FeedbackMessage) (string, error) {
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, msg); err != nil {
		return "", err
	}
	return body.String(), nil
}
