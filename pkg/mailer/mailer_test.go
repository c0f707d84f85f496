package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewWithConfig(MailerConfig{
		APIKey:      "re_test_key",
		FromAddress: "noreply@example.com",
		Recipients:  []string{"team@example.com", "lab@example.com"},
	})
	require.NoError(t, err)
	return client
}

func TestNewWithConfigInvalid(t *testing.T) {
	_, err := NewWithConfig(MailerConfig{Recipients: []string{"team@example.com"}})
	assert.ErrorContains(t, err, "from address is required")

	_, err = NewWithConfig(MailerConfig{FromAddress: "noreply@example.com"})
	assert.ErrorContains(t, err, "at least one recipient is required")
}

func TestNewWithConfigDefaultSubject(t *testing.T) {
	client := newTestClient(t)
	assert.Equal(t, "Capricorn Medical Research App Feedback", client.config.Subject)
}

func TestRecipientsIncludeSender(t *testing.T) {
	client := newTestClient(t)

	recipients := client.recipientsFor(FeedbackMessage{Email: "ada@example.com"})
	assert.Equal(t, []string{"team@example.com", "lab@example.com", "ada@example.com"}, recipients)

	// Placeholder and junk addresses stay off the recipient list.
	recipients = client.recipientsFor(FeedbackMessage{Email: "No email provided"})
	assert.Equal(t, []string{"team@example.com", "lab@example.com"}, recipients)

	// The team list itself must not be mutated across sends.
	assert.Equal(t, []string{"team@example.com", "lab@example.com"}, client.config.Recipients)
}

func TestRenderBody(t *testing.T) {
	body, err := renderBody(FeedbackMessage{
		Name:     "Ada",
		Email:    "ada@example.com",
		Feedback: "The DCR plots are <b>hard</b> to read",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "ada@example.com")
	// User content is escaped, not interpolated as markup.
	assert.Contains(t, body, "&lt;b&gt;hard&lt;/b&gt;")
	assert.NotContains(t, body, "<b>hard</b>")
}
