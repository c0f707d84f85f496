package config

import (
	"fmt"
	"net"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate GenAI config
	if c.GenAI.Project == "" {
		errors = append(errors, ValidationError{
			Field:   "genai.project",
			Message: "GCP project is required",
		})
	}

	if c.GenAI.Location == "" {
		errors = append(errors, ValidationError{
			Field:   "genai.location",
			Message: "location is required",
		})
	}

	if c.GenAI.Model == "" {
		errors = append(errors, ValidationError{
			Field:   "genai.model",
			Message: "model is required",
		})
	}

	if c.GenAI.MaxTokens < 1 || c.GenAI.MaxTokens > 65535 {
		errors = append(errors, ValidationError{
			Field:   "genai.max_tokens",
			Message: "max_tokens must be between 1 and 65535",
		})
	}

	if c.GenAI.Temperature < 0 || c.GenAI.Temperature > 2 {
		errors = append(errors, ValidationError{
			Field:   "genai.temperature",
			Message: "temperature must be between 0 and 2",
		})
	}

	if c.GenAI.TopP <= 0 || c.GenAI.TopP > 1 {
		errors = append(errors, ValidationError{
			Field:   "genai.top_p",
			Message: "top_p must be between 0 and 1",
		})
	}

	// Validate Server config
	if _, _, err := net.SplitHostPort(c.Server.ListenAddress); err != nil {
		errors = append(errors, ValidationError{
			Field:   "server.listen_address",
			Message: "listen_address must be host:port",
		})
	}

	// Validate Feedback config. The API key is optional; the feedback
	// endpoint reports a configuration error at request time when unset.
	if !strings.Contains(c.Feedback.FromAddress, "@") {
		errors = append(errors, ValidationError{
			Field:   "feedback.from_address",
			Message: "from_address must be an email address",
		})
	}

	for _, recipient := range c.Feedback.Recipients {
		if !strings.Contains(recipient, "@") {
			errors = append(errors, ValidationError{
				Field:   "feedback.recipients",
				Message: fmt.Sprintf("invalid recipient address: %s", recipient),
			})
		}
	}

	return errors
}
