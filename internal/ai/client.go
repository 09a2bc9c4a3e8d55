// Package ai talks to an OpenAI-compatible chat completions endpoint.
// The model's output is untrusted free text; callers are responsible for
// parsing and validating whatever comes back.
package ai

import (
	"context"
)

type Client interface {
	// Complete sends a single user prompt and returns the raw reply text.
	// The call is bounded by the client's configured timeout; a timed-out
	// or failed call returns an error and is never retried here.
	Complete(ctx context.Context, prompt string) (string, error)
}
