// Package advisor implements the advice-generation path: an orchestrator
// that prefers a remote language model and falls back to deterministic
// rule-based recommendations when the model is unconfigured or fails.
package advisor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// MsgProvideChanges is returned when no usable change was supplied.
const MsgProvideChanges = "Please enter at least one desired change to get advice."

// ModelClient generates advisory text from a prompt. Implementations return
// the raw generated text on success; any transport fault, timeout, non-2xx
// status, or malformed payload is reported as an error.
type ModelClient interface {
	Infer(ctx context.Context, prompt string) (string, error)
}

// Orchestrator decides between model-backed and rule-based advice. A nil
// model client means no credential is configured and every request takes the
// rule-based path. Orchestrator holds no mutable state and is safe for
// concurrent use.
type Orchestrator struct {
	client ModelClient
	log    *slog.Logger
}

// New creates an Orchestrator. client may be nil.
func New(client ModelClient, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{
		client: client,
		log:    log.With("component", "advisor"),
	}
}

// ModelBacked reports whether a remote model client is configured.
func (o *Orchestrator) ModelBacked() bool {
	return o.client != nil
}

// ProduceAdvice turns the requested changes into advisory text. Blank
// changes are discarded first; with nothing left it returns
// MsgProvideChanges without touching the network. Model failures never
// surface to the caller: the result is always rule-based advice instead.
func (o *Orchestrator) ProduceAdvice(ctx context.Context, changes []string, category Category) string {
	filtered := filterBlank(changes)
	if len(filtered) == 0 {
		return MsgProvideChanges
	}

	if o.client == nil {
		return RuleBasedAdvice(filtered, category)
	}

	prompt := BuildPrompt(filtered, category)
	text, err := o.client.Infer(ctx, prompt)
	if err != nil {
		o.log.WarnContext(ctx, "model inference failed, using rule-based advice", "error", err)
		return RuleBasedAdvice(filtered, category)
	}

	// Some inference backends echo the prompt ahead of the completion.
	text = strings.TrimSpace(strings.TrimPrefix(text, prompt))
	if text == "" {
		o.log.WarnContext(ctx, "model returned empty completion, using rule-based advice")
		return RuleBasedAdvice(filtered, category)
	}
	return text
}

// BuildPrompt renders the fixed advice prompt. The category and every change
// appear verbatim, changes in their original order.
func BuildPrompt(changes []string, category Category) string {
	return fmt.Sprintf(
		"You are a financial advisor for a %s applicant. The applicant plans the following changes: %s. Explain how these changes affect the chance of loan approval.",
		category, strings.Join(changes, "; "),
	)
}

func filterBlank(changes []string) []string {
	var out []string
	for _, c := range changes {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
