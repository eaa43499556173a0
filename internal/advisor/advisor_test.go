package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockModelClient records calls and returns a canned result or error.
type mockModelClient struct {
	calls  int
	prompt string
	text   string
	err    error
	// echoPrompt prepends the received prompt to the canned text, mimicking
	// inference backends that echo the input.
	echoPrompt bool
}

func (m *mockModelClient) Infer(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	if m.echoPrompt {
		return prompt + " " + m.text, nil
	}
	return m.text, nil
}

func TestProduceAdviceEmptyInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changes []string
	}{
		{"nil changes", nil},
		{"empty slice", []string{}},
		{"all blank", []string{"", "   ", "\t", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &mockModelClient{text: "should not be used"}
			orch := New(client, nil)

			got := orch.ProduceAdvice(context.Background(), tt.changes, CategoryPersonal)
			if got != MsgProvideChanges {
				t.Errorf("expected input-required message, got %q", got)
			}
			if client.calls != 0 {
				t.Errorf("expected no model calls, got %d", client.calls)
			}
		})
	}
}

func TestProduceAdviceNoClient(t *testing.T) {
	t.Parallel()

	changes := []string{"increase income by 20%", "improve credit score"}
	orch := New(nil, nil)

	got := orch.ProduceAdvice(context.Background(), changes, CategorySME)
	want := RuleBasedAdvice(changes, CategorySME)
	if got != want {
		t.Errorf("expected rule-based advice %q, got %q", want, got)
	}
}

func TestProduceAdviceModelFailureFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		client *mockModelClient
	}{
		{"transport error", &mockModelClient{err: errors.New("connection refused")}},
		{"timeout", &mockModelClient{err: context.DeadlineExceeded}},
		{"empty completion", &mockModelClient{text: ""}},
		{"whitespace completion", &mockModelClient{text: "   \n\t"}},
		{"prompt echo only", &mockModelClient{text: "", echoPrompt: true}},
	}

	changes := []string{"increase income by 20%", "reduce debt"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			orch := New(tt.client, nil)
			got := orch.ProduceAdvice(context.Background(), changes, CategoryAuto)
			want := RuleBasedAdvice(changes, CategoryAuto)
			if got != want {
				t.Errorf("expected fallback to rule-based advice %q, got %q", want, got)
			}
			if tt.client.calls != 1 {
				t.Errorf("expected exactly one model call, got %d", tt.client.calls)
			}
		})
	}
}

func TestProduceAdviceModelSuccess(t *testing.T) {
	t.Parallel()

	client := &mockModelClient{text: "Raising income improves your debt ratio, so do X."}
	orch := New(client, nil)

	got := orch.ProduceAdvice(context.Background(), []string{"increase income"}, CategoryPersonal)
	if got != client.text {
		t.Errorf("expected model advice %q, got %q", client.text, got)
	}
	if client.calls != 1 {
		t.Errorf("expected exactly one model call, got %d", client.calls)
	}
	if client.prompt != BuildPrompt([]string{"increase income"}, CategoryPersonal) {
		t.Errorf("unexpected prompt sent to model: %q", client.prompt)
	}
}

func TestProduceAdviceStripsPromptEcho(t *testing.T) {
	t.Parallel()

	client := &mockModelClient{text: "Advice: do X", echoPrompt: true}
	orch := New(client, nil)

	got := orch.ProduceAdvice(context.Background(), []string{"increase income"}, CategoryPersonal)
	if !strings.HasSuffix(got, "do X") {
		t.Errorf("expected advice ending in %q, got %q", "do X", got)
	}
	if strings.Contains(got, "financial advisor") {
		t.Errorf("expected prompt prefix to be stripped, got %q", got)
	}
}

func TestProduceAdviceNonEmptyForAnyInput(t *testing.T) {
	t.Parallel()

	clients := map[string]ModelClient{
		"no client":     nil,
		"failing model": &mockModelClient{err: errors.New("boom")},
		"happy model":   &mockModelClient{text: "some advice"},
	}

	for name, client := range clients {
		for _, category := range Categories() {
			orch := New(client, nil)
			got := orch.ProduceAdvice(context.Background(), []string{"anything at all"}, category)
			if strings.TrimSpace(got) == "" {
				t.Errorf("%s/%s: expected non-empty advice", name, category)
			}
		}
	}
}

func TestProduceAdviceFiltersBlankChanges(t *testing.T) {
	t.Parallel()

	orch := New(nil, nil)
	withBlanks := orch.ProduceAdvice(context.Background(), []string{"", "increase income", "   ", "improve credit"}, CategoryHome)
	without := orch.ProduceAdvice(context.Background(), []string{"increase income", "improve credit"}, CategoryHome)
	if withBlanks != without {
		t.Errorf("expected blank entries to be ignored:\n%q\n%q", withBlanks, without)
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	changes := []string{"increase income by 20%", "sell the second car", "improve credit score"}
	prompt := BuildPrompt(changes, CategoryEducation)

	if !strings.Contains(prompt, string(CategoryEducation)) {
		t.Errorf("expected category %q verbatim in prompt, got %q", CategoryEducation, prompt)
	}

	rest := prompt
	for _, c := range changes {
		idx := strings.Index(rest, c)
		if idx == -1 {
			t.Fatalf("expected change %q verbatim and in order in prompt, got %q", c, prompt)
		}
		rest = rest[idx+len(c):]
	}
}

func TestProduceAdviceIndependentCalls(t *testing.T) {
	t.Parallel()

	client := &mockModelClient{text: "model advice"}
	orch := New(client, nil)

	changes := []string{"increase income"}
	first := orch.ProduceAdvice(context.Background(), changes, CategoryPersonal)
	second := orch.ProduceAdvice(context.Background(), changes, CategoryPersonal)

	if first != second {
		t.Errorf("expected identical advice, got %q and %q", first, second)
	}
	// No caching: identical inputs hit the model twice.
	if client.calls != 2 {
		t.Errorf("expected two model calls, got %d", client.calls)
	}
}
