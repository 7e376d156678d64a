// File: internal/services/reply/reply_test.go
package reply

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizchat-labs/bizchat/internal/domain"
	"github.com/bizchat-labs/bizchat/internal/services/ai"
	"github.com/bizchat-labs/bizchat/internal/services/retrieval"
)

type noopLogger struct{}

func (n *noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

type fakeCompleter struct {
	reply        string
	err          error
	gotSystem    string
	gotHistory   []ai.ChatTurn
	gotUserInput string
}

func (f *fakeCompleter) GetCompletion(ctx context.Context, systemPrompt string, history []ai.ChatTurn, userMessage string) (string, error) {
	f.gotSystem = systemPrompt
	f.gotHistory = history
	f.gotUserInput = userMessage
	return f.reply, f.err
}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:    1,
		Name:  "Sharma Bakery",
		Phone: "+919876543210",
		Email: "hello@sharmabakery.in",
	}
}

func scoredChunks(texts ...string) []retrieval.ScoredChunk {
	var out []retrieval.ScoredChunk
	for i, text := range texts {
		out = append(out, retrieval.ScoredChunk{
			Chunk:      domain.Chunk{ID: uint(i + 1), Text: text},
			Similarity: 0.9,
		})
	}
	return out
}

func newTestService(t *testing.T, completer CompletionProvider) *Service {
	t.Helper()
	svc, err := NewService(DefaultConfig(), completer, &noopLogger{})
	require.NoError(t, err)
	return svc
}

func TestBuildSystemPromptIncludesBusinessRecord(t *testing.T) {
	prompt := BuildSystemPrompt(testBusiness(), nil)

	assert.Contains(t, prompt, `"Sharma Bakery"`)
	assert.Contains(t, prompt, "BUSINESS RECORD")
	assert.Contains(t, prompt, "Phone: +919876543210")
	assert.Contains(t, prompt, "Email: hello@sharmabakery.in")
	// Empty fields stay out of the prompt.
	assert.NotContains(t, prompt, "Address:")
	assert.NotContains(t, prompt, "Website:")
}

func TestBuildSystemPromptOmitsContextWhenNoChunks(t *testing.T) {
	prompt := BuildSystemPrompt(testBusiness(), nil)
	assert.NotContains(t, prompt, "CONTEXT (from")
	assert.Contains(t, prompt, "RULES:")
}

func TestBuildSystemPromptNumbersChunks(t *testing.T) {
	prompt := BuildSystemPrompt(testBusiness(), scoredChunks("We bake sourdough daily.", "Closed on Mondays."))

	assert.Contains(t, prompt, "CONTEXT (from")
	assert.Contains(t, prompt, "[1] We bake sourdough daily.")
	assert.Contains(t, prompt, "[2] Closed on Mondays.")
}

func TestRespondReturnsCompletion(t *testing.T) {
	completer := &fakeCompleter{reply: "We open at 9am."}
	svc := newTestService(t, completer)

	got := svc.Respond(context.Background(), testBusiness(), nil, nil, "when do you open?")
	assert.Equal(t, "We open at 9am.", got)
	assert.Equal(t, "when do you open?", completer.gotUserInput)
	assert.Contains(t, completer.gotSystem, "Sharma Bakery")
}

func TestRespondFallsBackOnError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("rate limit reached")}
	svc := newTestService(t, completer)

	got := svc.Respond(context.Background(), testBusiness(), nil, nil, "hello")
	assert.Equal(t, FallbackReply, got)
}

func TestRespondTrimsHistoryWindow(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := newTestService(t, completer)

	var history []domain.Message
	for i := 0; i < 12; i++ {
		role := domain.MessageRoleUser
		if i%2 == 1 {
			role = domain.MessageRoleAssistant
		}
		history = append(history, domain.Message{Role: role, Content: "turn"})
	}

	svc.Respond(context.Background(), testBusiness(), nil, history, "latest question")
	assert.Len(t, completer.gotHistory, DefaultConfig().HistoryWindow)
}

func TestRespondMapsHistoryRoles(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := newTestService(t, completer)

	history := []domain.Message{
		{Role: domain.MessageRoleUser, Content: "is parking available?"},
		{Role: domain.MessageRoleAssistant, Content: "Yes, behind the shop."},
	}

	svc.Respond(context.Background(), testBusiness(), nil, history, "and on weekends?")
	require.Len(t, completer.gotHistory, 2)
	assert.Equal(t, ai.ChatTurn{Role: "user", Content: "is parking available?"}, completer.gotHistory[0])
	assert.Equal(t, ai.ChatTurn{Role: "assistant", Content: "Yes, behind the shop."}, completer.gotHistory[1])
}
