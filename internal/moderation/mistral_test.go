package moderation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"problem-board-go/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.ModerationConfig{
		APIKey:  "test-key",
		Model:   "mistral-large-latest",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

func chatReply(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestClassifyAccept(t *testing.T) {
	client := newTestClient(t, chatReply("YES"))

	verdict, err := client.Classify(context.Background(), "My car won't start")
	require.NoError(t, err)
	assert.Equal(t, Accept, verdict)
}

func TestClassifyNormalizesModelOutput(t *testing.T) {
	client := newTestClient(t, chatReply("  yes\n"))

	verdict, err := client.Classify(context.Background(), "My sink is leaking")
	require.NoError(t, err)
	assert.Equal(t, Accept, verdict)
}

func TestClassifyReject(t *testing.T) {
	client := newTestClient(t, chatReply("NO"))

	verdict, err := client.Classify(context.Background(), "some offensive text")
	require.NoError(t, err)
	assert.Equal(t, Reject, verdict)
}

func TestClassifyMalformedOutputRejects(t *testing.T) {
	// Anything the model says that is not a literal YES fails closed
	client := newTestClient(t, chatReply("Sure! The answer is YES."))

	verdict, err := client.Classify(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, Reject, verdict)
}

func TestClassifyAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.Classify(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassifyTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.httpClient.Timeout = 50 * time.Millisecond

	_, err := client.Classify(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassifySendsAuthAndPolicy(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		chatReply("YES")(w, r)
	})

	_, err := client.Classify(context.Background(), "My roof leaks")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "My roof leaks", gotReq.Messages[1].Content)
}

func TestParseVerdict(t *testing.T) {
	assert.Equal(t, Accept, parseVerdict("YES"))
	assert.Equal(t, Accept, parseVerdict(" yes "))
	assert.Equal(t, Reject, parseVerdict("NO"))
	assert.Equal(t, Reject, parseVerdict(""))
	assert.Equal(t, Reject, parseVerdict("YES, definitely"))
}
