package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeChatServer mimics the OpenAI chat completions endpoint.
func fakeChatServer(t *testing.T, counter *atomic.Int64, answer string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter.Add(1)

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body.Messages)

		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  body.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": answer},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{"prompt_tokens": 8, "completion_tokens": 4, "total_tokens": 12},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIChatCompletion(t *testing.T) {
	var counter atomic.Int64
	srv := fakeChatServer(t, &counter, "try the Keychron K2")
	defer srv.Close()

	p := NewOpenAIProvider(testInference(t, "openai", srv.URL+"/v1", 1))

	req := NewChatCompletionRequest([]Message{
		SystemMessage("you are a shop assistant"),
		UserMessage("recommend a keyboard"),
	}).WithMaxTokens(128)

	resp, err := p.ChatCompletion(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "try the Keychron K2", resp.Content())
	require.Equal(t, "stop", resp.FinishReason())
	require.Equal(t, 12, resp.Usage().TotalTokens())
	require.Equal(t, int64(1), counter.Load())
}

func TestOpenAINoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []any{},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(testInference(t, "openai", srv.URL+"/v1", 1))

	_, err := p.ChatCompletion(context.Background(), NewChatCompletionRequest([]Message{UserMessage("hi")}))
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, "no choices in response", provErr.Message())
}

func TestFactorySelectsProvider(t *testing.T) {
	gen, err := New(testInference(t, "anthropic", "", 1))
	require.NoError(t, err)
	require.IsType(t, &AnthropicProvider{}, gen)

	gen, err = New(testInference(t, "openai", "", 1))
	require.NoError(t, err)
	require.IsType(t, &OpenAIProvider{}, gen)
}
