// Package provider implements clients for hosted inference endpoints.
package provider

import (
	"context"
	"fmt"
)

// Message is a single chat message.
type Message struct {
	role    string
	content string
}

// SystemMessage creates a system-role message.
func SystemMessage(content string) Message {
	return Message{role: "system", content: content}
}

// UserMessage creates a user-role message.
func UserMessage(content string) Message {
	return Message{role: "user", content: content}
}

// Role returns the message role.
func (m Message) Role() string { return m.role }

// Content returns the message text.
func (m Message) Content() string { return m.content }

// ChatCompletionRequest describes a single completion call.
type ChatCompletionRequest struct {
	messages    []Message
	maxTokens   int
	temperature float64
}

// NewChatCompletionRequest creates a request for the given messages.
func NewChatCompletionRequest(messages []Message) ChatCompletionRequest {
	return ChatCompletionRequest{messages: messages}
}

// WithMaxTokens returns a copy with the completion token budget set.
func (r ChatCompletionRequest) WithMaxTokens(n int) ChatCompletionRequest {
	r.maxTokens = n
	return r
}

// WithTemperature returns a copy with the sampling temperature set.
func (r ChatCompletionRequest) WithTemperature(t float64) ChatCompletionRequest {
	r.temperature = t
	return r
}

// Messages returns the request messages.
func (r ChatCompletionRequest) Messages() []Message { return r.messages }

// MaxTokens returns the completion token budget. Zero means provider default.
func (r ChatCompletionRequest) MaxTokens() int { return r.maxTokens }

// Temperature returns the sampling temperature. Zero means provider default.
func (r ChatCompletionRequest) Temperature() float64 { return r.temperature }

// Usage reports token consumption for a completion.
type Usage struct {
	promptTokens     int
	completionTokens int
	totalTokens      int
}

// NewUsage creates a Usage record.
func NewUsage(prompt, completion, total int) Usage {
	return Usage{promptTokens: prompt, completionTokens: completion, totalTokens: total}
}

// PromptTokens returns the prompt token count.
func (u Usage) PromptTokens() int { return u.promptTokens }

// CompletionTokens returns the completion token count.
func (u Usage) CompletionTokens() int { return u.completionTokens }

// TotalTokens returns the total token count.
func (u Usage) TotalTokens() int { return u.totalTokens }

// ChatCompletionResponse is a normalized completion result.
type ChatCompletionResponse struct {
	content      string
	finishReason string
	usage        Usage
}

// NewChatCompletionResponse creates a response.
func NewChatCompletionResponse(content, finishReason string, usage Usage) ChatCompletionResponse {
	return ChatCompletionResponse{content: content, finishReason: finishReason, usage: usage}
}

// Content returns the generated text.
func (r ChatCompletionResponse) Content() string { return r.content }

// FinishReason returns why generation stopped.
func (r ChatCompletionResponse) FinishReason() string { return r.finishReason }

// Usage returns token usage for the call.
func (r ChatCompletionResponse) Usage() Usage { return r.usage }

// TextGenerator generates chat completions. The gateway depends on this
// interface only, so orchestration can be tested with a stub.
type TextGenerator interface {
	ChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}

// ProviderError wraps a provider-side failure with its operation and any
// HTTP status code observed.
type ProviderError struct {
	operation  string
	statusCode int
	message    string
	err        error
}

// NewProviderError creates a ProviderError.
func NewProviderError(operation string, statusCode int, message string, err error) *ProviderError {
	return &ProviderError{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
		err:        err,
	}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.statusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.operation, e.message, e.statusCode)
	}
	return fmt.Sprintf("%s: %s", e.operation, e.message)
}

// Unwrap returns the wrapped error, if any.
func (e *ProviderError) Unwrap() error { return e.err }

// StatusCode returns the HTTP status code, or zero when unknown.
func (e *ProviderError) StatusCode() int { return e.statusCode }

// Message returns the provider's failure message.
func (e *ProviderError) Message() string { return e.message }
