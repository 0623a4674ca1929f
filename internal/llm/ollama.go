package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const ollamaLocalURL = "http://localhost:11434"

// langChainRoles maps wire roles onto langchaingo message types. Unknown
// roles fall back to human input.
var langChainRoles = map[string]llms.ChatMessageType{
	"system":    llms.ChatMessageTypeSystem,
	"assistant": llms.ChatMessageTypeAI,
	"user":      llms.ChatMessageTypeHuman,
}

// OllamaClient talks to an Ollama server through langchaingo. Import
// prompts run with JSON mode on so a local model cannot pad the feature
// list with prose.
type OllamaClient struct {
	llm   *ollama.LLM
	model string
}

// NewOllamaClient connects to an Ollama server, defaulting to the local one.
func NewOllamaClient(model, baseURL string) (*OllamaClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("ollama model is required")
	}
	if baseURL == "" {
		baseURL = ollamaLocalURL
	}

	client, err := ollama.New(ollama.WithModel(model), ollama.WithServerURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("connecting to ollama: %w", err)
	}
	return &OllamaClient{llm: client, model: model}, nil
}

// Chat sends messages to the LLM and returns the response.
func (c *OllamaClient) Chat(ctx context.Context, messages []Message) (string, error) {
	return c.generate(ctx, messages)
}

// ChatJSON sends messages and parses the response as JSON into the provided type.
func (c *OllamaClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := c.generate(ctx, messages, llms.WithJSONMode())
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), result); err != nil {
		return fmt.Errorf("parsing JSON response: %w (content: %s)", err, content)
	}
	return nil
}

func (c *OllamaClient) generate(ctx context.Context, messages []Message, opts ...llms.CallOption) (string, error) {
	parts := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		role, ok := langChainRoles[strings.ToLower(msg.Role)]
		if !ok {
			role = llms.ChatMessageTypeHuman
		}
		parts = append(parts, llms.TextParts(role, msg.Content))
	}

	resp, err := c.llm.GenerateContent(ctx, parts, append(opts, llms.WithModel(c.model))...)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("ollama returned no choices")
	}
	return resp.Choices[0].Content, nil
}
