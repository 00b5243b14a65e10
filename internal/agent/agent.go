package agent

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	"github.com/mohsinshah1230/Lemmon-24April-ChatBot/internal/logger"
)

// maxToolRounds caps the tool-calling loop so a confused model can
// never spin forever against the database.
const maxToolRounds = 10

// Agent answers natural-language questions about the synced store data
// by letting an OpenAI model drive read-only SQL tools.
type Agent struct {
	client *openai.Client
	db     *gorm.DB
	model  string
	logger *logger.Logger
}

func New(apiKey, model string, db *gorm.DB, logger *logger.Logger) *Agent {
	return NewWithClient(openai.NewClient(apiKey), model, db, logger)
}

// NewWithClient lets callers supply a preconfigured client, e.g. one
// pointed at a test server.
func NewWithClient(client *openai.Client, model string, db *gorm.DB, logger *logger.Logger) *Agent {
	return &Agent{
		client: client,
		db:     db,
		model:  model,
		logger: logger,
	}
}

// Answer runs the tool loop until the model produces a final text
// answer or the round cap is hit.
func (a *Agent) Answer(ctx context.Context, question string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: question},
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: messages,
			Tools:    toolDefinitions(),
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("chat completion returned no choices")
		}

		message := resp.Choices[0].Message
		if len(message.ToolCalls) == 0 {
			return message.Content, nil
		}

		messages = append(messages, message)
		for _, call := range message.ToolCalls {
			a.logger.Debug("Tool call %s: %s", call.Function.Name, call.Function.Arguments)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    a.callTool(call),
			})
		}
	}

	return "", fmt.Errorf("no final answer after %d tool rounds", maxToolRounds)
}
