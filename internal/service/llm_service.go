package service

import (
	"context"
	"fmt"
	"strings"

	"expenso/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const classifierInstruction = `You are an expense categorizer. The user sends a short expense description. Reply with exactly one word, the best matching category: Food, Shopping, Bills or Other. Do not explain, do not add punctuation.`

// LLMService classifies expense descriptions with a single-turn GigaChat
// completion. It satisfies the Classifier interface consumed by
// ExpenseService.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = classifierInstruction
	model.Temperature = 0.1

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Classify returns the model's raw label for the description, trimmed of
// surrounding whitespace. Mapping onto the closed category set is the
// caller's job.
func (s *LLMService) Classify(ctx context.Context, description string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: description},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	label := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("Expense classified", zap.String("label", label))

	return label, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
