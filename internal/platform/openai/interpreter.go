package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/internal/models"
	"github.com/dreamdecode/backend/pkg/config"
	"github.com/dreamdecode/backend/pkg/types"
)

type Interpreter struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	client *gopenai.Client
}

func NewInterpreter(cfg *config.Config, log *zap.SugaredLogger) dream.Interpreter {
	return &Interpreter{cfg: cfg, log: log, client: gopenai.NewClient(cfg.OpenAI.APIKey)}
}

func (i *Interpreter) Teaser(ctx context.Context, d *models.Dream) (string, error) {
	resp, err := i.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: i.cfg.OpenAI.TeaserModel,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: teaserPrompt(d)},
		},
		Temperature: 0.8,
		MaxTokens:   150,
	})
	if err != nil {
		return "", fmt.Errorf("teaser completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("teaser completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (i *Interpreter) FullReport(ctx context.Context, d *models.Dream) (*types.DreamReport, error) {
	resp, err := i.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: i.cfg.OpenAI.ReportModel,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: reportSystemPrompt},
			{Role: gopenai.ChatMessageRoleUser, Content: reportUserPrompt(d)},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
		ResponseFormat: &gopenai.ChatCompletionResponseFormat{
			Type: gopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("report completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("report completion returned no choices")
	}

	var report types.DreamReport
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &report); err != nil {
		i.log.Errorw("report JSON decode failed", "err", err)
		return nil, fmt.Errorf("report completion returned invalid JSON: %w", err)
	}
	return &report, nil
}
