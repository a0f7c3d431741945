package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/report"
)

// ErrDisabled marks the narrative feature as unavailable. The caller shows
// a hint instead of an error and the rest of the session is unaffected.
var ErrDisabled = errors.New("narrative generation is disabled: set OPENAI_API_KEY to enable it")

const systemPrompt = "You are an agronomy assistant. You receive NDVI statistics " +
	"for a sequence of satellite images of the same location over time and write " +
	"a short plain-text summary of the vegetation trend. Mention notable " +
	"improvements or declines and keep it under 150 words."

// Service talks to an OpenAI-compatible completion endpoint.
type Service struct {
	client *openai.Client
	model  string
}

// NewService builds the client from configuration. It returns ErrDisabled
// while no API key is set.
func NewService(cfg properties.NarrativeConfig) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Service{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

// Summarize sends the statistics table and returns the generated summary.
// One request, no retries: a failure is terminal for the feature.
func (s *Service) Summarize(ctx context.Context, rows []report.Row) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no statistics to summarize")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(rows)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("narrative service returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(rows []report.Row) string {
	var sb strings.Builder
	sb.WriteString("NDVI statistics per image, in chronological order:\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("- %s: min %s, max %s, mean %s (%s)\n",
			row.Image,
			formatValue(row.NDVIMin),
			formatValue(row.NDVIMax),
			formatValue(row.NDVIMean),
			row.MeanDesc))
	}
	sb.WriteString("\nSummarize the vegetation trend across these images.")
	return sb.String()
}

func formatValue(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", *value)
}
