package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/game/decisions"
	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSON   = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON pulls a JSON object out of a completion that may wrap it in
// code fences or prose.
func ExtractJSON(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := bareJSON.FindString(text); m != "" {
		return m
	}
	return strings.TrimSpace(text)
}

type NewOpenAIProviderOptions struct {
	APIKey string
	// BaseURL points the client at any OpenAI-compatible endpoint.
	BaseURL string
	Model   string
	Label   string
	Timeout time.Duration
	// MaxRetries overrides the client's retry count when non-negative.
	MaxRetries int
}

// OpenAIProvider generates and reviews dilemmas with a chat completion model.
type OpenAIProvider struct {
	client openai.Client
	model  string
	label  string
	logger *log.Logger
}

func NewOpenAIProvider(opts NewOpenAIProviderOptions) *OpenAIProvider {
	reqOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}
	if opts.MaxRetries >= 0 {
		reqOpts = append(reqOpts, option.WithMaxRetries(opts.MaxRetries))
	}
	label := opts.Label
	if label == "" {
		label = "OpenAI"
	}
	return &OpenAIProvider{
		client: openai.NewClient(reqOpts...),
		model:  opts.Model,
		label:  label,
		logger: log.Default().Named("openai"),
	}
}

func (p *OpenAIProvider) Name() string {
	return fmt.Sprintf("%s Provider (%s)", p.label, p.model)
}

func (p *OpenAIProvider) complete(ctx context.Context, prompt string, temperature float64, maxTokens int64, out any) error {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return fmt.Errorf("chat completion failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return errors.New("chat completion returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(ExtractJSON(content)), out); err != nil {
		p.logger.Debug("Unparseable completion: %s", content)
		return fmt.Errorf("failed to decode completion: %v", err)
	}
	return nil
}

func (p *OpenAIProvider) GetQuestion(ctx context.Context, age int, stage types.Stage, historyTags []string) (*types.Question, error) {
	var q types.Question
	if err := p.complete(ctx, formatDilemmaPrompt(age, stage, historyTags), 0.8, 500, &q); err != nil {
		return nil, err
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return nil, errors.New("generated question has no prompt")
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return nil, fmt.Errorf("generated question has %d options", len(q.Options))
	}
	if q.ID == "" {
		q.ID = fmt.Sprintf("gen_%d_%s", age, uuid.NewString()[:8])
	}
	q.Difficulty = min(1, max(0, q.Difficulty))
	return &q, nil
}

func (p *OpenAIProvider) Review(ctx context.Context, age int, q types.Question, a types.Answer) (*types.Review, error) {
	var r types.Review
	if err := p.complete(ctx, formatReviewPrompt(age, q, a), 0.7, 400, &r); err != nil {
		return nil, err
	}
	r.MatchScore = min(1, max(0, r.MatchScore))
	return &r, nil
}

func (p *OpenAIProvider) ScoreValues(ctx context.Context, age int, q types.Question, a types.Answer) (*types.ValueDimensions, error) {
	var v types.ValueDimensions
	if err := p.complete(ctx, formatScoringPrompt(age, q, a), 0.6, 300, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (p *OpenAIProvider) FeedbackVoices(ctx context.Context, age int, q types.Question, a types.Answer) (map[string]string, error) {
	voices := map[string]string{}
	if err := p.complete(ctx, formatVoicesPrompt(age, q, a, decisions.VoiceRoles(age)), 0.6, 400, &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

func (p *OpenAIProvider) LifeSummary(ctx context.Context, in LifeSummaryInput) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	if err := p.complete(ctx, formatSummaryPrompt(in), 0.7, 600, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Summary) == "" {
		return "", errors.New("empty life summary")
	}
	return out.Summary, nil
}
