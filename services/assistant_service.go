package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

// AdviceRequest is a free-text question plus the nutrition context the
// assistant should ground its answer in.
type AdviceRequest struct {
	Message   string
	LifeStage string
	Summary   string // compact description of today's totals vs. targets
}

type AdviceResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// AdviceClient is the external conversational assistant. The engine treats it
// as a black box; anything implementing this can back the /advice endpoint.
type AdviceClient interface {
	Advise(ctx context.Context, req AdviceRequest) (*AdviceResponse, error)
}

const (
	anthropicURL     = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	anthropicModel   = "claude-3-haiku-20240307"
	adviceMaxTokens  = 1024
)

const adviceSystemPrompt = `You are a supportive maternal-nutrition assistant. The user is %s.
Today's intake so far: %s

Answer the user's question in 2-4 short sentences. Then propose up to three
concrete follow-up actions. Respond with ONLY a JSON object:
{"reply": "...", "suggestions": ["...", "..."]}
Escape newlines inside strings. Never give medical diagnoses; for anything
clinical, advise talking to a healthcare provider.`

type anthropicClient struct {
	httpClient *resty.Client
	log        *zap.Logger
}

// NewAnthropicAdviceClient returns an AdviceClient backed by the Anthropic
// messages API.
func NewAnthropicAdviceClient(apiKey string, log *zap.Logger) AdviceClient {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)
	return &anthropicClient{httpClient: client, log: log}
}

type adviceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type adviceAPIRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system"`
	Messages  []adviceMessage `json:"messages"`
}

type adviceAPIResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropicClient) Advise(ctx context.Context, req AdviceRequest) (*AdviceResponse, error) {
	stage := req.LifeStage
	if stage == "" {
		stage = "pregnant"
	}
	payload := adviceAPIRequest{
		Model:     anthropicModel,
		MaxTokens: adviceMaxTokens,
		System:    fmt.Sprintf(adviceSystemPrompt, stageDescription(stage), req.Summary),
		Messages:  []adviceMessage{{Role: "user", Content: req.Message}},
	}

	var out adviceAPIResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post(anthropicURL)
	if err != nil {
		return nil, fmt.Errorf("advice request failed: %w", err)
	}
	if resp.IsError() {
		c.log.Warn("advice upstream error", zap.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("advice upstream returned %d", resp.StatusCode())
	}
	if len(out.Content) == 0 {
		return nil, fmt.Errorf("advice upstream returned empty content")
	}

	return parseAdvice(out.Content[0].Text)
}

// parseAdvice extracts the JSON object from the model's reply, tolerating
// stray prose around it.
func parseAdvice(text string) (*AdviceResponse, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		// Model ignored the format; use the raw text as the reply.
		return &AdviceResponse{Reply: strings.TrimSpace(text)}, nil
	}
	var out AdviceResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return &AdviceResponse{Reply: strings.TrimSpace(text)}, nil
	}
	return &out, nil
}

func stageDescription(stage string) string {
	switch stage {
	case "ttc":
		return "trying to conceive"
	case "t1":
		return "in the first trimester of pregnancy"
	case "t2":
		return "in the second trimester of pregnancy"
	case "t3":
		return "in the third trimester of pregnancy"
	case "postpartum":
		return "postpartum"
	default:
		return "pregnant"
	}
}

// AssistantService composes the user's current day into context for the
// advice client.
type AssistantService struct {
	summaries *DailyLogService
	users     stores.UserStore
	client    AdviceClient
}

func NewAssistantService(summaries *DailyLogService, users stores.UserStore, client AdviceClient) *AssistantService {
	return &AssistantService{summaries: summaries, users: users, client: client}
}

// Ask answers a free-text question, grounding the assistant in today's
// summary for the user.
func (s *AssistantService) Ask(ctx context.Context, userID uint, message string) (*AdviceResponse, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	log, err := s.summaries.GetOrCreateDailySummary(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	targets := ResolveTargets(user.LifeStage)
	var b strings.Builder
	fmt.Fprintf(&b, "calories %.0f, water %d glasses, wellness score %d/100.",
		log.TotalCalories, log.WaterGlasses, log.WellnessScore)
	for _, key := range ScoredNutrients {
		fmt.Fprintf(&b, " %s %.1f of %.1f.", key, log.TotalNutrients[key], targets[key])
	}

	return s.client.Advise(ctx, AdviceRequest{
		Message:   message,
		LifeStage: user.LifeStage,
		Summary:   b.String(),
	})
}
