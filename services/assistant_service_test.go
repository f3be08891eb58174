package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themisatsal/hilla-mobile-sub000/models"
	"github.com/themisatsal/hilla-mobile-sub000/stores"
)

func TestParseAdvice(t *testing.T) {
	out, err := parseAdvice(`{"reply":"Eat more leafy greens.","suggestions":["spinach salad","lentil soup"]}`)
	require.NoError(t, err)
	assert.Equal(t, "Eat more leafy greens.", out.Reply)
	assert.Len(t, out.Suggestions, 2)
}

func TestParseAdviceTolerantOfSurroundingProse(t *testing.T) {
	out, err := parseAdvice("Sure! Here you go:\n{\"reply\":\"ok\",\"suggestions\":[]}\nHope that helps.")
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Reply)
}

func TestParseAdviceFallsBackToRawText(t *testing.T) {
	out, err := parseAdvice("Just eat more iron-rich food.")
	require.NoError(t, err)
	assert.Equal(t, "Just eat more iron-rich food.", out.Reply)
	assert.Empty(t, out.Suggestions)
}

type stubAdviceClient struct {
	got  AdviceRequest
	resp *AdviceResponse
}

func (s *stubAdviceClient) Advise(_ context.Context, req AdviceRequest) (*AdviceResponse, error) {
	s.got = req
	return s.resp, nil
}

func TestAssistantIncludesSummaryContext(t *testing.T) {
	store := stores.NewMemoryStore()
	ctx := context.Background()
	user := &models.User{Email: "mara@example.com", Password: "x", LifeStage: models.StageTrimester3}
	require.NoError(t, store.CreateUser(ctx, user))

	summaries := NewDailyLogService(store, store, store, nil, nil)
	stub := &stubAdviceClient{resp: &AdviceResponse{Reply: "hi"}}
	svc := NewAssistantService(summaries, store, stub)

	out, err := svc.Ask(ctx, user.ID, "what should I eat for iron?")
	require.NoError(t, err)
	assert.Equal(t, "hi", out.Reply)

	assert.Equal(t, "what should I eat for iron?", stub.got.Message)
	assert.Equal(t, models.StageTrimester3, stub.got.LifeStage)
	assert.Contains(t, stub.got.Summary, "wellness score")
	assert.Contains(t, stub.got.Summary, "iron")
}

func TestAssistantUnknownUser(t *testing.T) {
	store := stores.NewMemoryStore()
	summaries := NewDailyLogService(store, store, store, nil, nil)
	svc := NewAssistantService(summaries, store, &stubAdviceClient{resp: &AdviceResponse{}})

	_, err := svc.Ask(context.Background(), 42, "hello")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
