package providers

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cbodonnell/moralmaze/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name       string
		difficulty float64
		match      float64
		want       int
	}{
		{"zero match", 0.5, 0, 0},
		{"mid", 0.5, 0.6, 2},
		{"full", 1, 1, 5},
		{"clamped high", 1, 1, 5},
		{"negative match", 1, -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateGrowth(tt.difficulty, tt.match, 4))
		})
	}
	assert.Equal(t, 5, CalculateGrowth(1, 1, 10))
}

func TestMatchScore(t *testing.T) {
	assert.Equal(t, 0.0, MatchScore("   "))
	assert.InDelta(t, 0.4, MatchScore("Tell"), 1e-9)
	assert.InDelta(t, 0.6, MatchScore("Tell the truth to everyone"), 1e-9)
	long := "I would tell the truth because honesty matters and I should help fix it"
	assert.InDelta(t, 1.0, MatchScore(long), 1e-9)
}

func TestLocalProvider_GetQuestion(t *testing.T) {
	p := NewLocalProvider(rand.New(rand.NewPCG(1, 2)))
	ctx := context.Background()

	q, err := p.GetQuestion(ctx, 11, types.StagePreteen, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(q.ID, "preteen_1_"))
	assert.NotEmpty(t, q.Prompt)

	q2, err := p.GetQuestion(ctx, 11, types.StagePreteen, nil)
	require.NoError(t, err)
	assert.NotEqual(t, q.ID, q2.ID)

	// Every preteen scenario but preteen_2 carries one of these tags.
	for i := 0; i < 20; i++ {
		q, err := p.GetQuestion(ctx, 11, types.StagePreteen, []string{"honesty", "justice"})
		require.NoError(t, err)
		assert.Contains(t, q.Prompt, "class library")
	}
}

func TestLocalProvider_Review(t *testing.T) {
	p := NewLocalProvider(rand.New(rand.NewPCG(1, 2)))
	q := types.Question{Prompt: "p", Options: []string{"Tell the truth", "Hide it"}, Difficulty: 0.5}

	r, err := p.Review(context.Background(), 12, q, types.Answer{})
	require.NoError(t, err)
	assert.Equal(t, 0, r.GrowthDelta)
	assert.Equal(t, "No answer provided. Try sharing your thoughts!", r.Feedback)

	r, err = p.Review(context.Background(), 12, q, types.Answer{
		ChoiceID: intPtr(0),
		FreeText: "because honesty matters and I should take responsibility for it",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, r.GrowthDelta)
	assert.InDelta(t, 1.0, r.MatchScore, 1e-9)
	assert.Contains(t, feedbackBands[0].lines, r.Feedback)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, ExtractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, ExtractJSON(`Sure! {"a":1} Hope that helps`))
	assert.Equal(t, "nothing", ExtractJSON("  nothing "))
}

func completionServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testOpenAIProvider(srv *httptest.Server) *OpenAIProvider {
	return NewOpenAIProvider(NewOpenAIProviderOptions{
		APIKey:  "test",
		BaseURL: srv.URL + "/v1/",
		Model:   "test-model",
	})
}

func TestOpenAIProvider_GetQuestion(t *testing.T) {
	srv := completionServer(t, "```json\n{\"prompt\":\"Save one or many?\",\"options\":[\"One\",\"Many\"],\"difficulty\":1.4,\"tags\":[\"justice\"]}\n```", http.StatusOK)
	p := testOpenAIProvider(srv)

	q, err := p.GetQuestion(context.Background(), 20, types.StageYoungAdult, []string{"courage"})
	require.NoError(t, err)
	assert.Equal(t, "Save one or many?", q.Prompt)
	assert.Equal(t, 1.0, q.Difficulty)
	assert.True(t, strings.HasPrefix(q.ID, "gen_20_"))
	assert.Equal(t, "OpenAI Provider (test-model)", p.Name())
}

func TestOpenAIProvider_GetQuestion_invalid(t *testing.T) {
	srv := completionServer(t, `{"prompt":"Only one","options":["A"]}`, http.StatusOK)
	_, err := testOpenAIProvider(srv).GetQuestion(context.Background(), 20, types.StageYoungAdult, nil)
	assert.Error(t, err)
}

func TestOpenAIProvider_errors(t *testing.T) {
	srv := completionServer(t, "", http.StatusInternalServerError)
	p := testOpenAIProvider(srv)
	_, err := p.Review(context.Background(), 20, types.Question{}, types.Answer{ChoiceID: intPtr(0)})
	assert.Error(t, err)

	garbage := completionServer(t, "not json at all", http.StatusOK)
	_, err = testOpenAIProvider(garbage).ScoreValues(context.Background(), 20, types.Question{}, types.Answer{})
	assert.Error(t, err)
}

func TestOpenAIProvider_richOutputs(t *testing.T) {
	ctx := context.Background()
	q := types.Question{Prompt: "p", Options: []string{"a", "b"}, Tags: []string{"courage"}}
	a := types.Answer{ChoiceID: intPtr(1)}

	v, err := testOpenAIProvider(completionServer(t, `{"empathy":1,"courage":2}`, http.StatusOK)).ScoreValues(ctx, 30, q, a)
	require.NoError(t, err)
	assert.Equal(t, types.ValueDimensions{Empathy: 1, Courage: 2}, *v)

	voices, err := testOpenAIProvider(completionServer(t, `{"child":"Proud of you","friend":"Nice"}`, http.StatusOK)).FeedbackVoices(ctx, 70, q, a)
	require.NoError(t, err)
	assert.Equal(t, "Proud of you", voices["child"])

	summary, err := testOpenAIProvider(completionServer(t, `{"summary":"A life well lived."}`, http.StatusOK)).LifeSummary(ctx, LifeSummaryInput{Age: 90, Stage: types.StageSenior})
	require.NoError(t, err)
	assert.Equal(t, "A life well lived.", summary)

	r, err := testOpenAIProvider(completionServer(t, `{"growth_delta":6,"match_score":1.5,"feedback":"ok"}`, http.StatusOK)).Review(ctx, 30, q, a)
	require.NoError(t, err)
	assert.Equal(t, 6, r.GrowthDelta)
	assert.Equal(t, 1.0, r.MatchScore)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		opts    SelectOptions
		want    string
		wantErr bool
	}{
		{"auto without key", SelectOptions{Kind: "auto"}, LocalProviderName, false},
		{"empty kind", SelectOptions{}, LocalProviderName, false},
		{"auto with key", SelectOptions{Kind: "auto", APIKey: "k"}, "OpenAI Provider (gpt-4o-mini)", false},
		{"ollama keyless", SelectOptions{Kind: "ollama"}, "Ollama Provider (llama3.1)", false},
		{"groq model override", SelectOptions{Kind: "groq", APIKey: "k", Model: "m"}, "Groq Provider (m)", false},
		{"openai without key", SelectOptions{Kind: "openai"}, "", true},
		{"unknown", SelectOptions{Kind: "gemini"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Select(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestOpenAIProvider_implementsOptionalInterfaces(t *testing.T) {
	var p ContentProvider = &OpenAIProvider{}
	_, ok := p.(ValueScorer)
	assert.True(t, ok)
	_, ok = p.(VoiceProvider)
	assert.True(t, ok)
	_, ok = p.(LifeSummarizer)
	assert.True(t, ok)
}
