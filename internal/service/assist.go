package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/babyBee3443/biogenius-sub001/internal/genai"
	"github.com/babyBee3443/biogenius-sub001/internal/metrics"
)

// ChatTurn is one prior exchange in a biology chat conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// NoteSuggestionInput is the request for the note-suggestion generator.
type NoteSuggestionInput struct {
	Topic    string   `json:"topic"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords,omitempty"`
	Outline  string   `json:"outline,omitempty"`
}

// NoteSuggestion is the generated note scaffold.
type NoteSuggestion struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	ContentIdeas string   `json:"content_ideas"`
}

// DailyFact is a generated biology fact of the day.
type DailyFact struct {
	Title      string `json:"title"`
	Fact       string `json:"fact"`
	SourceHint string `json:"source_hint,omitempty"`
}

// refusalMarker is the fixed substring the model emits when it cannot
// produce a verifiable fact. Detection replaces the raw refusal text with
// FallbackDailyFact instead of surfacing it.
const refusalMarker = "doğrulanabilir bir bilgi sunamıyorum"

// FallbackDailyFact is returned whenever the model signals it cannot provide
// a verifiable fact.
var FallbackDailyFact = DailyFact{
	Title: "Günün bilgisi hazırlanamadı",
	Fact:  "Bugün için doğrulanmış bir biyoloji bilgisi sunulamıyor. Lütfen daha sonra tekrar deneyin.",
}

// ErrEmptyModelOutput is returned when the model produces no usable output.
var ErrEmptyModelOutput = errors.New("empty model output")

// AssistService runs the three AI content-assist flows. All flows are
// read-only with respect to the persistence layer: callers decide whether to
// store a suggestion.
type AssistService struct {
	gen genai.Generator
}

// NewAssistService creates a new AssistService.
func NewAssistService(gen genai.Generator) *AssistService {
	return &AssistService{gen: gen}
}

// Chat answers a biology question, optionally continuing a prior
// conversation. An empty answer from the model is an error, never an empty
// string.
func (s *AssistService) Chat(ctx context.Context, query string, history []ChatTurn) (string, error) {
	start := time.Now()

	system := "Sen BiyoGenius dergisinin biyoloji asistanısın. " +
		"Lise ve üniversite düzeyindeki biyoloji sorularını Türkçe, doğru ve anlaşılır biçimde yanıtla. " +
		"Emin olmadığın konularda bunu açıkça belirt."

	var sb strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&sb, "[%s] %s\n", turn.Role, turn.Content)
	}
	fmt.Fprintf(&sb, "[user] %s", query)

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
		},
		"required":             []string{"answer"},
		"additionalProperties": false,
	}

	out, err := s.gen.GenerateJSON(ctx, system, sb.String(), "biology_chat_answer", schema)
	if err != nil {
		metrics.ObserveAssist("chat", "error", time.Since(start).Seconds())
		return "", err
	}

	answer, _ := out["answer"].(string)
	if strings.TrimSpace(answer) == "" {
		metrics.ObserveAssist("chat", "empty", time.Since(start).Seconds())
		return "", ErrEmptyModelOutput
	}

	metrics.ObserveAssist("chat", "success", time.Since(start).Seconds())
	return answer, nil
}

// SuggestNote generates a study-note scaffold for a topic and level.
func (s *AssistService) SuggestNote(ctx context.Context, in NoteSuggestionInput) (NoteSuggestion, error) {
	start := time.Now()

	system := "Sen biyoloji ders notları hazırlayan bir editör asistanısın. " +
		"Verilen konu ve seviye için Türkçe bir not taslağı öner. İçerik fikirlerini markdown biçiminde yaz."

	var sb strings.Builder
	fmt.Fprintf(&sb, "Konu: %s\nSeviye: %s\n", in.Topic, in.Level)
	if len(in.Keywords) > 0 {
		fmt.Fprintf(&sb, "Anahtar kelimeler: %s\n", strings.Join(in.Keywords, ", "))
	}
	if in.Outline != "" {
		fmt.Fprintf(&sb, "Taslak: %s\n", in.Outline)
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":         map[string]any{"type": "string"},
			"summary":       map[string]any{"type": "string"},
			"tags":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"content_ideas": map[string]any{"type": "string"},
		},
		"required":             []string{"title", "content_ideas"},
		"additionalProperties": false,
	}

	out, err := s.gen.GenerateJSON(ctx, system, sb.String(), "note_suggestion", schema)
	if err != nil {
		metrics.ObserveAssist("note_suggestion", "error", time.Since(start).Seconds())
		return NoteSuggestion{}, err
	}

	suggestion := NoteSuggestion{}
	suggestion.Title, _ = out["title"].(string)
	suggestion.Summary, _ = out["summary"].(string)
	suggestion.ContentIdeas, _ = out["content_ideas"].(string)
	if tags, ok := out["tags"].([]any); ok {
		for _, t := range tags {
			if tag, ok := t.(string); ok && tag != "" {
				suggestion.Tags = append(suggestion.Tags, tag)
			}
		}
	}

	if strings.TrimSpace(suggestion.Title) == "" && strings.TrimSpace(suggestion.ContentIdeas) == "" {
		metrics.ObserveAssist("note_suggestion", "empty", time.Since(start).Seconds())
		return NoteSuggestion{}, ErrEmptyModelOutput
	}

	metrics.ObserveAssist("note_suggestion", "success", time.Since(start).Seconds())
	return suggestion, nil
}

// GenerateDailyFact produces the biology fact of the day in Turkish. When
// the model's own text signals it cannot provide a verifiable fact, the
// canned fallback payload is returned instead of the refusal text.
func (s *AssistService) GenerateDailyFact(ctx context.Context) (DailyFact, error) {
	start := time.Now()

	system := "Sen BiyoGenius dergisi için günün biyoloji bilgisini hazırlayan bir asistansın. " +
		"Şaşırtıcı ama doğrulanabilir bir biyoloji bilgisini Türkçe olarak üret. " +
		"Doğrulanabilir bir bilgi üretemiyorsan yanıtında '" + refusalMarker + "' ifadesini kullan."

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"fact":        map[string]any{"type": "string"},
			"source_hint": map[string]any{"type": "string"},
		},
		"required":             []string{"title", "fact"},
		"additionalProperties": false,
	}

	out, err := s.gen.GenerateJSON(ctx, system, "Bugünün biyoloji bilgisini üret.", "daily_fact", schema)
	if err != nil {
		metrics.ObserveAssist("daily_fact", "error", time.Since(start).Seconds())
		return DailyFact{}, err
	}

	fact := DailyFact{}
	fact.Title, _ = out["title"].(string)
	fact.Fact, _ = out["fact"].(string)
	fact.SourceHint, _ = out["source_hint"].(string)

	if strings.TrimSpace(fact.Fact) == "" {
		metrics.ObserveAssist("daily_fact", "empty", time.Since(start).Seconds())
		return DailyFact{}, ErrEmptyModelOutput
	}

	if strings.Contains(strings.ToLower(fact.Fact), refusalMarker) || strings.Contains(strings.ToLower(fact.Title), refusalMarker) {
		metrics.ObserveAssist("daily_fact", "fallback", time.Since(start).Seconds())
		return FallbackDailyFact, nil
	}

	metrics.ObserveAssist("daily_fact", "success", time.Since(start).Seconds())
	return fact, nil
}
