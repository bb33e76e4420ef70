package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lazypower/nexus/internal/config"
	"github.com/lazypower/nexus/internal/crm"
)

func TestNewClientGemini(t *testing.T) {
	cfg := config.LLMConfig{Provider: "gemini", GeminiKey: "test-key"}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, ok := client.(*Gemini); !ok {
		t.Errorf("expected *Gemini, got %T", client)
	}
}

func TestNewClientGeminiMissingKey(t *testing.T) {
	cfg := config.LLMConfig{Provider: "gemini"}
	_, err := NewClient(cfg)
	if err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewClientAnthropic(t *testing.T) {
	cfg := config.LLMConfig{Provider: "anthropic", AnthropicKey: "test-key", Model: "claude-haiku-4-5-20251001"}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, ok := client.(*Anthropic); !ok {
		t.Errorf("expected *Anthropic, got %T", client)
	}
}

func TestNewClientUnknown(t *testing.T) {
	cfg := config.LLMConfig{Provider: "gpt"}
	_, err := NewClient(cfg)
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestEnrichmentPrompt(t *testing.T) {
	prompt := EnrichmentPrompt("Sarah Miller, VP of Sales at TechCorp")

	if !strings.Contains(prompt, "Sarah Miller, VP of Sales at TechCorp") {
		t.Error("prompt should embed the raw text")
	}
	for _, field := range []string{"firstName", "lastName", "companyName", "tags"} {
		if !strings.Contains(prompt, field) {
			t.Errorf("prompt should name the %s field", field)
		}
	}
}

func TestSuggestionPrompt(t *testing.T) {
	lc := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	contact := &crm.Contact{
		FirstName: "Sarah", LastName: "Miller", Title: "VP of Sales",
		LastContacted: &lc,
	}
	history := []crm.Interaction{
		{Date: lc, Type: crm.TypeCall, Notes: "roadmap call"},
	}

	prompt := SuggestionPrompt(contact, history)
	if !strings.Contains(prompt, "Sarah Miller") {
		t.Error("prompt should name the contact")
	}
	if !strings.Contains(prompt, "2023-10-01") {
		t.Error("prompt should include the last-contacted date")
	}
	if !strings.Contains(prompt, "roadmap call") {
		t.Error("prompt should include interaction history")
	}
	if !strings.Contains(prompt, "healthScore") {
		t.Error("prompt should describe the response schema")
	}
}

func TestSuggestionPromptLimitsHistory(t *testing.T) {
	contact := &crm.Contact{FirstName: "A", LastName: "B"}
	var history []crm.Interaction
	for i := 0; i < 8; i++ {
		history = append(history, crm.Interaction{
			Date:  time.Date(2023, 10, i+1, 0, 0, 0, 0, time.UTC),
			Type:  crm.TypeNote,
			Notes: "note",
		})
	}

	prompt := SuggestionPrompt(contact, history)
	if got := strings.Count(prompt, "(Note):"); got != 5 {
		t.Errorf("prompt includes %d history lines, want 5", got)
	}
}

func TestSuggestionPromptNeverContacted(t *testing.T) {
	contact := &crm.Contact{FirstName: "Jessica", LastName: "Alba"}

	prompt := SuggestionPrompt(contact, nil)
	if !strings.Contains(prompt, "Never") {
		t.Error("prompt should say Never for an uncontacted contact")
	}
	if !strings.Contains(prompt, "no interactions recorded") {
		t.Error("prompt should mark an empty history")
	}
}

func TestMockClient(t *testing.T) {
	mock := &MockClient{
		Response: &Response{Content: "test response", Provider: "mock"},
	}

	resp, err := mock.Complete(context.Background(), "test prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "test response" {
		t.Errorf("content = %q, want %q", resp.Content, "test response")
	}
	if len(mock.Calls) != 1 {
		t.Errorf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0] != "test prompt" {
		t.Errorf("call[0] = %q, want %q", mock.Calls[0], "test prompt")
	}
}
