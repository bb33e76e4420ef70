package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lazypower/nexus/internal/crm"
	"github.com/lazypower/nexus/internal/llm"
)

// ErrBusy is returned when an AI request for the same contact and action is
// already in flight. Duplicate concurrent submissions are rejected, not queued.
var ErrBusy = errors.New("request already in flight")

// ErrUnavailable is returned when no LLM client is configured.
var ErrUnavailable = errors.New("llm not configured")

const defaultTimeout = 60 * time.Second

// Enricher runs AI enrichment and engagement suggestions against the
// application state. AI calls are slow and unreliable; every call gets a
// bounded timeout and failures never touch contact or interaction state.
type Enricher struct {
	State   *crm.State
	LLM     llm.Client
	Timeout time.Duration

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates an Enricher. A zero timeout falls back to 60 seconds.
func New(state *crm.State, client llm.Client, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Enricher{
		State:    state,
		LLM:      client,
		Timeout:  timeout,
		inflight: make(map[string]bool),
	}
}

// acquire marks an action in flight, or reports ErrBusy if it already is.
func (e *Enricher) acquire(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inflight[key] {
		return fmt.Errorf("%w: %s", ErrBusy, key)
	}
	e.inflight[key] = true
	return nil
}

func (e *Enricher) release(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, key)
}

// enrichmentResult is the JSON object returned by the enrichment LLM call.
// All fields are optional — the model omits what the text doesn't support.
type enrichmentResult struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Title       string   `json:"title"`
	CompanyName string   `json:"companyName"`
	Email       string   `json:"email"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
}

// Enrich extracts contact fields from raw text and merges them onto the
// contact. The merge is all-or-nothing: nothing is written unless the LLM
// response parses, and only returned, non-empty fields overwrite the copy
// that finally replaces the stored contact.
func (e *Enricher) Enrich(ctx context.Context, contactID, rawText string) (*crm.Contact, error) {
	if e.LLM == nil {
		return nil, ErrUnavailable
	}
	contact := e.State.GetContact(contactID)
	if contact == nil {
		return nil, fmt.Errorf("%w: contact %q", crm.ErrNotFound, contactID)
	}

	key := "enrich:" + contactID
	if err := e.acquire(key); err != nil {
		return nil, err
	}
	defer e.release(key)

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	resp, err := e.LLM.Complete(ctx, llm.EnrichmentPrompt(rawText))
	if err != nil {
		return nil, fmt.Errorf("enrichment llm: %w", err)
	}

	var result enrichmentResult
	if err := parseJSONObject(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("enrichment response: %w", err)
	}

	merged := *contact
	if result.FirstName != "" {
		merged.FirstName = result.FirstName
	}
	if result.LastName != "" {
		merged.LastName = result.LastName
	}
	if result.Title != "" {
		merged.Title = result.Title
	}
	if result.CompanyName != "" {
		merged.CompanyID = result.CompanyName
	}
	if result.Email != "" {
		merged.Email = result.Email
	}
	if result.Location != "" {
		merged.Location = result.Location
	}
	if len(result.Tags) > 0 {
		tags := make([]string, 0, len(contact.Tags)+len(result.Tags))
		tags = append(tags, contact.Tags...)
		merged.Tags = append(tags, result.Tags...)
	}

	if err := e.State.UpdateContact(merged); err != nil {
		return nil, fmt.Errorf("apply enrichment: %w", err)
	}
	return &merged, nil
}

// Suggestion is the engagement advice produced for a contact.
type Suggestion struct {
	HealthScore int    `json:"healthScore"`
	Suggestion  string `json:"suggestion"`
	EmailDraft  string `json:"emailDraft"`
}

// Suggest analyzes a contact's recent history and proposes a next step.
// Read-only — it never mutates contact or interaction state.
func (e *Enricher) Suggest(ctx context.Context, contactID string) (*Suggestion, error) {
	if e.LLM == nil {
		return nil, ErrUnavailable
	}
	contact := e.State.GetContact(contactID)
	if contact == nil {
		return nil, fmt.Errorf("%w: contact %q", crm.ErrNotFound, contactID)
	}

	key := "suggest:" + contactID
	if err := e.acquire(key); err != nil {
		return nil, err
	}
	defer e.release(key)

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	history := e.State.InteractionsForContact(contactID)
	resp, err := e.LLM.Complete(ctx, llm.SuggestionPrompt(contact, history))
	if err != nil {
		return nil, fmt.Errorf("suggestion llm: %w", err)
	}

	var s Suggestion
	if err := parseJSONObject(resp.Content, &s); err != nil {
		return nil, fmt.Errorf("suggestion response: %w", err)
	}

	if s.HealthScore < 0 {
		s.HealthScore = 0
	}
	if s.HealthScore > 100 {
		s.HealthScore = 100
	}
	return &s, nil
}
