package llm

import (
	"fmt"
	"strings"

	"github.com/lazypower/nexus/internal/crm"
)

// EnrichmentPrompt generates the prompt for extracting contact fields from
// raw pasted text (a LinkedIn bio, email signature, meeting notes).
func EnrichmentPrompt(rawText string) string {
	return fmt.Sprintf(`You are a contact enrichment system. Analyze the raw text below (it might be a LinkedIn bio, email signature, or notes) and extract contact details.

RAW TEXT:
%s

Rules:
- Only include fields the text actually supports — omit anything you would have to guess
- tags are short free-text labels (e.g. "VIP", "Startup", "Decision Maker")
- Return ONLY a JSON object, no other text

Return a JSON object:
{
  "firstName": "...",
  "lastName": "...",
  "title": "...",
  "companyName": "...",
  "email": "...",
  "location": "...",
  "tags": ["..."]
}`, rawText)
}

// SuggestionPrompt generates the prompt for an engagement suggestion:
// relationship health, a concrete next step, and a draft email.
func SuggestionPrompt(contact *crm.Contact, recent []crm.Interaction) string {
	lastContacted := "Never"
	if contact.LastContacted != nil {
		lastContacted = contact.LastContacted.Format("2006-01-02")
	}

	var history strings.Builder
	for i, in := range recent {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&history, "- %s (%s): %s\n", in.Date.Format("2006-01-02"), in.Type, in.Notes)
	}
	if history.Len() == 0 {
		history.WriteString("(no interactions recorded)\n")
	}

	return fmt.Sprintf(`You are an expert sales assistant.

CONTACT: %s, %s
LAST CONTACTED: %s

RECENT HISTORY:
%s
Task:
1. Analyze the relationship health.
2. Suggest a specific next step (e.g. send an article about X, ask for coffee).
3. Draft a short, personalized email for that next step.

Rules:
- healthScore is an integer 0-100 based on contact frequency and warmth
- Return ONLY a JSON object, no other text

Return a JSON object:
{"healthScore": 0, "suggestion": "...", "emailDraft": "..."}`,
		contact.FullName(), contact.Title, lastContacted, history.String())
}
