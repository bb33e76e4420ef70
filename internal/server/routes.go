package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lazypower/nexus/internal/crm"
	"github.com/lazypower/nexus/internal/engine"
)

// errStatus maps domain errors to HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, crm.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, crm.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, engine.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts := s.state.Contacts()

	if status := r.URL.Query().Get("status"); status != "" {
		var filtered []crm.Contact
		for _, c := range contacts {
			if c.Status == crm.LeadStatus(status) {
				filtered = append(filtered, c)
			}
		}
		contacts = filtered
	}

	if q := strings.ToLower(r.URL.Query().Get("q")); q != "" {
		var filtered []crm.Contact
		for _, c := range contacts {
			haystack := strings.ToLower(c.FullName() + " " + c.Email + " " + c.CompanyID)
			if strings.Contains(haystack, q) {
				filtered = append(filtered, c)
			}
		}
		contacts = filtered
	}

	if contacts == nil {
		contacts = []crm.Contact{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(contacts),
		"contacts": contacts,
	})
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var c crm.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := s.state.AddContact(c)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactID")
	c := s.state.GetContact(id)
	if c == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"contact":      c,
		"interactions": s.state.InteractionsForContact(id),
	})
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var c crm.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	c.ID = chi.URLParam(r, "contactID")

	if err := s.state.UpdateContact(c); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactID")

	var req struct {
		Status crm.LeadStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := s.state.UpdateContactStatus(id, req.Status); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

func (s *Server) handleContactInteractions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "contactID")
	history := s.state.InteractionsForContact(id)
	if history == nil {
		history = []crm.Interaction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":        len(history),
		"interactions": history,
	})
}

func (s *Server) handleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	var in crm.Interaction
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	recorded, err := s.state.RecordInteraction(in)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, recorded)
}

func (s *Server) handleFollowUps(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	// Test hook: ?now=2023-10-25T00:00:00Z pins the scheduling instant.
	if v := r.URL.Query().Get("now"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid now parameter, want RFC 3339")
			return
		}
		now = parsed
	}

	due := s.state.Due(now)
	if due == nil {
		due = []crm.Contact{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"now":   now.Format(time.RFC3339),
		"count": len(due),
		"due":   due,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state.Stats(time.Now()))
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"columns": s.state.Pipeline(),
	})
}

func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	if s.enricher == nil {
		writeError(w, http.StatusServiceUnavailable, "ai not configured")
		return
	}
	id := chi.URLParam(r, "contactID")

	var req struct {
		RawText string `json:"rawText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.RawText) == "" {
		writeError(w, http.StatusBadRequest, "rawText required")
		return
	}

	merged, err := s.enricher.Enrich(r.Context(), id, req.RawText)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if s.enricher == nil {
		writeError(w, http.StatusServiceUnavailable, "ai not configured")
		return
	}
	id := chi.URLParam(r, "contactID")

	suggestion, err := s.enricher.Suggest(r.Context(), id)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}
