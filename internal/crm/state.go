package crm

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Saver externalizes both collections after a mutation. The persistence
// adapter implements this; tests use a no-op or a recording fake.
type Saver interface {
	Save(contacts []Contact, interactions []Interaction) error
}

// State owns the in-memory contact and interaction collections. It is the
// single source of truth for scheduling decisions; every mutation is
// mirrored through the Saver as a whole-collection overwrite.
//
// The logical model is a single actor, but the HTTP server calls in from
// concurrent goroutines, so a mutex guards both collections.
type State struct {
	mu           sync.Mutex
	contacts     []Contact
	interactions []Interaction
	saver        Saver
}

// NewState creates a State holding the given collections. A nil saver
// disables persistence (useful in tests).
func NewState(contacts []Contact, interactions []Interaction, saver Saver) *State {
	return &State{
		contacts:     contacts,
		interactions: interactions,
		saver:        saver,
	}
}

// persist mirrors both collections through the saver. Persistence failures
// are logged, not raised — the in-memory state is already updated and
// remains authoritative.
func (s *State) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.contacts, s.interactions); err != nil {
		log.Printf("persist: %v", err)
	}
}

// Contacts returns a snapshot copy of the contact collection in input order.
func (s *State) Contacts() []Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Interactions returns a snapshot copy of the interaction collection in
// insertion order.
func (s *State) Interactions() []Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Interaction, len(s.interactions))
	copy(out, s.interactions)
	return out
}

// GetContact returns a copy of the contact with the given id, or nil.
func (s *State) GetContact(id string) *Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findContact(id)
}

// findContact returns a copy of the contact with the given id. Caller holds mu.
func (s *State) findContact(id string) *Contact {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			c := s.contacts[i]
			return &c
		}
	}
	return nil
}

// InteractionsForContact returns the contact's history, newest first.
func (s *State) InteractionsForContact(contactID string) []Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Interaction
	for _, in := range s.interactions {
		if in.ContactID == contactID {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// AddContact validates and appends a new contact. An empty id is assigned;
// a supplied id must not collide with an existing contact.
func (s *State) AddContact(c Contact) (Contact, error) {
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	} else if s.findContact(c.ID) != nil {
		return Contact{}, fmt.Errorf("%w: contact id %q already exists", ErrValidation, c.ID)
	}

	s.contacts = append(s.contacts, c)
	s.persist()
	return c, nil
}

// UpdateContact replaces the stored contact with the same id.
func (s *State) UpdateContact(c Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			s.contacts[i] = c
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: contact %q", ErrNotFound, c.ID)
}

// UpdateContactStatus moves a contact to a new pipeline stage. This is the
// kanban drag operation.
func (s *State) UpdateContactStatus(id string, status LeadStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].Status = status
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: contact %q", ErrNotFound, id)
}

// RecordInteraction appends a new interaction and reconciles the owning
// contact's lastContacted. Validation happens before any mutation: either
// both the append and the reconciliation take effect, or neither store is
// touched.
//
// Reconciliation is most-recent-wins, not last-write-wins: lastContacted
// only advances when the interaction's date is strictly newer, so recording
// an older-dated interaction after a newer one never regresses it. An
// interaction referencing an unknown contact is stored anyway — dangling
// references are tolerated for later reconciliation.
func (s *State) RecordInteraction(in Interaction) (Interaction, error) {
	if err := in.Validate(); err != nil {
		return Interaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ID == "" {
		in.ID = uuid.NewString()
	} else {
		for i := range s.interactions {
			if s.interactions[i].ID == in.ID {
				return Interaction{}, fmt.Errorf("%w: interaction id %q already exists", ErrValidation, in.ID)
			}
		}
	}

	s.interactions = append(s.interactions, in)

	for i := range s.contacts {
		if s.contacts[i].ID != in.ContactID {
			continue
		}
		last := s.contacts[i].LastContacted
		if last == nil || in.Date.After(*last) {
			d := in.Date
			s.contacts[i].LastContacted = &d
		}
		break
	}

	s.persist()
	return in, nil
}

// Due returns the ordered due-follow-up list at the given instant.
// Pure derived view — recomputed on every call, never cached.
func (s *State) Due(now time.Time) []Contact {
	return DueContacts(s.Contacts(), now)
}
