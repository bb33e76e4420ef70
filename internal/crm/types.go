package crm

import (
	"fmt"
	"strings"
	"time"
)

// LeadStatus is the pipeline stage of a contact.
type LeadStatus string

const (
	StatusNew           LeadStatus = "New"
	StatusContacted     LeadStatus = "Contacted"
	StatusNurturing     LeadStatus = "Nurturing"
	StatusMeetingBooked LeadStatus = "Meeting Booked"
	StatusClosed        LeadStatus = "Closed"
	StatusArchived      LeadStatus = "Archived"
)

// Valid reports whether s is one of the known lead statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusNurturing, StatusMeetingBooked, StatusClosed, StatusArchived:
		return true
	}
	return false
}

// Terminal reports whether a contact in this status is excluded from
// follow-up scheduling.
func (s LeadStatus) Terminal() bool {
	return s == StatusClosed || s == StatusArchived
}

// InteractionType classifies how a contact was reached.
type InteractionType string

const (
	TypeEmail    InteractionType = "Email"
	TypeCall     InteractionType = "Call"
	TypeMeeting  InteractionType = "Meeting"
	TypeLinkedIn InteractionType = "LinkedIn"
	TypeNote     InteractionType = "Note"
)

// Valid reports whether t is one of the known interaction types.
func (t InteractionType) Valid() bool {
	switch t {
	case TypeEmail, TypeCall, TypeMeeting, TypeLinkedIn, TypeNote:
		return true
	}
	return false
}

// Contact is a person or lead tracked for relationship management.
// JSON tags match the collection storage format, so stored data round-trips.
type Contact struct {
	ID                    string     `json:"id"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone,omitempty"`
	Title                 string     `json:"title,omitempty"`
	CompanyID             string     `json:"companyId,omitempty"`
	LinkedInURL           string     `json:"linkedInUrl,omitempty"`
	Location              string     `json:"location,omitempty"`
	Status                LeadStatus `json:"status"`
	Tags                  []string   `json:"tags"`
	LastContacted         *time.Time `json:"lastContacted,omitempty"`
	FollowUpFrequencyDays int        `json:"followUpFrequencyDays"`
	Notes                 string     `json:"notes,omitempty"`
	AvatarURL             string     `json:"avatarUrl,omitempty"`
}

// FullName returns the contact's display name.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validate checks the fields required to schedule a contact.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return fmt.Errorf("%w: firstName required", ErrValidation)
	}
	if strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: lastName required", ErrValidation)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email required", ErrValidation)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, c.Status)
	}
	if c.FollowUpFrequencyDays <= 0 {
		return fmt.Errorf("%w: followUpFrequencyDays must be positive, got %d", ErrValidation, c.FollowUpFrequencyDays)
	}
	return nil
}

// Interaction is a timestamped record of outreach to a contact.
// Interactions are immutable once recorded.
type Interaction struct {
	ID        string          `json:"id"`
	ContactID string          `json:"contactId"`
	Date      time.Time       `json:"date"`
	Type      InteractionType `json:"type"`
	Notes     string          `json:"notes"`
}

// Validate checks the fields required to record an interaction.
func (in *Interaction) Validate() error {
	if strings.TrimSpace(in.ContactID) == "" {
		return fmt.Errorf("%w: contactId required", ErrValidation)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown interaction type %q", ErrValidation, in.Type)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date required", ErrValidation)
	}
	return nil
}

// Company is referenced by Contact.CompanyID. Lookup-only — companies are
// never owned or mutated by the core.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website,omitempty"`
}
