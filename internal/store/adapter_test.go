package store

import (
	"testing"
	"time"

	"github.com/lazypower/nexus/internal/crm"
)

func TestAdapterRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	a := NewAdapter(kv)

	lc := time.Date(2023, 10, 1, 12, 30, 0, 0, time.UTC)
	contacts := []crm.Contact{
		{
			ID: "c1", FirstName: "Sarah", LastName: "Miller", Email: "sarah.m@techcorp.com",
			Status: crm.StatusContacted, Tags: []string{"VIP"},
			LastContacted: &lc, FollowUpFrequencyDays: 30,
		},
		{
			ID: "c2", FirstName: "David", LastName: "Chen", Email: "dchen@startup.io",
			Status: crm.StatusNew, Tags: []string{}, FollowUpFrequencyDays: 14,
		},
	}
	interactions := []crm.Interaction{
		{ID: "i1", ContactID: "c1", Date: lc, Type: crm.TypeCall, Notes: "roadmap"},
		{ID: "i2", ContactID: "c2", Date: lc.AddDate(0, 0, -3), Type: crm.TypeEmail, Notes: ""},
	}

	if err := a.Save(contacts, interactions); err != nil {
		t.Fatalf("Save: %v", err)
	}

	gotContacts, gotInteractions := a.Load()

	if len(gotContacts) != 2 {
		t.Fatalf("got %d contacts, want 2", len(gotContacts))
	}
	for i := range contacts {
		if gotContacts[i].ID != contacts[i].ID {
			t.Errorf("contact[%d].ID = %s, want %s (order must be preserved)", i, gotContacts[i].ID, contacts[i].ID)
		}
	}
	if gotContacts[0].LastContacted == nil || !gotContacts[0].LastContacted.Equal(lc) {
		t.Errorf("lastContacted = %v, want %v", gotContacts[0].LastContacted, lc)
	}
	if gotContacts[1].LastContacted != nil {
		t.Errorf("lastContacted = %v, want nil", gotContacts[1].LastContacted)
	}

	if len(gotInteractions) != 2 {
		t.Fatalf("got %d interactions, want 2", len(gotInteractions))
	}
	if gotInteractions[1].Notes != "" {
		t.Errorf("empty notes should survive the round trip, got %q", gotInteractions[1].Notes)
	}
}

func TestAdapterLoadMissingFallsBackToSeed(t *testing.T) {
	a := NewAdapter(NewMemoryKV())

	contacts, interactions := a.Load()

	if len(contacts) != len(SeedContacts()) {
		t.Errorf("got %d contacts, want seed set of %d", len(contacts), len(SeedContacts()))
	}
	if len(interactions) != len(SeedInteractions()) {
		t.Errorf("got %d interactions, want seed set of %d", len(interactions), len(SeedInteractions()))
	}
}

func TestAdapterLoadMalformedFallsBackToSeed(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(KeyContacts, []byte("{not json"))
	kv.Set(KeyInteractions, []byte("%%%%"))

	a := NewAdapter(kv)
	contacts, interactions := a.Load()

	if len(contacts) != len(SeedContacts()) {
		t.Errorf("malformed contacts: got %d, want seed set of %d", len(contacts), len(SeedContacts()))
	}
	if len(interactions) != len(SeedInteractions()) {
		t.Errorf("malformed interactions: got %d, want seed set of %d", len(interactions), len(SeedInteractions()))
	}
}

func TestAdapterPartialCorruption(t *testing.T) {
	kv := NewMemoryKV()
	a := NewAdapter(kv)

	// Valid contacts, corrupt interactions — only the corrupt collection resets.
	contacts := []crm.Contact{{
		ID: "only", FirstName: "A", LastName: "B", Email: "a@b",
		Status: crm.StatusNew, FollowUpFrequencyDays: 7,
	}}
	if err := a.Save(contacts, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	kv.Set(KeyInteractions, []byte("garbage"))

	gotContacts, gotInteractions := a.Load()
	if len(gotContacts) != 1 || gotContacts[0].ID != "only" {
		t.Errorf("valid contacts collection should load intact, got %+v", gotContacts)
	}
	if len(gotInteractions) != len(SeedInteractions()) {
		t.Errorf("corrupt interactions should reset to seed, got %d", len(gotInteractions))
	}
}

func TestSeedContactsFresh(t *testing.T) {
	a := SeedContacts()
	a[0].FirstName = "mutated"
	b := SeedContacts()
	if b[0].FirstName == "mutated" {
		t.Error("SeedContacts must return a fresh slice each call")
	}
}
