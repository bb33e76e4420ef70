package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lazypower/nexus/internal/crm"
)

// Storage keys, one per collection. The values are whole-collection JSON.
const (
	KeyContacts     = "nexus_contacts"
	KeyInteractions = "nexus_interactions"
)

// Adapter persists the contact and interaction collections to a KV byte
// store as whole-collection overwrites.
type Adapter struct {
	kv KV
}

// NewAdapter creates an Adapter over the given KV backend.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Load reads both collections. A missing or malformed value for either key
// falls back to that collection's seed fixtures — corrupt storage is logged
// and ignored, never fatal.
func (a *Adapter) Load() ([]crm.Contact, []crm.Interaction) {
	contacts := loadCollection(a.kv, KeyContacts, SeedContacts)
	interactions := loadCollection(a.kv, KeyInteractions, SeedInteractions)
	return contacts, interactions
}

func loadCollection[T any](kv KV, key string, seed func() []T) []T {
	raw, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("load %s: %v — using seed data", key, err)
		}
		return seed()
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("load %s: malformed stored data (%v) — using seed data", key, err)
		return seed()
	}
	return out
}

// Save overwrites both collections.
func (a *Adapter) Save(contacts []crm.Contact, interactions []crm.Interaction) error {
	if err := saveCollection(a.kv, KeyContacts, contacts); err != nil {
		return err
	}
	return saveCollection(a.kv, KeyInteractions, interactions)
}

func saveCollection[T any](kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.Set(key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
