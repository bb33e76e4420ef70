package store

import (
	"errors"
	"testing"
)

// kvContract exercises the behavior every KV backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := kv.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get = %q, want v1", got)
	}

	// Overwrite
	if err := kv.Set("k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = kv.Get("k")
	if string(got) != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", got)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	defer kv.Close()
	kvContract(t, kv)
}

func TestSQLiteKV(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()
	kvContract(t, db)
}

func TestBadgerKV(t *testing.T) {
	kv, err := OpenBadgerMemory()
	if err != nil {
		t.Fatalf("OpenBadgerMemory: %v", err)
	}
	defer kv.Close()
	kvContract(t, kv)
}

func TestSchemaVersion(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("schema version = %d, want %d", v, len(migrations))
	}
}
