package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lazypower/nexus/internal/config"
	"github.com/lazypower/nexus/internal/crm"
	"github.com/lazypower/nexus/internal/store"
)

// loadConfig builds the effective configuration: defaults, then .env, then
// process environment.
func loadConfig() config.Config {
	godotenv.Load()

	cfg := config.Default()
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.LLM.Provider = "gemini"
		cfg.LLM.GeminiKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && cfg.LLM.GeminiKey == "" {
		cfg.LLM.Provider = "anthropic"
		cfg.LLM.AnthropicKey = key
	}
	if driver := os.Getenv("NEXUS_STORE"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if path := os.Getenv("NEXUS_DB_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	return cfg
}

// openKV opens the configured KV backend.
func openKV(cfg config.StorageConfig) (store.KV, error) {
	switch cfg.Driver {
	case "sqlite", "":
		path := cfg.Path
		if path == "" {
			var err error
			path, err = store.DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve db path: %w", err)
			}
		}
		return store.Open(path)
	case "badger":
		path := cfg.Path
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("get home dir: %w", err)
			}
			path = filepath.Join(home, ".nexus", "badger")
		}
		return store.OpenBadger(path)
	case "memory":
		return store.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
}

// openState opens storage, hydrates the application state, and returns the
// KV handle so the caller can Close it.
func openState(cfg config.Config) (*crm.State, store.KV, error) {
	kv, err := openKV(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	adapter := store.NewAdapter(kv)
	contacts, interactions := adapter.Load()
	return crm.NewState(contacts, interactions, adapter), kv, nil
}
