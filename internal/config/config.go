package config

import "fmt"

// Config holds all nexus configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	LLM     LLMConfig     `toml:"llm"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // "sqlite", "badger", "memory"
	Path   string `toml:"path"`   // db file (sqlite) or directory (badger)
}

type LLMConfig struct {
	Provider     string `toml:"provider"` // "gemini", "anthropic", "mock"
	Model        string `toml:"model"`
	GeminiKey    string `toml:"gemini_key"`
	AnthropicKey string `toml:"anthropic_key"`
	Timeout      int    `toml:"timeout"` // seconds, upper bound on any AI call
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 38800,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   "", // resolved at runtime via store.DefaultDBPath()
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Timeout:  60,
		},
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
