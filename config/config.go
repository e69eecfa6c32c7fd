package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// MaxUploadMBLimit keeps the byte limit well inside an int on every platform.
const MaxUploadMBLimit = 1024

// Config holds everything the server and the transcribe command need. It is
// built once at startup and handed to the components that use it.
type Config struct {
	UseMock       bool   `toml:"use_mock"`
	OpenAIAPIKey  string `toml:"openai_api_key"`
	OpenAIBaseURL string `toml:"openai_base_url"`
	SummaryModel  string `toml:"summary_model"`
	WhisperModel  string `toml:"whisper_model"`
	AllowAllCORS  bool   `toml:"dev_allow_all_cors"`
	ListenAddr    string `toml:"listen_addr"`
	TempDir       string `toml:"temp_dir"`
	MaxUploadMB   int    `toml:"max_upload_mb"`

	// OTLPEndpoint receives trace spans over OTLP/HTTP. Empty keeps spans in process.
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

// Default returns the configuration used when neither a config file nor the
// environment says otherwise.
func Default() *Config {
	return &Config{
		UseMock:      true,
		SummaryModel: "gpt-4o-mini",
		WhisperModel: "whisper-1",
		ListenAddr:   ":8000",
		TempDir:      ".tmp",
		MaxUploadMB:  100,
	}
}

// Load builds a Config from defaults, the optional TOML file at path, and the
// process environment, in that order of precedence (environment wins).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v, ok := os.LookupEnv("USE_MOCK"); ok {
		cfg.UseMock = parseBool(v)
	}
	if v, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
		cfg.OpenAIAPIKey = v
	}
	if v, ok := os.LookupEnv("OPENAI_BASE_URL"); ok {
		cfg.OpenAIBaseURL = v
	}
	if v, ok := os.LookupEnv("OPENAI_SUMMARY_MODEL"); ok && v != "" {
		cfg.SummaryModel = v
	}
	if v, ok := os.LookupEnv("OPENAI_WHISPER_MODEL"); ok && v != "" {
		cfg.WhisperModel = v
	}
	if v, ok := os.LookupEnv("DEV_ALLOW_ALL_CORS"); ok {
		cfg.AllowAllCORS = parseBool(v)
	}
	if v, ok := os.LookupEnv("LISTEN_ADDR"); ok && v != "" {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv("TEMP_DIR"); ok && v != "" {
		cfg.TempDir = v
	}
	if v, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		cfg.OTLPEndpoint = v
	}
	if v, ok := os.LookupEnv("MAX_UPLOAD_MB"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_MB %q: %w", v, err)
		}
		cfg.MaxUploadMB = n
	}
	return nil
}

// Validate reports configuration that the process cannot start with.
func (cfg *Config) Validate() error {
	if !cfg.UseMock && cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set in environment. Set USE_MOCK=true to run without external APIs")
	}
	if cfg.MaxUploadMB <= 0 || cfg.MaxUploadMB > MaxUploadMBLimit {
		return fmt.Errorf("max upload size must be between 1 and %d MB, got %d MB", MaxUploadMBLimit, cfg.MaxUploadMB)
	}
	return nil
}

// MaxUploadBytes is the request body limit derived from MaxUploadMB.
func (cfg *Config) MaxUploadBytes() int {
	return cfg.MaxUploadMB * 1024 * 1024
}

// Only the literal "true" (any case) enables a flag.
func parseBool(v string) bool {
	return strings.ToLower(strings.TrimSpace(v)) == "true"
}
