package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		OpenAI: OpenAIConfig{APIKey: "sk-test"},
		Google: GoogleConfig{ServiceAccountPath: "sa.json"},
		Drive:  DriveConfig{AudioFolderID: "dest"},
		Sheet:  SheetConfig{ID: "sheet"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing sheet id",
			mutate:  func(c *Config) { c.Sheet.ID = "" },
			wantErr: true,
		},
		{
			name:    "missing service account",
			mutate:  func(c *Config) { c.Google.ServiceAccountPath = "" },
			wantErr: true,
		},
		{
			name:    "missing audio destination",
			mutate:  func(c *Config) { c.Drive.AudioFolderID = "" },
			wantErr: true,
		},
		{
			name:    "missing openai key",
			mutate:  func(c *Config) { c.OpenAI.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "gemini without keys",
			mutate:  func(c *Config) { c.LLM.Provider = ProviderGemini },
			wantErr: true,
		},
		{
			name: "gemini with keys",
			mutate: func(c *Config) {
				c.LLM.Provider = ProviderGemini
				c.Gemini.APIKeys = []string{"k1"}
			},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.LLM.Provider = "llama" },
			wantErr: true,
		},
		{
			name:    "zero candidate minutes",
			mutate:  func(c *Config) { c.Audio.CandidateMinutes = []int{0} },
			wantErr: true,
		},
		{
			name:    "negative candidate minutes",
			mutate:  func(c *Config) { c.Audio.CandidateMinutes = []int{10, -1} },
			wantErr: true,
		},
		{
			name:    "negative max bytes",
			mutate:  func(c *Config) { c.Audio.MaxBytes = -1 },
			wantErr: true,
		},
		{
			name:    "negative decrement",
			mutate:  func(c *Config) { c.Audio.DecrementSeconds = -10 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Audio.MaxBytes != 25*1024*1024 {
		t.Errorf("MaxBytes = %d, want %d", cfg.Audio.MaxBytes, 25*1024*1024)
	}
	if len(cfg.Audio.CandidateMinutes) != 3 || cfg.Audio.CandidateMinutes[0] != 15 {
		t.Errorf("CandidateMinutes = %v, want [15 10 5]", cfg.Audio.CandidateMinutes)
	}
	if cfg.Audio.FallbackSeconds != 60 || cfg.Audio.DecrementSeconds != 10 {
		t.Errorf("fallback = %d/%d, want 60/10", cfg.Audio.FallbackSeconds, cfg.Audio.DecrementSeconds)
	}
	if cfg.Audio.Extension != ".m4a" {
		t.Errorf("Extension = %v, want .m4a", cfg.Audio.Extension)
	}
	if cfg.Drive.WebsiteFolderID != "dest" {
		t.Errorf("WebsiteFolderID = %v, want audio destination", cfg.Drive.WebsiteFolderID)
	}
	if cfg.LLM.Provider != ProviderOpenAI {
		t.Errorf("Provider = %v, want %v", cfg.LLM.Provider, ProviderOpenAI)
	}
	if cfg.Transcription.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %d, want 1", cfg.Transcription.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
openai:
  api_key: "sk-file"
  chat_model: "gpt-test"

google:
  service_account_path: "creds/sa.json"

drive:
  audio_folder_id: "AUDIO"
  audio_parent_folder_id: "PARENT"
  convert_website_doc: true

sheet:
  id: "SHEET"

audio:
  candidate_minutes: [20, 10]

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.ChatModel != "gpt-test" {
		t.Errorf("ChatModel = %v, want %v", cfg.OpenAI.ChatModel, "gpt-test")
	}
	if cfg.Drive.AudioParentFolderID != "PARENT" {
		t.Errorf("AudioParentFolderID = %v, want %v", cfg.Drive.AudioParentFolderID, "PARENT")
	}
	if !cfg.Drive.ConvertWebsiteDoc {
		t.Error("ConvertWebsiteDoc = false, want true")
	}
	if len(cfg.Audio.CandidateMinutes) != 2 || cfg.Audio.CandidateMinutes[0] != 20 {
		t.Errorf("CandidateMinutes = %v, want [20 10]", cfg.Audio.CandidateMinutes)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[sheet]
id = "SHEET"
tab = "Clients"

[transcription]
max_concurrent = 3
rate_limit_per_min = 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Sheet.Tab != "Clients" {
		t.Errorf("Tab = %v, want %v", cfg.Sheet.Tab, "Clients")
	}
	if cfg.Transcription.MaxConcurrent != 3 {
		t.Errorf("MaxConcurrent = %d, want 3", cfg.Transcription.MaxConcurrent)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"OPENAI_API_KEY":         "sk-env",
		"GOOGLE_DRIVE_FOLDER_ID": "AUDIO_ENV",
		"AUDIO_PARENT_FOLDER_ID": "PARENT_ENV",
		"GOOGLE_SHEET":           "SHEET_ENV",
		"GOOGLE_SERVICE_ACCOUNT": "sa-env.json",
		"GEMINI_API_KEYS":        "k1, k2,,",
		"LOG_LEVEL":              "  ",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := &Config{OpenAI: OpenAIConfig{APIKey: "sk-file"}, Logging: LoggingConfig{Level: "warn"}}
	cfg.ApplyEnv(lookup)

	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("APIKey = %v, want env value", cfg.OpenAI.APIKey)
	}
	if cfg.Drive.AudioFolderID != "AUDIO_ENV" || cfg.Drive.AudioParentFolderID != "PARENT_ENV" {
		t.Errorf("drive folders = %q/%q", cfg.Drive.AudioFolderID, cfg.Drive.AudioParentFolderID)
	}
	if cfg.Sheet.ID != "SHEET_ENV" || cfg.Google.ServiceAccountPath != "sa-env.json" {
		t.Errorf("sheet = %q, service account = %q", cfg.Sheet.ID, cfg.Google.ServiceAccountPath)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "k2" {
		t.Errorf("Gemini keys = %v, want [k1 k2]", cfg.Gemini.APIKeys)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, blank env value must not override", cfg.Logging.Level)
	}
}
