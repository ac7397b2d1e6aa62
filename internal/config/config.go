package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	LLM           LLMConfig           `yaml:"llm" toml:"llm"`
	OpenAI        OpenAIConfig        `yaml:"openai" toml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini" toml:"gemini"`
	Google        GoogleConfig        `yaml:"google" toml:"google"`
	Drive         DriveConfig         `yaml:"drive" toml:"drive"`
	Sheet         SheetConfig         `yaml:"sheet" toml:"sheet"`
	Audio         AudioConfig         `yaml:"audio" toml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription" toml:"transcription"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg" toml:"ffmpeg"`
	Website       WebsiteConfig       `yaml:"website" toml:"website"`
	Paths         PathsConfig         `yaml:"paths" toml:"paths"`
	Logging       LoggingConfig       `yaml:"logging" toml:"logging"`
}

type LLMConfig struct {
	Provider    string  `yaml:"provider" toml:"provider"`
	Temperature float32 `yaml:"temperature" toml:"temperature"`
}

type OpenAIConfig struct {
	APIKey       string `yaml:"api_key" toml:"api_key"`
	BaseURL      string `yaml:"base_url" toml:"base_url"`
	ChatModel    string `yaml:"chat_model" toml:"chat_model"`
	WhisperModel string `yaml:"whisper_model" toml:"whisper_model"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys" toml:"api_keys"`
	Model   string   `yaml:"model" toml:"model"`
	BaseURL string   `yaml:"base_url" toml:"base_url"`
}

type GoogleConfig struct {
	// ServiceAccountPath is the JSON key file used for both Sheets and Drive.
	ServiceAccountPath string `yaml:"service_account_path" toml:"service_account_path"`
}

type DriveConfig struct {
	APIKey              string `yaml:"api_key" toml:"api_key"`
	AudioFolderID       string `yaml:"audio_folder_id" toml:"audio_folder_id"`
	AudioParentFolderID string `yaml:"audio_parent_folder_id" toml:"audio_parent_folder_id"`
	WebsiteFolderID     string `yaml:"website_folder_id" toml:"website_folder_id"`
	ConvertWebsiteDoc   bool   `yaml:"convert_website_doc" toml:"convert_website_doc"`
}

type SheetConfig struct {
	ID  string `yaml:"id" toml:"id"`
	Tab string `yaml:"tab" toml:"tab"`
}

type AudioConfig struct {
	Extension        string `yaml:"extension" toml:"extension"`
	MaxBytes         int64  `yaml:"max_bytes" toml:"max_bytes"`
	CandidateMinutes []int  `yaml:"candidate_minutes" toml:"candidate_minutes"`
	FallbackSeconds  int    `yaml:"fallback_seconds" toml:"fallback_seconds"`
	DecrementSeconds int    `yaml:"decrement_seconds" toml:"decrement_seconds"`
	Bitrate          string `yaml:"bitrate" toml:"bitrate"`
}

type TranscriptionConfig struct {
	MaxConcurrent   int `yaml:"max_concurrent" toml:"max_concurrent"`
	RateLimitPerMin int `yaml:"rate_limit_per_min" toml:"rate_limit_per_min"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path" toml:"binary_path"`
	ProbePath  string `yaml:"probe_path" toml:"probe_path"`
}

type WebsiteConfig struct {
	TimeoutSec int    `yaml:"timeout_sec" toml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent" toml:"user_agent"`
}

type PathsConfig struct {
	Temp string `yaml:"temp" toml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Validate fills defaults and then checks required values.
func (c *Config) Validate() error {
	c.applyDefaults()

	if c.Sheet.ID == "" {
		return fmt.Errorf("sheet.id is required")
	}
	if c.Google.ServiceAccountPath == "" {
		return fmt.Errorf("google.service_account_path is required")
	}
	if c.Drive.AudioFolderID == "" {
		return fmt.Errorf("drive.audio_folder_id is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}

	switch c.LLM.Provider {
	case ProviderOpenAI:
	case ProviderGemini:
		if len(c.Gemini.APIKeys) == 0 {
			return fmt.Errorf("gemini.api_keys is required when llm.provider is gemini")
		}
	default:
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLM.Provider)
	}

	if c.Audio.MaxBytes <= 0 || c.Audio.FallbackSeconds <= 0 || c.Audio.DecrementSeconds <= 0 {
		return fmt.Errorf("audio sizing values must be positive")
	}
	for _, m := range c.Audio.CandidateMinutes {
		if m <= 0 {
			return fmt.Errorf("audio.candidate_minutes must be positive, got %d", m)
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}

	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4.1-2025-04-14"
	}
	if c.OpenAI.WhisperModel == "" {
		c.OpenAI.WhisperModel = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Drive.WebsiteFolderID == "" {
		c.Drive.WebsiteFolderID = c.Drive.AudioFolderID
	}

	if c.Audio.Extension == "" {
		c.Audio.Extension = ".m4a"
	}
	if c.Audio.MaxBytes == 0 {
		c.Audio.MaxBytes = 25 * 1024 * 1024
	}
	if len(c.Audio.CandidateMinutes) == 0 {
		c.Audio.CandidateMinutes = []int{15, 10, 5}
	}
	if c.Audio.FallbackSeconds == 0 {
		c.Audio.FallbackSeconds = 60
	}
	if c.Audio.DecrementSeconds == 0 {
		c.Audio.DecrementSeconds = 10
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = "128k"
	}

	if c.Transcription.MaxConcurrent == 0 {
		c.Transcription.MaxConcurrent = 1
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}

	if c.Website.TimeoutSec == 0 {
		c.Website.TimeoutSec = 30
	}
	if c.Website.UserAgent == "" {
		c.Website.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = filepath.Join(os.TempDir(), "smart-summarizer")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
