package speech

import (
	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type implWhisper struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// New creates a Whisper-backed Transcriber.
func New(cfg *config.Config, log logger.Logger) Transcriber {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &implWhisper{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAI.WhisperModel,
		logger: log,
	}
}
