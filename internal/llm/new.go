package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/smart-summarizer/internal/config"
	"github.com/nguyentantai21042004/smart-summarizer/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      logger.Logger
}

type implGemini struct {
	apiKeys     []string
	currentKey  int
	baseURL     string
	model       string
	temperature float32
	logger      logger.Logger
}

// New returns the Completer selected by llm.provider.
func New(cfg *config.Config, log logger.Logger) (Completer, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI, "":
		return NewOpenAI(cfg, log), nil
	case config.ProviderGemini:
		if len(cfg.Gemini.APIKeys) == 0 {
			return nil, fmt.Errorf("gemini provider needs at least one API key")
		}
		return NewGemini(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

func NewOpenAI(cfg *config.Config, log logger.Logger) Completer {
	clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}

	return &implOpenAI{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.OpenAI.ChatModel,
		temperature: cfg.LLM.Temperature,
		logger:      log,
	}
}

// NewGemini creates a Completer that rotates through the supplied Gemini API keys.
func NewGemini(cfg *config.Config, log logger.Logger) Completer {
	return &implGemini{
		apiKeys:     cfg.Gemini.APIKeys,
		baseURL:     cfg.Gemini.BaseURL,
		model:       cfg.Gemini.Model,
		temperature: cfg.LLM.Temperature,
		logger:      log,
	}
}
