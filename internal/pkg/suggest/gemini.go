package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// GeminiConfig holds configuration for the Gemini generateContent endpoint
type GeminiConfig struct {
	APIKey   string
	Endpoint string
	Model    string
	Timeout  time.Duration
}

// GeminiProvider calls the Gemini REST API to generate suggestion texts.
// Any failure (missing key, network, timeout, malformed response) degrades
// to the fixed fallback lines without retry.
type GeminiProvider struct {
	config GeminiConfig
	client *http.Client
	logger zerolog.Logger
}

// NewGeminiProvider creates a new GeminiProvider
func NewGeminiProvider(config GeminiConfig, logger zerolog.Logger) *GeminiProvider {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	return &GeminiProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// generateContent request/response shapes, reduced to the fields we use
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateVibeDescription produces a short editorial description for an activity
func (p *GeminiProvider) GenerateVibeDescription(ctx context.Context, title, category string) string {
	prompt := fmt.Sprintf(
		`Crie uma descrição "main character energy" curta para um evento exclusivo para mulheres chamado "%s" na categoria "%s". O tom deve ser editorial, cool e independente. Máximo 140 caracteres.`,
		title, category,
	)

	text, err := p.generate(ctx, prompt)
	if err != nil {
		p.logger.Warn().Err(err).
			Str("title", title).
			Str("category", category).
			Msg("Vibe description generation failed, using fallback")
		return FallbackVibeDescription
	}
	if text == "" {
		return DefaultVibeDescription
	}
	return text
}

// GenerateIcebreaker produces an opening line for an activity's group chat
func (p *GeminiProvider) GenerateIcebreaker(ctx context.Context, activityTitle string) string {
	prompt := fmt.Sprintf(
		`Crie uma primeira mensagem curta e cool para um chat de grupo de mulheres que vão ao evento: "%s". Use um tom chill, amigável e puxe um assunto. Em português. Máximo 100 caracteres.`,
		activityTitle,
	)

	text, err := p.generate(ctx, prompt)
	if err != nil || text == "" {
		if err != nil {
			p.logger.Warn().Err(err).
				Str("title", activityTitle).
				Msg("Icebreaker generation failed, using fallback")
		}
		return FallbackIcebreaker
	}
	return text
}

// generate issues a single generateContent call and extracts the first
// candidate's text. All error paths collapse into the returned error; callers
// decide the fallback.
func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	if p.config.APIKey == "" {
		return "", fmt.Errorf("api key not configured")
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		strings.TrimRight(p.config.Endpoint, "/"), p.config.Model, p.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call collaborator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("collaborator returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
