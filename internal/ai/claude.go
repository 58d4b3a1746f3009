// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"
)

const (
	claudeDefaultBaseURL = "https://api.anthropic.com"
	claudeDefaultModel   = "claude-sonnet-4-5"
	claudeAPIVersion     = "2023-06-01"

	// Generated pages easily exceed the 4k default of smaller models.
	claudeMaxTokens = 8192
)

// claudeProvider talks to the Anthropic Messages API. Replies are freeform
// text, so callers extract JSON from them.
type claudeProvider struct {
	model  string
	apiKey string
	api    *restClient
}

func newClaude(cfg ProviderConfig) *claudeProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = claudeDefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = claudeDefaultModel
	}
	header := http.Header{}
	header.Set("x-api-key", cfg.APIKey)
	header.Set("anthropic-version", claudeAPIVersion)

	return &claudeProvider{
		model:  model,
		apiKey: cfg.APIKey,
		api:    newRESTClient(Claude, baseURL, header),
	}
}

func (p *claudeProvider) Name() string { return Claude }

func (p *claudeProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.apiKey == "" {
		return "", ErrMissingCredential
	}

	var reply claudeReply
	err := p.api.post(ctx, "/v1/messages", claudeMessages{
		Model:     p.model,
		MaxTokens: claudeMaxTokens,
		System:    systemPrompt,
		Messages:  []chatMessage{{Role: "user", Content: userPrompt}},
	}, &reply)
	if err != nil {
		return "", err
	}

	for _, block := range reply.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("claude: no text content in response")
}

type claudeMessages struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type claudeReply struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}
