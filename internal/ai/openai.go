// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"
)

// chatProvider speaks the OpenAI chat completions protocol
// (POST <base>/chat/completions). OpenAI and Mistral both use it.
type chatProvider struct {
	name   string
	model  string
	apiKey string
	api    *restClient
}

func newChatProvider(name, defaultBaseURL, defaultModel string, cfg ProviderConfig) *chatProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+cfg.APIKey)

	return &chatProvider{
		name:   name,
		model:  model,
		apiKey: cfg.APIKey,
		api:    newRESTClient(name, baseURL, header),
	}
}

func newOpenAI(cfg ProviderConfig) *chatProvider {
	return newChatProvider(OpenAI, "https://api.openai.com/v1", "gpt-4o", cfg)
}

func (p *chatProvider) Name() string { return p.name }

// Generate returns the assistant's reply as free text.
func (p *chatProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return p.complete(ctx, systemPrompt, userPrompt, nil)
}

// GenerateJSON asks the API for a JSON object reply.
func (p *chatProvider) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return p.complete(ctx, systemPrompt, userPrompt, &chatResponseFormat{Type: "json_object"})
}

func (p *chatProvider) complete(ctx context.Context, systemPrompt, userPrompt string, format *chatResponseFormat) (string, error) {
	if p.apiKey == "" {
		return "", ErrMissingCredential
	}

	var reply chatReply
	err := p.api.post(ctx, "/chat/completions", chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: format,
	}, &reply)
	if err != nil {
		return "", err
	}

	if len(reply.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices returned", p.name)
	}
	return reply.Choices[0].Message.Content, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatReply struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
