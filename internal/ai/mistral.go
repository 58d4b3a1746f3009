// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

// newMistral creates a Mistral provider. Mistral's chat completions API is
// OpenAI-compatible, JSON mode included.
func newMistral(cfg ProviderConfig) *chatProvider {
	return newChatProvider(Mistral, "https://api.mistral.ai/v1", "mistral-large-latest", cfg)
}
