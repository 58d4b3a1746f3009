// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned by a provider that was built without an
// API key. It is a configuration error: such a provider is never placed in
// a generation chain.
var ErrMissingCredential = errors.New("ai: missing API key")

// ProviderError reports a failed provider call: a transport or API error,
// or a response that could not be parsed.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
