// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"reflect"
	"sync"
	"testing"
)

// mockProvider is a test double implementing the Provider interface.
// It records calls and returns configurable responses.
type mockProvider struct {
	name       string
	response   string
	err        error
	callCount  int
	lastSystem string
	lastUser   string
	mu         sync.Mutex
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	return m.response, m.err
}

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func TestNewRegistry(t *testing.T) {
	configs := map[string]ProviderConfig{
		"gemini":  {APIKey: "g"},
		"openai":  {APIKey: "o"},
		"claude":  {},
		"mistral": {APIKey: "m"},
	}

	t.Run("keeps priority order and skips missing keys", func(t *testing.T) {
		reg, err := NewRegistry(context.Background(), []string{"openai", "claude", "gemini"}, configs)
		if err != nil {
			t.Fatalf("NewRegistry: %v", err)
		}
		if got, want := reg.Available(), []string{"openai", "gemini"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Available: got %v, want %v", got, want)
		}
		chain := reg.Chain()
		if len(chain) != 2 || chain[0].Name() != "openai" || chain[1].Name() != "gemini" {
			t.Errorf("Chain: got %d providers", len(chain))
		}
	})

	t.Run("duplicate names count once", func(t *testing.T) {
		reg, err := NewRegistry(context.Background(), []string{"gemini", "gemini"}, configs)
		if err != nil {
			t.Fatalf("NewRegistry: %v", err)
		}
		if got := reg.Available(); len(got) != 1 {
			t.Errorf("Available: got %v", got)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, err := NewRegistry(context.Background(), []string{"gemini", "llama"}, configs); err == nil {
			t.Error("NewRegistry: expected error for unknown provider")
		}
	})

	t.Run("no keys", func(t *testing.T) {
		reg, err := NewRegistry(context.Background(), []string{"gemini", "openai"}, nil)
		if err != nil {
			t.Fatalf("NewRegistry: %v", err)
		}
		if len(reg.Chain()) != 0 {
			t.Errorf("Chain: want empty, got %d", len(reg.Chain()))
		}
	})
}

func TestRegistryRegister(t *testing.T) {
	reg, _ := NewRegistry(context.Background(), nil, nil)

	a := &mockProvider{name: "a"}
	b := &mockProvider{name: "b"}
	a2 := &mockProvider{name: "a2"}

	reg.Register("a", a)
	reg.Register("b", b)
	reg.Register("a", a2)

	if got, want := reg.Available(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Available: got %v, want %v", got, want)
	}
	if reg.Chain()[0] != Provider(a2) {
		t.Error("Register: replacement should keep position")
	}
}

func TestRegistryAvailableReturnsCopy(t *testing.T) {
	reg, _ := NewRegistry(context.Background(), nil, nil)
	reg.Register("a", &mockProvider{name: "a"})

	names := reg.Available()
	names[0] = "mutated"

	if reg.Available()[0] != "a" {
		t.Error("Available: caller mutation leaked into registry")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg, _ := NewRegistry(context.Background(), nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register(string(rune('a'+i)), &mockProvider{name: "x"})
		}(i)
		go func() {
			defer wg.Done()
			_ = reg.Chain()
			_ = reg.Available()
		}()
	}
	wg.Wait()

	if n := len(reg.Available()); n != 20 {
		t.Errorf("Available: got %d, want 20", n)
	}
}
