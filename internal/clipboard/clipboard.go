package clipboard

import (
	"context"
	"sync"
)

// Provider abstracts system clipboard access.
type Provider interface {
	// Copy sets the clipboard content.
	Copy(ctx context.Context, text string) error

	// Paste returns the current clipboard content.
	Paste(ctx context.Context) (string, error)
}

// Memory is an in-process Provider used by tests and headless hosts.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Copy implements Provider.Copy.
func (m *Memory) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Paste implements Provider.Paste.
func (m *Memory) Paste(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
