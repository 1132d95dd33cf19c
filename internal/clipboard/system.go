package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// System is a Provider backed by the OS clipboard.
type System struct{}

// NewSystem creates a system clipboard provider.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a system clipboard is usable on this host.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Copy implements Provider.Copy.
func (s *System) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// Paste implements Provider.Paste.
func (s *System) Paste(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}
