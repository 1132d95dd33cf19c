package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/vimreg/internal/register"
)

// persistedRegister is the JSON-serializable form of one register entry.
type persistedRegister struct {
	Name  string   `json:"name"`
	Mode  string   `json:"mode"`
	Text  string   `json:"text,omitempty"`
	Slots []string `json:"slots,omitempty"`
}

// persistedData is the root structure of the register file.
type persistedData struct {
	Version   int                 `json:"version"`
	SavedAt   time.Time           `json:"saved_at"`
	Registers []persistedRegister `json:"registers"`
}

const currentVersion = 1

// Save writes the store's registers to the specified file. The file is
// written atomically using a temporary file and rename.
func Save(store *register.Store, path string) error {
	entries := store.Entries()

	data := persistedData{
		Version:   currentVersion,
		SavedAt:   time.Now(),
		Registers: make([]persistedRegister, 0, len(entries)),
	}

	for name, e := range entries {
		pr, ok := toPersisted(name, e)
		if !ok {
			continue
		}
		data.Registers = append(data.Registers, pr)
	}
	sort.Slice(data.Registers, func(i, j int) bool {
		return data.Registers[i].Name < data.Registers[j].Name
	})

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registers: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads registers from the specified file into the store. A missing
// file is not an error; nothing is loaded.
func Load(ctx context.Context, store *register.Store, path string) error {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read register file: %w", err)
	}

	// Probe the version before committing to a full decode, so files from
	// newer releases fail with a clear error instead of field soup.
	if v := gjson.GetBytes(jsonData, "version"); v.Exists() && v.Int() > currentVersion {
		return fmt.Errorf("unsupported register file version: %d (max supported: %d)", v.Int(), currentVersion)
	}

	var data persistedData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal registers: %w", err)
	}

	for _, pr := range data.Registers {
		name, content, mode, ok := fromPersisted(pr)
		if !ok {
			continue
		}
		// Force allows restoring read-only registers like / and :.
		if err := store.Put(ctx, name, content, mode, register.PutOptions{Force: true}); err != nil {
			return fmt.Errorf("failed to restore register %c: %w", name, err)
		}
	}
	return nil
}

// LoadOrCreate loads registers from the specified file, creating an empty
// file if it doesn't exist.
func LoadOrCreate(ctx context.Context, store *register.Store, path string) error {
	if err := Load(ctx, store, path); err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Save(store, path)
	}
	return nil
}

// DefaultPath returns the default location of the register file:
// ~/.config/vimreg/registers.json on Unix-like systems.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "vimreg", "registers.json"), nil
}

// toPersisted converts an entry to its file form. Clipboard registers,
// recordings and empty entries are skipped.
func toPersisted(name rune, e register.Entry) (persistedRegister, bool) {
	if register.IsClipboardName(name) || name == register.BlackHole {
		return persistedRegister{}, false
	}
	pr := persistedRegister{Name: string(name), Mode: e.Mode.String()}
	switch c := e.Content.(type) {
	case register.Text:
		if c == "" {
			return persistedRegister{}, false
		}
		pr.Text = string(c)
	case register.MultiText:
		if len(c) == 0 {
			return persistedRegister{}, false
		}
		pr.Slots = []string(c)
	default:
		return persistedRegister{}, false
	}
	return pr, true
}

// fromPersisted converts a file entry back. Entries with unknown names or
// modes are skipped rather than failing the whole load.
func fromPersisted(pr persistedRegister) (rune, register.Content, register.Mode, bool) {
	runes := []rune(pr.Name)
	if len(runes) != 1 || !register.IsValidName(runes[0]) {
		return 0, nil, 0, false
	}
	name := runes[0]
	if register.IsClipboardName(name) {
		return 0, nil, 0, false
	}

	mode, ok := parseMode(pr.Mode)
	if !ok {
		return 0, nil, 0, false
	}

	var content register.Content
	switch {
	case len(pr.Slots) > 0:
		content = register.MultiText(pr.Slots)
	case pr.Text != "":
		content = register.Text(pr.Text)
	default:
		return 0, nil, 0, false
	}
	return name, content, mode, true
}

func parseMode(s string) (register.Mode, bool) {
	switch s {
	case register.ModeAscertain.String():
		return register.ModeAscertain, true
	case register.ModeCharacterWise.String():
		return register.ModeCharacterWise, true
	case register.ModeLineWise.String():
		return register.ModeLineWise, true
	case register.ModeBlockWise.String():
		return register.ModeBlockWise, true
	default:
		return 0, false
	}
}
