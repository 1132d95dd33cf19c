// Package main is the vimreg register inspector.
//
// It loads the persisted register file, prints a :registers style
// listing, and can run Lua snippets against the store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/vimreg/internal/clipboard"
	"github.com/dshills/vimreg/internal/config"
	"github.com/dshills/vimreg/internal/persist"
	"github.com/dshills/vimreg/internal/register"
	"github.com/dshills/vimreg/internal/scripting"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath   string
	registerFile string
	eval         string
	scriptFile   string
	watch        bool
}

func run() int {
	opts := parseFlags()
	ctx := context.Background()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	store := register.NewStore()
	if err := cfg.Apply(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if sys := clipboard.NewSystem(); sys.Available() {
		store.SetClipboard(sys)
	}

	path := opts.registerFile
	if path == "" {
		path = cfg.Persist.Path
	}
	if path == "" {
		path, err = persist.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if cfg.Persist.Enabled {
		if err := persist.Load(ctx, store, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if cfg.Scripting.Enabled && (opts.eval != "" || opts.scriptFile != "" || cfg.Scripting.InitFile != "") {
		if err := runScripts(store, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		// Scripts may have modified registers; write them back.
		if cfg.Persist.Enabled {
			if err := persist.Save(store, path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}
	}

	fmt.Print(listRegisters(store))

	if opts.watch {
		return watchRegisters(ctx, store, path)
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

func runScripts(store *register.Store, cfg config.Config, opts options) error {
	rt := scripting.NewRuntime(store)
	defer rt.Close()

	if cfg.Scripting.InitFile != "" {
		if err := rt.RunFile(cfg.Scripting.InitFile); err != nil {
			return fmt.Errorf("init script: %w", err)
		}
	}
	if opts.scriptFile != "" {
		if err := rt.RunFile(opts.scriptFile); err != nil {
			return fmt.Errorf("script %s: %w", opts.scriptFile, err)
		}
	}
	if opts.eval != "" {
		if err := rt.Run(opts.eval); err != nil {
			return fmt.Errorf("eval: %w", err)
		}
	}
	return nil
}

// watchRegisters reloads and re-lists the register file on every external
// change until interrupted.
func watchRegisters(ctx context.Context, store *register.Store, path string) int {
	w, err := persist.WatchFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	for {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return 0
			}
			if err := persist.Load(ctx, store, path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Print(listRegisters(store))
		case err, ok := <-w.Errors():
			if !ok {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

// listRegisters renders a :registers style listing: type, name, content.
func listRegisters(store *register.Store) string {
	entries := store.Entries()

	var b strings.Builder
	b.WriteString("--- Registers ---\n")
	for _, name := range listingOrder() {
		e, ok := entries[name]
		if !ok {
			continue
		}
		line, ok := formatEntry(name, e)
		if !ok {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// listingOrder is the display order: unnamed, numbered, small delete,
// named, then the remaining specials.
func listingOrder() []rune {
	order := []rune{register.Unnamed}
	for r := '0'; r <= '9'; r++ {
		order = append(order, r)
	}
	order = append(order, register.SmallDelete)
	for r := 'a'; r <= 'z'; r++ {
		order = append(order, r)
	}
	order = append(order,
		register.LastInserted,
		register.LastSearch,
		register.LastCommand,
		register.FileName,
		register.AlternateFile,
		register.ClipboardPrimary,
		register.ClipboardPlus,
	)
	return order
}

func formatEntry(name rune, e register.Entry) (string, bool) {
	var text string
	switch c := e.Content.(type) {
	case register.Text:
		if c == "" {
			return "", false
		}
		text = string(c)
	case register.MultiText:
		text = strings.Join(c, "\n")
	case register.Recording:
		return fmt.Sprintf("  q  \"%c   [%d key macro]", name, c.Handle.Len()), true
	default:
		return "", false
	}

	return fmt.Sprintf("  %s  \"%c   %s", typeLetter(e.Mode), name, escapeControl(text)), true
}

func typeLetter(m register.Mode) string {
	switch m {
	case register.ModeLineWise:
		return "l"
	case register.ModeBlockWise:
		return "b"
	default:
		return "c"
	}
}

// escapeControl folds newlines into ^J so each register stays on one line.
func escapeControl(s string) string {
	s = strings.ReplaceAll(s, "\n", "^J")
	return strings.ReplaceAll(s, "\t", "^I")
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.registerFile, "file", "", "Path to register file (overrides config)")
	flag.StringVar(&opts.eval, "e", "", "Lua snippet to run against the store")
	flag.StringVar(&opts.scriptFile, "script", "", "Lua file to run against the store")
	flag.BoolVar(&opts.watch, "watch", false, "Keep running and re-list on external changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vimreg - register store inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vimreg [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vimreg                          List persisted registers\n")
		fmt.Fprintf(os.Stderr, "  vimreg -e 'reg.set(\"a\",\"hi\")'   Write a register via Lua\n")
		fmt.Fprintf(os.Stderr, "  vimreg -watch                   Follow external changes\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vimreg %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
