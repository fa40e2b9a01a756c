// Package main is the entry point for the tvim application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tvim/tvim/internal/api"
	"github.com/tvim/tvim/internal/auth"
	"github.com/tvim/tvim/internal/config"
	"github.com/tvim/tvim/internal/store"
	"github.com/tvim/tvim/internal/tui"
)

const version = "0.1.0"

const helpText = `tvim - vim-modal todo list for the terminal

USAGE:
    tvim [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --local         Skip the backend and use the local store only
    --log-file      Write diagnostics to a file

CONFIGURATION:
    Config file: ~/.config/tvim/config.yaml

    Without an API token tvim keeps your list in a local database.
    Add a token to sync with the backend; local items migrate to your
    account on the next start.

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        gg/G        Go to top/bottom

    Editing:
        i/a         Edit selected item
        o/O         New item below/above
        x/space     Toggle completed
        dd          Delete (press twice)
        yy / p      Yank / paste
        u / Ctrl+r  Undo / redo

    Modes:
        v           Visual mode
        :           Command mode (:add, :due, :set-due, :tag, :filter,
                    :sort-newest|oldest|due-earliest|due-latest|none)
        ?           Help
        q           Quit
`

const configTemplate = `# tvim configuration
# Location: ~/.config/tvim/config.yaml

api:
  # Backend sync is optional. Leave the token empty to keep your list
  # in a local database only.
  # base_url: "https://api.tvim.dev/v1"
  token: ""

ui:
  # Show completed items by default (toggle at runtime with
  # :toggle-completed).
  show_completed: false

log:
  # Uncomment to write diagnostics to a file.
  # file: ~/.config/tvim/tvim.log
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		localOnly   bool
		logFile     string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&localOnly, "local", false, "Use the local store only")
	flag.StringVar(&logFile, "log-file", "", "Write diagnostics to this file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tvim version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(localOnly, logFile)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	fmt.Println("tvim works locally out of the box; add an API token to sync.")
	return nil
}

func runApp(localOnly bool, logFile string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Token)
	sess := auth.Resolve(cfg, client, localOnly)

	localPath, err := cfg.LocalStorePath()
	if err != nil {
		return fmt.Errorf("failed to resolve local store path: %w", err)
	}
	local, err := store.OpenLocal(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer local.Close()

	remote := store.NewRemote(client)
	st := store.Select(sess, remote, local)

	// Once a session is authenticated, drain the local fallback into
	// the account.
	var migrateFrom store.Store
	if sess.Authenticated {
		migrateFrom = local
	}

	app := tui.NewApp(cfg, st, sess, migrateFrom)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// setupLogging routes zerolog to the configured file, or discards
// everything. Stderr is not an option while the TUI owns the
// terminal.
func setupLogging(cfg *config.Config) error {
	if cfg.Log.File == "" {
		log.Logger = zerolog.Nop()
		return nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return nil
}
