package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"packy/internal/action"
	"packy/internal/format"
	"packy/internal/store"
	"packy/internal/tui"
	"packy/internal/workspace"

	"github.com/spf13/cobra"
)

type App struct {
	File         string
	TemplatesDir string
	PrettyJSON   bool

	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{log: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))}

	cmd := &cobra.Command{
		Use:          "packy",
		Short:        "Packing-list manager (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start a new list and open the interactive TUI
  packy init --name "Lisbon" --departure 2026-07-01 --return 2026-07-05
  packy

  # Scriptable commands
  packy bags add "Cabin bag" --type carry-on
  packy items add "Socks" --category <cat-id> --qty-type dependent --qty-expr "d/2"
  packy status
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.File, "file", envOr("PACKY_FILE", ""), "Path to the list file (default: discovered packy.json)")
	cmd.PersistentFlags().StringVar(&app.TemplatesDir, "templates", envOr("PACKY_TEMPLATES", ""), "Templates directory (overrides .packy.yaml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newTripCmd(app))
	cmd.AddCommand(newBagsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newStagesCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newTemplatesCmd(app))

	return cmd
}

func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

func runTUI(app *App) error {
	ss, err := openSession(app, true)
	if err != nil {
		return err
	}
	return tui.Run(ss.store, ss.save)
}

// session binds a store to the workspace list file for one command: the
// file is loaded through import validation, actions run against the
// store, and save writes the export encoding back.
type session struct {
	app    *App
	path   string
	cfg    workspace.Config
	store  *store.Store
	loaded bool
}

func openSession(app *App, requireList bool) (*session, error) {
	path := strings.TrimSpace(app.File)
	if path == "" {
		p, err := workspace.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := workspace.LoadConfig(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if app.TemplatesDir != "" {
		cfg.TemplatesDir = app.TemplatesDir
	}
	if cfg.ListFile != "" && strings.TrimSpace(app.File) == "" {
		path = filepath.Join(filepath.Dir(path), cfg.ListFile)
	}

	ss := &session{app: app, path: path, cfg: cfg, store: store.New(app.log)}
	if _, err := os.Stat(path); err == nil {
		list, err := workspace.LoadList(path)
		if err != nil {
			return nil, err
		}
		action.LoadList(ss.store, list)
		ss.loaded = true
	} else if requireList {
		return nil, fmt.Errorf("no packing list at %s (run `packy init` first)", path)
	}
	return ss, nil
}

func (ss *session) save() error {
	st := ss.store.State()
	if st.List == nil {
		return errors.New("no document to save")
	}
	return workspace.SaveList(ss.path, st.List, ss.cfg.Pretty)
}

func (ss *session) templatesDir() string {
	if ss.cfg.TemplatesDir != "" {
		return ss.cfg.TemplatesDir
	}
	return filepath.Join(filepath.Dir(ss.path), "templates")
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
