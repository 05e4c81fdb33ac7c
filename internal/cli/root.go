package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/jasktodo/internal/config"
	"github.com/jask/jasktodo/internal/tasks"
	"github.com/jask/jasktodo/internal/tui"
)

type rootOptions struct {
	configPath string
	filter     string
	logPath    string
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "jasktodo",
		Short: "A terminal to-do list",
		Long: `jasktodo is a single-session task list for the terminal.

Add tasks, tick them off, filter by All, Active or Completed, and delete
them. Nothing is saved when the program exits.`,
		Args:          cobra.NoArgs,
		RunE:          func(cmd *cobra.Command, _ []string) error { return runEditor(cmd, opts) },
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "initial filter: all, active or completed")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "write a debug log to this file")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// Execute runs the root command.
func Execute(version string) error {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (o *rootOptions) load() (config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

func (o *rootOptions) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.Path()
}

func runEditor(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opts.filter != "" {
		if _, err := tasks.ParseMode(opts.filter); err != nil {
			return fmt.Errorf("--filter: %w", err)
		}
		cfg.UI.DefaultFilter = opts.filter
	}
	if opts.logPath != "" {
		cfg.Log.Path = opts.logPath
	}

	closeLog, err := setupLogging(cfg.Log.Path)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Printf("start filter=%s", cfg.Filter())

	p := tea.NewProgram(tui.New(cfg, tasks.NewStore()),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Printf("exit")
	return nil
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty so nothing is written over the alt screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "jasktodo")
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return func() { _ = f.Close() }, nil
}
