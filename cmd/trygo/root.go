package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"trygo/internal/app"
	"trygo/internal/config"
	"trygo/internal/launch"
	"trygo/internal/shell"
	"trygo/internal/ui"
	"trygo/internal/workspace"
)

// NewRootCmd builds the CLI. With a positional argument the TUI is skipped
// and the argument is dispatched directly; without one the interactive
// selector runs on stderr and its result is dispatched the same way.
func NewRootCmd() *cobra.Command {
	var shallow bool

	cmd := &cobra.Command{
		Use:   "trygo [name-or-url]",
		Short: "🧪 A fast workspace launcher for your temporary experiments",
		Long: `trygo lists your experiment directories, lets you fuzzy-search, create,
delete or clone into them, and prints a shell command (cd or an editor
invocation) for the calling shell wrapper to eval. Run 'trygo setup <shell>'
once to install the wrapper.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, firstRun := config.Load()

			if err := os.MkdirAll(cfg.TriesPath, 0o755); err != nil {
				return fmt.Errorf("creating workspace root: %w", err)
			}

			if firstRun && len(args) == 0 {
				offerShellSetup()
			}

			var selection string
			var openEditor bool

			if len(args) == 1 {
				selection = args[0]
			} else {
				entries := workspace.Scan(cfg.TriesPath)
				m := app.New(cfg.TriesPath, entries, buildTheme(cfg.Colors), cfg.Editor)

				p := tea.NewProgram(m,
					tea.WithAltScreen(),
					tea.WithOutput(os.Stderr),
				)
				final, err := p.Run()
				if err != nil {
					return fmt.Errorf("running selector: %w", err)
				}

				sel, editor, ok := final.(app.Model).Result()
				if !ok {
					return nil // cancelled; print nothing
				}
				selection, openEditor = sel, editor
			}

			return dispatch(cfg, selection, openEditor, shallow)
		},
	}

	cmd.Flags().BoolVarP(&shallow, "shallow-clone", "s", false, "clone repositories with --depth 1")
	cmd.AddCommand(NewSetupCmd())
	return cmd
}

// dispatch interprets the selection: an existing directory is entered, a git
// URL is cloned, anything else becomes a fresh workspace. The single command
// line on stdout is the only stdout output of the whole process.
func dispatch(cfg config.Config, selection string, openEditor, shallow bool) error {
	target := filepath.Join(cfg.TriesPath, selection)

	if _, err := os.Stat(target); err == nil {
		fmt.Println(launch.Command(target, cfg.Editor, openEditor))
		return nil
	}

	if launch.IsGitURL(selection) {
		name := launch.RepoName(selection)
		dest := filepath.Join(cfg.TriesPath, name)
		fmt.Fprintf(os.Stderr, "Cloning %s into %s...\n", selection, name)
		if err := launch.Clone(selection, dest, shallow); err != nil {
			// No command on stdout: the shell wrapper does nothing.
			fmt.Fprintln(os.Stderr, "Error: failed to clone the repository.")
			return nil
		}
		fmt.Println(launch.Command(dest, cfg.Editor, openEditor))
		return nil
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}
	fmt.Println(launch.Command(target, cfg.Editor, openEditor))
	return nil
}

func buildTheme(c config.Colors) ui.Theme {
	t := ui.Default()
	t.Override("title", c.Title)
	t.Override("title_accent", c.TitleAccent)
	t.Override("search_box", c.SearchBox)
	t.Override("list_date", c.ListDate)
	t.Override("list_highlight_bg", c.HighlightBg)
	t.Override("list_highlight_fg", c.HighlightFg)
	t.Override("help_text", c.HelpText)
	t.Override("status_message", c.Status)
	t.Override("popup_bg", c.PopupBg)
	t.Override("popup_text", c.PopupText)
	return t
}

// offerShellSetup runs once, on first run: detect the shell and offer to
// install the wrapper. Everything goes through stderr so stdout stays clean.
func offerShellSetup() {
	sh, ok := shell.Detect()
	if !ok {
		return
	}
	fmt.Fprintf(os.Stderr, "Detected shell: %s\n", sh)
	fmt.Fprintf(os.Stderr, "Shell integration not configured. Do you want to set it up for %s? [Y/n] ", sh)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return
	}
	answer := strings.TrimSpace(line)
	if answer == "" || strings.EqualFold(answer, "y") {
		if err := shell.Setup(sh); err != nil {
			fmt.Fprintf(os.Stderr, "Shell setup failed: %v\n", err)
		}
	}
}
