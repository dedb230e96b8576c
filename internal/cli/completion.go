package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// shellType represents supported shell types.
type shellType string

// Sentinel errors for completion commands.
var (
	errUnsupportedShell = stderrors.New("unsupported shell (supported: zsh, bash, fish)")
	errNoShellDetected  = stderrors.New("could not detect shell from $SHELL environment variable; use --shell flag")
)

const (
	shellZsh     shellType = "zsh"
	shellBash    shellType = "bash"
	shellFish    shellType = "fish"
	shellUnknown shellType = "unknown"
)

// completionTarget describes where a shell looks for completion scripts
// and what, if anything, has to be added to its rc file.
type completionTarget struct {
	dir      []string
	file     string
	rc       []string
	generate func(root *cobra.Command, w io.Writer) error
	// rcLines returns the lines to append to the rc file given its current
	// content; nil means nothing is missing.
	rcLines func(rc, dir string) []string
}

// completionTargets maps each installable shell to its layout.
func completionTargets() map[shellType]completionTarget {
	return map[shellType]completionTarget{
		shellZsh: {
			dir:  []string{".zsh", "completions"},
			file: "_taskdeck",
			rc:   []string{".zshrc"},
			generate: func(root *cobra.Command, w io.Writer) error {
				return root.GenZshCompletion(w)
			},
			rcLines: func(rc, dir string) []string {
				var lines []string
				if !strings.Contains(rc, dir) {
					lines = append(lines, fmt.Sprintf("fpath=(%s $fpath)", dir))
				}
				if !strings.Contains(rc, "compinit") {
					lines = append(lines, "autoload -U compinit && compinit")
				}
				return lines
			},
		},
		shellBash: {
			dir:  []string{".bash_completion.d"},
			file: "taskdeck",
			rc:   []string{".bashrc"},
			generate: func(root *cobra.Command, w io.Writer) error {
				return root.GenBashCompletion(w)
			},
			rcLines: func(rc, dir string) []string {
				if strings.Contains(rc, ".bash_completion.d") {
					return nil
				}
				return []string{
					fmt.Sprintf("for f in %s/*; do", dir),
					`  [ -f "$f" ] && source "$f"`,
					"done",
				}
			},
		},
		shellFish: {
			// fish loads this directory on its own
			dir:  []string{".config", "fish", "completions"},
			file: "taskdeck.fish",
			rc:   []string{".config", "fish", "config.fish"},
			generate: func(root *cobra.Command, w io.Writer) error {
				return root.GenFishCompletion(w, true)
			},
		},
	}
}

// AddCompletionCommand replaces cobra's default completion command with one
// that can also install the script.
func AddCompletionCommand(rootCmd *cobra.Command) {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for taskdeck.

To install completions automatically:
  taskdeck completion install

To generate completion scripts manually:
  taskdeck completion bash
  taskdeck completion zsh
  taskdeck completion fish
  taskdeck completion powershell`,
	}

	for _, shell := range []shellType{shellBash, shellZsh, shellFish} {
		completionCmd.AddCommand(newShellCompletionCmd(shell))
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate powershell completion script",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(newInstallCompletionCmd())

	rootCmd.AddCommand(completionCmd)
}

func newShellCompletionCmd(shell shellType) *cobra.Command {
	target := completionTargets()[shell]
	return &cobra.Command{
		Use:   string(shell),
		Short: fmt.Sprintf("Generate %s completion script", shell),
		Long: fmt.Sprintf(`Generate %[1]s completion script for taskdeck.

To install completions permanently:
  taskdeck completion install --shell %[1]s`, shell),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return target.generate(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

func newInstallCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install shell completions automatically",
		Long: `Install shell completions for taskdeck.

The shell is detected from $SHELL unless --shell is given.

Supported shells: zsh, bash, fish

Examples:
  taskdeck completion install
  taskdeck completion install --shell zsh`,
		RunE: runCompletionInstall,
	}

	cmd.Flags().String("shell", "", "Shell to install completions for (zsh, bash, fish)")
	return cmd
}

// runCompletionInstall handles the completion install subcommand.
func runCompletionInstall(cmd *cobra.Command, _ []string) error {
	shellFlag, _ := cmd.Flags().GetString("shell")
	quiet := isQuiet(cmd)

	shell := detectShell()
	if shellFlag != "" {
		shell = shellType(shellFlag)
	}
	if shell == shellUnknown {
		return errNoShellDetected
	}
	if _, ok := completionTargets()[shell]; !ok {
		return fmt.Errorf("%s: %w", shell, errUnsupportedShell)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not determine home directory: %w", err)
	}

	path, rcUpdated, err := installCompletions(cmd.Root(), shell, home)
	if err != nil {
		return err
	}

	if !quiet {
		cmd.Printf("Installed %s completions\n", shell)
		cmd.Printf("  Created %s\n", path)
		if rcUpdated {
			cmd.Printf("  Updated %s\n", getShellRCFile(shell))
		}
		cmd.Printf("\nDone! Restart your shell or run: source %s\n", getShellRCFile(shell))
	}
	return nil
}

// detectShell detects the user's shell from the $SHELL environment variable.
func detectShell() shellType {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return shellUnknown
	}

	switch shell := shellType(filepath.Base(shellPath)); shell {
	case shellZsh, shellBash, shellFish:
		return shell
	default:
		return shellUnknown
	}
}

// getShellRCFile returns the path to the shell's rc file.
func getShellRCFile(shell shellType) string {
	target, ok := completionTargets()[shell]
	if !ok {
		return ""
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append([]string{home}, target.rc...)...)
}

// installCompletions writes the completion script for shell under home and
// appends whatever the rc file is missing. It reports the script path and
// whether the rc file changed.
func installCompletions(rootCmd *cobra.Command, shell shellType, home string) (string, bool, error) {
	target, ok := completionTargets()[shell]
	if !ok {
		return "", false, fmt.Errorf("%s: %w", shell, errUnsupportedShell)
	}

	dir := filepath.Join(append([]string{home}, target.dir...)...)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", false, fmt.Errorf("could not create %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := target.generate(rootCmd, &buf); err != nil {
		return "", false, fmt.Errorf("could not generate %s completions: %w", shell, err)
	}

	path := filepath.Join(dir, target.file)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", false, fmt.Errorf("could not write %s: %w", path, err)
	}

	if target.rcLines == nil {
		return path, false, nil
	}

	rcPath := filepath.Clean(filepath.Join(append([]string{home}, target.rc...)...))
	updated, err := appendRCLines(rcPath, dir, target.rcLines)
	if err != nil {
		return path, false, fmt.Errorf("could not update %s: %w", rcPath, err)
	}
	return path, updated, nil
}

// appendRCLines appends the lines missing from the rc file at rcPath.
func appendRCLines(rcPath, dir string, missing func(rc, dir string) []string) (bool, error) {
	content, err := os.ReadFile(rcPath) //nolint:gosec // rc path is built from the home directory
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	lines := missing(string(content), dir)
	if len(lines) == 0 {
		return false, nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // see above
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString("\n# taskdeck shell completions\n" + strings.Join(lines, "\n") + "\n"); err != nil {
		return false, err
	}
	return true, nil
}
