package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/taskdeck/internal/config"
	"github.com/mrz1836/taskdeck/internal/tui"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect taskdeck configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	root.AddCommand(cmd)
}

func newConfigShowCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective taskdeck configuration with source annotations.

Each value is annotated with where it comes from:
  - default: Built-in default value
  - global: From ~/.taskdeck/config.yaml
  - project: From .taskdeck/config.yaml
  - env: From a TASKDECK_* environment variable

Examples:
  taskdeck config show             # Annotated listing
  taskdeck config show -o json     # Values and sources as JSON
  taskdeck config show --yaml      # Plain YAML, ready to save as a config file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd, cmd.OutOrStdout(), asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print plain YAML without annotations")

	return cmd
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from global config.
	SourceGlobal ConfigSource = "global"
	// SourceProject indicates the value came from project config.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
)

// ConfigValueWithSource represents a configuration value with its source.
type ConfigValueWithSource struct {
	Key    string       `json:"key" yaml:"key"`
	Value  any          `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// ConfigSection is one top-level block of the configuration, in file order.
type ConfigSection struct {
	Name   string                  `json:"name" yaml:"name"`
	Values []ConfigValueWithSource `json:"values" yaml:"values"`
}

// configLayers holds the raw documents of each config file, for source lookup.
type configLayers struct {
	global  map[string]any
	project map[string]any
}

func runConfigShow(ctx context.Context, cmd *cobra.Command, w io.Writer, asYAML bool) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	outputFormat := getOutputFormat(cmd)
	tui.CheckNoColor()

	cfg, err := config.Load(ctx)
	if err != nil {
		return outputCommandError(w, outputFormat, "config show", fmt.Errorf("failed to load configuration: %w", err))
	}

	layers := configLayers{
		global:  loadConfigLayer(globalConfigPath()),
		project: loadConfigLayer(config.ProjectConfigPath()),
	}
	sections := buildAnnotatedConfig(cfg, layers)

	switch {
	case asYAML:
		return outputConfigYAML(w, sections)
	case outputFormat == OutputJSON:
		return tui.NewOutput(w, outputFormat).JSON(sections)
	default:
		outputConfigText(w, sections)
		return nil
	}
}

// buildAnnotatedConfig lists every setting with its effective value and source.
func buildAnnotatedConfig(cfg *config.Config, layers configLayers) []ConfigSection {
	entry := func(key string, value any) ConfigValueWithSource {
		return ConfigValueWithSource{Key: key, Value: value, Source: layers.sourceOf(key)}
	}

	return []ConfigSection{
		{Name: "session", Values: []ConfigValueWithSource{
			entry("session.login_delay", cfg.Session.LoginDelay.String()),
			entry("session.default_user", cfg.Session.DefaultUser),
		}},
		{Name: "seed", Values: []ConfigValueWithSource{
			entry("seed.file", cfg.Seed.File),
		}},
		{Name: "ui", Values: []ConfigValueWithSource{
			entry("ui.default_view", cfg.UI.DefaultView),
			entry("ui.bell_on_complete", cfg.UI.BellOnComplete),
			entry("ui.refresh_interval", cfg.UI.RefreshInterval.String()),
		}},
	}
}

// sourceOf reports which layer supplies key. Precedence: env, project,
// global, default.
func (l configLayers) sourceOf(key string) ConfigSource {
	envKey := "TASKDECK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if os.Getenv(envKey) != "" {
		return SourceEnv
	}
	if hasKey(l.project, key) {
		return SourceProject
	}
	if hasKey(l.global, key) {
		return SourceGlobal
	}
	return SourceDefault
}

// hasKey reports whether the dotted key is present in a decoded YAML document.
func hasKey(doc map[string]any, key string) bool {
	parts := strings.Split(key, ".")
	var node any = doc
	for _, part := range parts {
		m, ok := node.(map[string]any)
		if !ok {
			return false
		}
		if node, ok = m[part]; !ok {
			return false
		}
	}
	return true
}

// globalConfigPath returns the global config path, or "" when the home
// directory is unknown.
func globalConfigPath() string {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return ""
	}
	return path
}

// loadConfigLayer decodes a config file for source lookup. Missing or
// unreadable files yield nil; config.Load has already reported real errors.
func loadConfigLayer(path string) map[string]any {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // config file path
	if err != nil {
		return nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc
}

// outputConfigYAML prints the effective values as a plain config file.
func outputConfigYAML(w io.Writer, sections []ConfigSection) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range sections {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, v := range s.Values {
			var val yaml.Node
			if err := val.Encode(v.Value); err != nil {
				return fmt.Errorf("failed to encode %s: %w", v.Key, err)
			}
			name := v.Key[strings.LastIndex(v.Key, ".")+1:]
			body.Content = append(body.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, &val)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: s.Name}, body)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// configShowStyles contains styling for the config show command output.
type configShowStyles struct {
	header  lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	dim     lipgloss.Style
	sources map[ConfigSource]lipgloss.Style
}

func newConfigShowStyles() *configShowStyles {
	return &configShowStyles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(tui.ColorPrimary),
		section: lipgloss.NewStyle().Bold(true),
		key:     lipgloss.NewStyle().Foreground(tui.ColorPrimary),
		dim:     lipgloss.NewStyle().Foreground(tui.ColorMuted),
		sources: map[ConfigSource]lipgloss.Style{
			SourceEnv:     lipgloss.NewStyle().Foreground(tui.ColorError),
			SourceProject: lipgloss.NewStyle().Foreground(tui.ColorWarning),
			SourceGlobal:  lipgloss.NewStyle().Foreground(tui.ColorSuccess),
			SourceDefault: lipgloss.NewStyle().Foreground(tui.ColorMuted),
		},
	}
}

// outputConfigText prints the annotated configuration for a terminal.
func outputConfigText(w io.Writer, sections []ConfigSection) {
	styles := newConfigShowStyles()

	_, _ = fmt.Fprintln(w, styles.header.Render("Effective taskdeck configuration"))
	_, _ = fmt.Fprintln(w, styles.dim.Render(strings.Repeat("─", 50)))
	_, _ = fmt.Fprintln(w, styles.dim.Render("Sources: ")+
		styles.sources[SourceEnv].Render("env")+" > "+
		styles.sources[SourceProject].Render("project")+" > "+
		styles.sources[SourceGlobal].Render("global")+" > "+
		styles.sources[SourceDefault].Render("default"))
	_, _ = fmt.Fprintln(w)

	for _, s := range sections {
		_, _ = fmt.Fprintln(w, styles.section.Render(s.Name+":"))
		for _, v := range s.Values {
			name := v.Key[strings.LastIndex(v.Key, ".")+1:]
			_, _ = fmt.Fprintf(w, "  %s: %s  %s\n",
				styles.key.Render(name),
				formatConfigValue(v.Value),
				styles.sources[v.Source].Render("# "+string(v.Source)))
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, styles.dim.Render("Configuration files:"))
	if path := globalConfigPath(); path != "" {
		_, _ = fmt.Fprintln(w, styles.dim.Render("  Global:  ")+describeConfigFile(path))
	}
	_, _ = fmt.Fprintln(w, styles.dim.Render("  Project: ")+describeConfigFile(config.ProjectConfigPath()))
}

// describeConfigFile returns the absolute path, marked when the file is absent.
func describeConfigFile(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := os.Stat(path); err != nil {
		return abs + " (not found)"
	}
	return abs
}

// formatConfigValue converts a configuration value to a displayable string.
func formatConfigValue(value any) string {
	if s, ok := value.(string); ok {
		if s == "" {
			return "(not set)"
		}
		return s
	}
	return fmt.Sprintf("%v", value)
}
