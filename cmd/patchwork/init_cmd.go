package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/patchwork-ui/patchwork/internal/assets"
	"github.com/patchwork-ui/patchwork/internal/installer"
	"github.com/patchwork-ui/patchwork/internal/project"
	"github.com/patchwork-ui/patchwork/internal/registry"
	"github.com/patchwork-ui/patchwork/internal/transform"
	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/components"
	"github.com/patchwork-ui/patchwork/pkg/diff"
)

const settingsTemplate = `# patchwork project settings
components_dir: components
language: auto
`

type initOptions struct {
	yes bool
}

func newInitCmd(env *cliEnv) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up patchwork in a project",
		Long: "Writes the theme configuration file and a patchwork.yaml settings file\n" +
			"into the project. An existing theme file is only overwritten after\n" +
			"showing the difference and asking for confirmation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, env, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite an existing theme file without asking")

	return cmd
}

func runInit(cmd *cobra.Command, env *cliEnv, opts *initOptions) error {
	proj, err := project.Detect(env.flags.dir)
	if err != nil {
		if errors.Is(err, project.ErrNoPackageManifest) {
			return newCommandError("init", "detecting project", err, "Run patchwork from your app's root directory, next to package.json.")
		}
		return newCommandError("init", "detecting project", err, "Fix the reported file and try again.")
	}

	template, err := assets.ReadFile(registry.ThemeTemplate)
	if err != nil {
		return newCommandError("init", "reading theme template", err, "Reinstall patchwork; the binary is missing its embedded assets.")
	}

	themePath, err := initTheme(cmd, proj, template, opts, env)
	if err != nil {
		return err
	}
	if themePath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", themePath)
	}

	settingsPath := filepath.Join(proj.Root, "patchwork.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := os.WriteFile(settingsPath, []byte(settingsTemplate), 0o644); err != nil {
			return newCommandError("init", "writing settings file", err, "Check directory permissions and try again.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", settingsPath)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'patchwork add' to install your first components.")
	return nil
}

// initTheme writes the theme file, prompting before overwriting an existing
// one that differs. It returns the written path, or "" when nothing changed.
func initTheme(cmd *cobra.Command, proj *project.Project, template []byte, opts *initOptions, env *cliEnv) (string, error) {
	incoming := template
	if !proj.TypeScript {
		incoming = transform.TSToJS(incoming)
	}

	themePath := installer.ThemePath(proj)
	current, err := os.ReadFile(themePath)
	switch {
	case os.IsNotExist(err):
		// First run, nothing to preserve.
	case err != nil:
		return "", newCommandError("init", "reading existing theme file", err, "Check file permissions and try again.")
	case bytes.Equal(current, incoming):
		fmt.Fprintln(cmd.OutOrStdout(), "Theme file already up to date.")
		return "", nil
	default:
		if !opts.yes {
			fmt.Fprint(cmd.OutOrStdout(), diff.Unified(current, incoming, themePath, "new theme"))
			ok, err := confirmOverwrite(cmd, themePath)
			if err != nil {
				return "", err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Keeping the existing theme file.")
				return "", nil
			}
		}
	}

	return installer.New(nil, env.log).WriteTheme(proj, template)
}

func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	prompt := components.NewConfirm(fmt.Sprintf("Overwrite %s?", path), ui.DefaultTheme())
	program := tea.NewProgram(prompt, tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return false, newCommandError("init", "confirming overwrite", err, "Re-run with --yes to overwrite without a prompt.")
	}
	return prompt.Accepted(), nil
}
