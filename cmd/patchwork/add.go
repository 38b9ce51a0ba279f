package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/patchwork-ui/patchwork/internal/installer"
	"github.com/patchwork-ui/patchwork/internal/project"
	"github.com/patchwork-ui/patchwork/internal/registry"
	"github.com/patchwork-ui/patchwork/internal/ui"
	"github.com/patchwork-ui/patchwork/internal/ui/components"
)

type addOptions struct {
	all bool
}

func newAddCmd(env *cliEnv) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add [component...]",
		Short: "Copy components into your project",
		Long: "Copies the named components and everything they require into your\n" +
			"project's components directory. With no arguments an interactive picker\n" +
			"opens. Required npm packages are reported but never installed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, env, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "Install every component in the registry")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string, env *cliEnv, opts *addOptions) error {
	proj, err := project.Detect(env.flags.dir)
	if err != nil {
		if errors.Is(err, project.ErrNoPackageManifest) {
			return newCommandError("add", "detecting project", err, "Run patchwork from your app's root directory, next to package.json.")
		}
		return newCommandError("add", "detecting project", err, "Fix the reported file and try again.")
	}

	reg, err := openRegistry(cmd.Context(), registryURL(env.flags, proj), env.log)
	if err != nil {
		return newCommandError("add", "loading registry", err, "Check the registry URL and your network connection.")
	}

	keys := args
	switch {
	case opts.all:
		keys = reg.Keys()
	case len(keys) == 0:
		keys, err = pickComponents(cmd, reg)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No components selected.")
			return nil
		}
	}

	language := "JavaScript"
	if proj.TypeScript {
		language = "TypeScript"
	}
	if env.flags.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "→ Detected %s project at %s\n", language, proj.Root)
	}

	report, err := installer.New(reg, env.log).Install(proj, keys)
	if err != nil {
		return newCommandError("add", "installing components", err, "Run 'patchwork list' to see the available components.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %d component(s), %d file(s) (%s)\n",
		len(report.Components), len(report.Files), language)
	if env.flags.verbose {
		for _, f := range report.Files {
			fmt.Fprintf(cmd.ErrOrStderr(), "  wrote %s\n", f.Path)
		}
	}

	if len(report.NpmDependencies) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nThese components need npm packages that patchwork does not install:")
		fmt.Fprintf(cmd.OutOrStdout(), "  npm install %s\n", strings.Join(report.NpmDependencies, " "))
	}

	return nil
}

// pickComponents opens the interactive checklist. It refuses to run without a
// terminal so scripted invocations fail fast instead of hanging.
func pickComponents(cmd *cobra.Command, reg *registry.Registry) ([]string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, newCommandError("add", "selecting components", errors.New("no components specified and stdin is not a terminal"), "Pass component names as arguments, e.g. 'patchwork add button card'.")
	}

	items := make([]components.PickItem, 0, len(reg.List()))
	for _, c := range reg.List() {
		items = append(items, components.PickItem{Key: c.Key, Description: c.Description})
	}

	picker := components.NewMultiSelect("Select components to install", ui.DefaultTheme(), items)
	program := tea.NewProgram(picker, tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return nil, newCommandError("add", "running component picker", err, "Pass component names as arguments instead.")
	}
	if picker.Canceled() {
		return nil, nil
	}
	return picker.Selected(), nil
}
