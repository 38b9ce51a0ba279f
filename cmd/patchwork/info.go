package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/patchwork-ui/patchwork/internal/project"
)

func newInfoCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <component>",
		Short: "Show a component's documentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0], env)
		},
	}

	return cmd
}

func runInfo(cmd *cobra.Command, key string, env *cliEnv) error {
	proj, err := project.Detect(env.flags.dir)
	if err != nil {
		proj = nil
	}

	reg, err := openRegistry(cmd.Context(), registryURL(env.flags, proj), env.log)
	if err != nil {
		return newCommandError("info", "loading registry", err, "Check the registry URL and your network connection.")
	}

	c, err := reg.Get(key)
	if err != nil {
		return newCommandError("info", fmt.Sprintf("looking up component %q", key), err, "Run 'patchwork list' to see the available components.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", c.Name, c.Key)
	fmt.Fprintln(out, valueOrFallback(c.Description, "(no description)"))
	if len(c.Requires) > 0 {
		fmt.Fprintf(out, "Requires: %s\n", strings.Join(c.Requires, ", "))
	}
	if len(c.Dependencies) > 0 {
		fmt.Fprintf(out, "npm packages: %s\n", strings.Join(c.Dependencies, ", "))
	}

	doc, err := reg.Doc(key)
	if err != nil {
		return newCommandError("info", "reading documentation", err, "The registry may be missing its docs directory.")
	}
	if len(doc) == 0 {
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to raw markdown rather than failing the command.
		fmt.Fprintf(out, "\n%s", doc)
		return nil
	}

	rendered, err := renderer.Render(string(doc))
	if err != nil {
		fmt.Fprintf(out, "\n%s", doc)
		return nil
	}
	fmt.Fprint(out, rendered)

	return nil
}
