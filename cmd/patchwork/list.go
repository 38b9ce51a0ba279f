package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/patchwork-ui/patchwork/internal/project"
	"github.com/patchwork-ui/patchwork/internal/registry"
	"github.com/patchwork-ui/patchwork/internal/transform"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(env *cliEnv) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, env, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, env *cliEnv, opts *listOptions) error {
	// Listing works outside a project too; installed markers just go blank.
	proj, err := project.Detect(env.flags.dir)
	if err != nil {
		proj = nil
	}

	reg, err := openRegistry(cmd.Context(), registryURL(env.flags, proj), env.log)
	if err != nil {
		return newCommandError("list", "loading registry", err, "Check the registry URL and your network connection.")
	}

	entries := make([]listEntry, 0, len(reg.List()))
	for _, c := range reg.List() {
		entries = append(entries, listEntry{
			Key:          c.Key,
			Name:         c.Name,
			Description:  c.Description,
			Dependencies: c.Dependencies,
			Requires:     c.Requires,
			Installed:    isInstalled(proj, c),
		})
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}

	return renderListTable(cmd, entries)
}

type listEntry struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Dependencies []string `json:"dependencies,omitempty"`
	Requires     []string `json:"requires,omitempty"`
	Installed    bool     `json:"installed"`
}

// isInstalled reports whether every file of the component already exists in
// the project, accounting for the JavaScript rename.
func isInstalled(proj *project.Project, c registry.Component) bool {
	if proj == nil || len(c.Files) == 0 {
		return false
	}
	for _, mapping := range c.Files {
		target := mapping.Target
		if !proj.TypeScript {
			target = transform.RenameExtension(target)
		}
		path := filepath.Join(proj.ComponentsDir(), filepath.FromSlash(target))
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

func renderListTable(cmd *cobra.Command, entries []listEntry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "KEY\tNAME\tINSTALLED\tDESCRIPTION")

	marker := "yes"
	if supportsUnicode(cmd.OutOrStdout()) {
		marker = "✓"
	}

	for _, e := range entries {
		installed := ""
		if e.Installed {
			installed = marker
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", e.Key, e.Name, installed, e.Description)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version    string      `json:"version"`
	Count      int         `json:"count"`
	Components []listEntry `json:"components"`
}

func renderListJSON(cmd *cobra.Command, entries []listEntry) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(entries),
		Components: entries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
