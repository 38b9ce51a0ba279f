package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patchwork-ui/patchwork/internal/logger"
	"github.com/patchwork-ui/patchwork/internal/project"
	"github.com/patchwork-ui/patchwork/internal/registry"
)

type rootFlags struct {
	verbose     bool
	dir         string
	registryURL string
}

// cliEnv carries what every command needs. The logger is swapped for a debug
// one when --verbose is set, which is why commands read it through the env
// instead of capturing it.
type cliEnv struct {
	flags *rootFlags
	log   *logger.Logger
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}
	env := &cliEnv{flags: flags, log: log}

	long := "Patchwork is a copy-paste component distribution tool. Components are\n" +
		"copied into your project as plain source files you own and edit freely;\n" +
		"there is no runtime package to depend on."

	cmd := &cobra.Command{
		Use:           "patchwork",
		Short:         "Patchwork copies themed UI components into your project",
		Long:          long,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				return nil
			}
			debug, err := logger.New(logger.Options{Level: "debug", Pretty: true})
			if err != nil {
				return err
			}
			env.log = debug
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")
	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "d", ".", "Project directory to operate on")
	cmd.PersistentFlags().StringVar(&flags.registryURL, "registry", "", "Git URL of a component registry (defaults to the built-in registry)")

	cmd.AddCommand(newAddCmd(env))
	cmd.AddCommand(newListCmd(env))
	cmd.AddCommand(newInfoCmd(env))
	cmd.AddCommand(newInitCmd(env))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// registryURL picks the registry source: the --registry flag wins, then the
// project settings, then the built-in registry.
func registryURL(flags *rootFlags, proj *project.Project) string {
	if flags.registryURL != "" {
		return flags.registryURL
	}
	if proj != nil {
		return proj.Settings.Registry
	}
	return ""
}

func openRegistry(ctx context.Context, url string, log *logger.Logger) (*registry.Registry, error) {
	if url == "" {
		return registry.Builtin()
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	log.Debug("syncing remote registry", "url", url)
	return registry.OpenRemote(ctx, url, filepath.Join(cacheDir, "patchwork"))
}
