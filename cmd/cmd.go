package cmd

import (
	"fmt"

	"github.com/fioncat/batify/pkg/config"
	"github.com/spf13/cobra"
)

type Options interface {
	Complete(c *cobra.Command, args []string, cfg *config.Config) error
	Run(c *cobra.Command) error
}

// Build wires opts into c. Config is loaded before Complete so that opts can
// fall back to config values for flags that were not set.
func Build(c *cobra.Command, opts Options) *cobra.Command {
	var configDir string

	c.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}

		err = opts.Complete(cmd, args, cfg)
		if err != nil {
			return fmt.Errorf("validate command args: %w", err)
		}

		return opts.Run(cmd)
	}

	c.Flags().StringVarP(&configDir, "config", "", "", fmt.Sprintf("the config directory, default is $%s or ~/.config/batify", config.EnvName))
	_ = c.MarkFlagDirname("config")

	return c
}
