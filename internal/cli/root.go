package cli

import (
	"github.com/spf13/cobra"

	"github.com/polkiloo/printshop/internal/config"
)

// NewRootCommand builds the printshopctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "printshopctl",
		Short:         "Operator tooling for the print shop order service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("database", "d", "", "PostgreSQL DSN (defaults to DATABASE_URI)")
	root.PersistentFlags().String("auth-secret", "", "Secret for signing caller tokens (defaults to AUTH_SECRET)")

	root.AddCommand(newMigrateCommand(), newTokenCommand(), newVersionCommand())
	return root
}

// loadConfig reads configuration the same way the service does, letting
// explicitly set flags win over the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var args []string
	if f := cmd.Flags().Lookup("database"); f != nil && f.Changed {
		args = append(args, "-d", f.Value.String())
	}
	if f := cmd.Flags().Lookup("auth-secret"); f != nil && f.Changed {
		args = append(args, "--auth-secret", f.Value.String())
	}
	return config.Parse(args)
}
