package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/polkiloo/printshop/internal/domain/model"
	pkgAuth "github.com/polkiloo/printshop/internal/pkg/auth"
	"github.com/polkiloo/printshop/internal/usecase"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage caller tokens",
	}

	var (
		id   int64
		role string
		ttl  time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a caller token for the admin API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.RequireAuthSecret(); err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.TokenTTL
			}

			auth := usecase.NewAuthUseCase(pkgAuth.NewJWTStrategy(cfg.AuthSecret, pkgAuth.Options{TTL: cfg.TokenTTL}))
			token, err := auth.IssueToken(model.Caller{ID: id, Role: model.Role(role)}, ttl)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().Int64Var(&id, "id", 0, "Caller identifier")
	issue.Flags().StringVar(&role, "role", string(model.RoleAdmin), "Caller role")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to TOKEN_TTL)")
	_ = issue.MarkFlagRequired("id")

	cmd.AddCommand(issue)
	return cmd
}
