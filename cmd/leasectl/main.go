package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/config"
	"github.com/MrJamesThe3rd/leasedesk/internal/database"
)

var rootCmd = &cobra.Command{
	Use:           "leasectl",
	Short:         "Leasedesk operator tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func main() {
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.New(cfg.ConnectionString())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")

			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		id     string
		role   string
		branch int64
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			r, err := auth.ParseRole(role)
			if err != nil {
				return err
			}

			actor := auth.Actor{ID: uuid.New(), Role: r}

			if id != "" {
				if actor.ID, err = uuid.Parse(id); err != nil {
					return fmt.Errorf("invalid --id: %w", err)
				}
			}

			if branch != 0 {
				actor.BranchID = &branch
			}

			if ttl == 0 {
				ttl = cfg.Auth.TokenTTL
			}

			gw, err := auth.NewGateway(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
			if err != nil {
				return err
			}

			token, err := gw.Issue(actor, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "actor %s (%s)\n", actor.ID, actor.Role)
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "actor id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(auth.RoleClient), "client, assistant, manager, supervisor or owner")
	cmd.Flags().Int64Var(&branch, "branch", 0, "branch id (none when 0)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (JWT_TTL when 0)")

	return cmd
}
