package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/marcelsud/hookdash/auth"
	"github.com/marcelsud/hookdash/config"
	"github.com/marcelsud/hookdash/forwarding"
	forwardingpg "github.com/marcelsud/hookdash/forwarding/postgres"
	"github.com/marcelsud/hookdash/internal/http/chi"
	"github.com/marcelsud/hookdash/internal/postgres"
	"github.com/marcelsud/hookdash/metrics"
	"github.com/marcelsud/hookdash/webhook"
	webhookpg "github.com/marcelsud/hookdash/webhook/postgres"
	"github.com/spf13/cobra"
)

/* hookdash-cli - operator commands against the same database as the api
 *   migrate                          apply the embedded schema
 *   token --user ID [--plan pro]     sign a session token for local development
 *   replay ENDPOINT_ID REQUEST_ID    forward a stored request once
 *   stats                            print a metrics snapshot as JSON
 */

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hookdash-cli",
		Short:         "Operator commands for HookDash",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		cmdMigrate(),
		cmdToken(),
		cmdReplay(),
		cmdStats(),
	)
	return cmd
}

func loadConfig() (config.Config, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	return postgres.Open(ctx, cfg.DatabaseURL, cfg.PostgresMaxOpenConns, cfg.PostgresMaxIdleConns, cfg.PostgresConnMaxLifeMinutes)
}

func cmdMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Println("Schema applied")
			return nil
		},
	}
}

func cmdToken() *cobra.Command {
	var userID, plan string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a session token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}
			if ttl == 0 {
				ttl = time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute
			}
			token, err := auth.IssueToken(cfg.SecretKey, auth.Principal{ID: userID, Plan: plan}, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id placed in the sub claim")
	cmd.Flags().StringVar(&plan, "plan", auth.PlanFree, "plan name (free, pro, team)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to ACCESS_TOKEN_EXPIRE_MINUTES)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func cmdReplay() *cobra.Command {
	return &cobra.Command{
		Use:   "replay ENDPOINT_ID REQUEST_ID",
		Short: "Forward a stored request once to the endpoint's target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			requests := webhook.NewService(webhookpg.NewRepository(db), nil)
			req, err := requests.Get(ctx, args[1], args[0])
			if err != nil {
				return err
			}

			repo := forwardingpg.NewRepository(db)
			engine := forwarding.NewEngine(repo, chi.NewLogger("hookdash-cli", false))
			s := forwarding.NewService(repo, engine)
			c, err := s.Get(ctx, args[0])
			if err != nil {
				return err
			}
			l, err := s.Replay(ctx, c, req)
			if err != nil {
				return err
			}

			if l.Success {
				fmt.Printf("Delivered to %s (HTTP %d) in %dms\n", c.TargetURL, *l.StatusCode, *l.ResponseTimeMs)
				return nil
			}
			fmt.Printf("Failed to deliver to %s: %s\n", c.TargetURL, l.ErrorMessage)
			return nil
		},
	}
}

func cmdStats() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print a metrics snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			m, err := metrics.NewPostgresCollector(db).Collect(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}
}
