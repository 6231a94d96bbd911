package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-service/internal/platform/database"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), flags, func(ctx context.Context, m *database.Migrator) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					if len(applied) == 0 {
						_, err = fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
						return err
					}
					for _, v := range applied {
						if _, err := fmt.Fprintf(cmd.OutOrStdout(), "applied %05d\n", v); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), flags, func(ctx context.Context, m *database.Migrator) error {
					v, err := m.Down(ctx)
					if err != nil {
						return err
					}
					if v == 0 {
						_, err = fmt.Fprintln(cmd.OutOrStdout(), "nothing to roll back")
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "rolled back %05d\n", v)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), flags, func(ctx context.Context, m *database.Migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					return printStatus(cmd.OutOrStdout(), statuses)
				})
			},
		},
	)
	return cmd
}

// withMigrator loads config, opens the database and runs fn with a Migrator.
func withMigrator(ctx context.Context, flags *rootFlags, fn func(context.Context, *database.Migrator) error) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	m, err := database.NewMigrator(db, cfg.Database.Driver)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()
	return fn(ctx, m)
}

func printStatus(w io.Writer, statuses []database.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, s := range statuses {
		state, at := "pending", "-"
		if s.Applied {
			state = "applied"
			at = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%05d\t%s\t%s\t%s\n", s.Version, state, at, s.Source)
	}
	return tw.Flush()
}
