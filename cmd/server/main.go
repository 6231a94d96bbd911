// Package main is the entry point for the todo service. The serve command
// wires all dependencies using samber/do v2, starts the HTTP server, and
// handles graceful shutdown on SIGINT/SIGTERM. The migrate command manages
// the database schema.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	profile   string
	configDir string
	envFile   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "todo-service",
		Short:         "Todo entry REST service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadEnvFile(flags.envFile)
		},
	}

	root.PersistentFlags().StringVar(&flags.profile, "profile", "",
		"configuration profile (local, dev, qa, prod); defaults to $APP_PROFILE")
	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env",
		"dotenv file loaded before configuration; ignored when missing")

	root.AddCommand(
		newServeCmd(flags),
		newMigrateCmd(flags),
		newVersionCmd(),
	)
	return root
}

// loadEnvFile loads path into the process environment. Variables already set
// win over the file. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadConfig resolves the profile from the flag or APP_PROFILE and loads the
// layered configuration.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	profile := flags.profile
	if profile == "" {
		profile = os.Getenv("APP_PROFILE")
	}
	if profile == "" {
		return nil, errors.New("no profile: pass --profile or set APP_PROFILE (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile, config.WithConfigDir(flags.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
