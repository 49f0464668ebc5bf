// Command migration applies the stats-store schema.
//
// Usage:
//
//	migration up
//	migration down 1
//	migration version
//	migration force 1771900100
//	migration goto 1771900000
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/fantasy-dashboard/internal/app"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

var logger = logging.New(logging.Options{Level: logging.LevelInfo, Format: "console"})

type options struct {
	dbURL         string
	migrationsDir string
	disableBinary bool
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		_ = logger.Sync()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "migration",
		Short:        "Apply the fantasy-dashboard stats schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.dbURL, "db-url", os.Getenv("DB_URL"), "Postgres connection URL (env DB_URL)")
	root.PersistentFlags().StringVar(&opts.migrationsDir, "dir", "", "migrations directory (env MIGRATIONS_DIR)")
	root.PersistentFlags().BoolVar(&opts.disableBinary, "disable-prepared-binary-result", envBool("DB_DISABLE_PREPARED_BINARY_RESULT"), "append disable_prepared_binary_result=yes to the URL")

	root.AddCommand(
		upCmd(opts),
		downCmd(opts),
		versionCmd(opts),
		forceCmd(opts),
		gotoCmd(opts),
	)
	return root
}

func upCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *migrate.Migrate) error {
				if err := ignoreNoChange(m.Up()); err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				logger.Info("migrations applied")
				return nil
			})
		},
	}
}

func downCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down [n]",
		Short: "Roll back n migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}
			return withMigrator(opts, func(m *migrate.Migrate) error {
				if err := ignoreNoChange(m.Steps(-steps)); err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				logger.Info("migrations rolled back", "steps", steps)
				return nil
			})
		},
	}
}

func versionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(opts, func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "version: none")
					fmt.Fprintln(cmd.OutOrStdout(), "dirty: false")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
				fmt.Fprintf(cmd.OutOrStdout(), "dirty: %t\n", dirty)
				return nil
			})
		},
	}
}

func forceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Set the schema version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := parseVersion(args[0])
			if err != nil {
				return err
			}
			return withMigrator(opts, func(m *migrate.Migrate) error {
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				logger.Info("schema version forced", "version", version)
				return nil
			})
		},
	}
}

func gotoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "goto <version>",
		Aliases: []string{"migrate"},
		Short:   "Migrate up or down to the given version",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			return withMigrator(opts, func(m *migrate.Migrate) error {
				if err := ignoreNoChange(m.Migrate(target)); err != nil {
					return fmt.Errorf("migrate to %d: %w", target, err)
				}
				logger.Info("schema migrated", "version", target)
				return nil
			})
		},
	}
}

func withMigrator(opts *options, fn func(*migrate.Migrate) error) error {
	dbURL := strings.TrimSpace(opts.dbURL)
	if dbURL == "" {
		return errors.New("DB_URL is required")
	}

	dir, err := resolveMigrationsDir(opts.migrationsDir)
	if err != nil {
		return err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, app.NormalizeDBURL(dbURL, opts.disableBinary))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer closeMigrator(m)

	logger.Info("migration source resolved", "source", sourceURL)
	return fn(m)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}
