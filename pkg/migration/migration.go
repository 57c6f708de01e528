package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "migrations"

func newMigrate(sourceURL string, databaseURL string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the root command with up, down, force and version sub commands,
// the database drivers must be imported by the caller
func MigrateCommand(databaseURL string) *cobra.Command {
	sourceURL := "file://" + migrationsDir

	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(sourceURL, databaseURL).Up())
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "roll back the given number of migrations, default 1",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) > 0 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n <= 0 {
						return fmt.Errorf("invalid steps: %q", args[0])
					}
					steps = n
				}
				return ignoreNoChange(newMigrate(sourceURL, databaseURL).Steps(-steps))
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "set the migration version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version: %q", args[0])
				}
				return newMigrate(sourceURL, databaseURL).Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := newMigrate(sourceURL, databaseURL).Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					cmd.Println("no migration applied")
					return nil
				}
				if err != nil {
					return err
				}
				cmd.Printf("version: %d, dirty: %t\n", version, dirty)
				return nil
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting applies all migrations under rootDir
func MigrateUpForTesting(rootDir string, databaseURL string) {
	m := newMigrate("file://"+path.Join(rootDir, migrationsDir), databaseURL)
	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}
