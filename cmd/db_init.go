package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisesaying/wisesaying/wisesaying"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "create the say table if it does not exist",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDBInitCmd(cmd, args))
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
}

func runDBInitCmd(_ *cobra.Command, _ []string) int {
	return exitCode(withMigrator(func(m store.Migrator) error {
		if err := m.Migrate(); err != nil {
			return err
		}
		fmt.Println("Schema is up to date")
		return nil
	}))
}

// withMigrator runs fn against the configured store, which must manage a schema.
func withMigrator(fn func(store.Migrator) error) error {
	service, closeStore, err := openService()
	if err != nil {
		return err
	}
	defer closeStore()

	m, ok := wisesaying.Unwrap(service.Store()).(store.Migrator)
	if !ok {
		return fmt.Errorf("%s store: %w", appConfig.Store.KindOpt, sayerr.ErrUnsupportedOperation)
	}
	return fn(m)
}
