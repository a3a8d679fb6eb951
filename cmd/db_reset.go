package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "drop and recreate the say table, deleting all sayings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDBResetCmd(cmd, args))
	},
}

func init() {
	dbCmd.AddCommand(dbResetCmd)
}

func runDBResetCmd(_ *cobra.Command, _ []string) int {
	return exitCode(withMigrator(func(m store.Migrator) error {
		if err := m.Reset(); err != nil {
			return err
		}
		fmt.Println("All sayings deleted, ids restart at 1")
		return nil
	}))
}
