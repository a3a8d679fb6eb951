package cmd

import (
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "manage the schema of the sql store",
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
