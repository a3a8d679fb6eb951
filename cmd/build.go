package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisesaying/wisesaying/internal/ui"
	"github.com/wisesaying/wisesaying/wisesaying"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "export all sayings to the store's data file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runBuildCmd(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuildCmd(_ *cobra.Command, _ []string) int {
	service, closeStore, err := openService()
	if err != nil {
		return exitCode(err)
	}

	return exitCode(eventLoop(
		startWorker(func() (string, error) {
			if err := service.Build(); err != nil {
				return "", err
			}
			if l, ok := wisesaying.Unwrap(service.Store()).(store.Locator); ok {
				return fmt.Sprintf("%s 파일의 내용이 갱신되었습니다.\n", l.Location()), nil
			}
			return "data.json 파일의 내용이 갱신되었습니다.\n", nil
		}),
		setupSignals(),
		eventSubscription,
		closeStore,
		ui.NewLoggerUI(os.Stdout),
	))
}
