package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisesaying/wisesaying/internal"
	"github.com/wisesaying/wisesaying/internal/console"
	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/internal/stringutil"
	"github.com/wisesaying/wisesaying/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   internal.ApplicationName,
	Short: "A quote book for the terminal",
	Long: stringutil.Tprintf(`Starts an interactive session for managing sayings (type "도움" for the command list).

One-shot operations are available as subcommands:
    {{.appName}} list --keyword 공자        show the first page of matching sayings
    {{.appName}} build                     export all sayings to the store's data file
    {{.appName}} status                    describe the configured store
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(cmd, args))
	},
}

func init() {
	setGlobalCliOptions()
}

func runDefaultCmd(_ *cobra.Command, _ []string) int {
	defer startProfiling()()

	service, closeStore, err := openService()
	if err != nil {
		return exitCode(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cleanup := func() {
		cancel()
		closeStore()
	}

	if piped, err := internal.IsPipedInput(); err != nil {
		log.Warnf("%+v", err)
	} else if piped {
		log.Info("reading console commands from piped input")
	}

	controller := console.NewController(service, os.Stdin, os.Stdout, appConfig.List.PageSize)

	return exitCode(eventLoop(
		startWorker(func() (string, error) {
			return "", controller.Run(ctx)
		}),
		setupSignals(),
		eventSubscription,
		cleanup,
		ui.NewLoggerUI(os.Stdout),
	))
}
