package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wisesaying/wisesaying/internal/ui"
	"github.com/wisesaying/wisesaying/wisesaying/presenter"
	"github.com/wisesaying/wisesaying/wisesaying/say"
)

var listOpts = struct {
	Page        int
	KeywordType string
	Keyword     string
}{}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "show a page of sayings, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runListCmd(cmd, args))
	},
}

func init() {
	flags := listCmd.Flags()
	flags.IntVar(&listOpts.Page, "page", 1, "page number to show")
	flags.StringVar(&listOpts.KeywordType, "keyword-type", string(say.AllKeywordType), fmt.Sprintf("the field(s) searched by --keyword, options=%v", say.KeywordTypes))
	flags.StringVar(&listOpts.Keyword, "keyword", "", "only show sayings containing the keyword")
	flags.StringP("output", "o", presenter.TablePresenter.String(), fmt.Sprintf("report output formatter, options=%v", presenter.Options))
	flags.StringP("template", "t", "", "specify the path to a Go template file (requires 'template' output to be selected)")

	for key, flag := range map[string]string{
		"output":               "output",
		"output-template-file": "template",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Printf("unable to bind flag '%s': %+v", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(listCmd)
}

func runListCmd(_ *cobra.Command, _ []string) int {
	defer startProfiling()()

	option := presenter.ParseOption(appConfig.Output)
	if option == presenter.UnknownPresenter {
		return exitCode(fmt.Errorf("cannot find an output presenter for option: %s", appConfig.Output))
	}
	if option == presenter.TemplatePresenter && appConfig.OutputTemplateFile == "" {
		return exitCode(fmt.Errorf("the 'template' output requires a template file (-t)"))
	}

	service, closeStore, err := openService()
	if err != nil {
		return exitCode(err)
	}

	return exitCode(eventLoop(
		startWorker(func() (string, error) {
			keywordType := say.ParseKeywordType(listOpts.KeywordType)
			pageable := say.NewPageable(listOpts.Page, appConfig.List.PageSize)

			page, err := service.Page(keywordType, listOpts.Keyword, pageable)
			if err != nil {
				return "", err
			}

			var report bytes.Buffer
			if err := presenter.GetPresenter(option, *page, appConfig.OutputTemplateFile).Present(&report); err != nil {
				return "", fmt.Errorf("unable to show sayings: %w", err)
			}
			return report.String(), nil
		}),
		setupSignals(),
		eventSubscription,
		closeStore,
		ui.NewLoggerUI(os.Stdout),
	))
}
