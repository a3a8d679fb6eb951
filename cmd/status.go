package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wisesaying/wisesaying/internal/file"
	"github.com/wisesaying/wisesaying/wisesaying"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "display the status of the configured store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runStatusCmd(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type storeStatus struct {
	Kind     wisesaying.StoreKind
	Location string
	Count    int
	// Size is the on-disk footprint in bytes, or negative when it does not apply
	Size int64
	Err  error
}

func runStatusCmd(_ *cobra.Command, _ []string) int {
	service, closeStore, err := openService()
	if err != nil {
		return exitCode(err)
	}
	defer closeStore()

	status := getStoreStatus(afero.NewOsFs(), appConfig.Store.ToStoreConfig(), service.Store())
	showStoreStatus(os.Stdout, status)

	if status.Err != nil {
		return 1
	}
	return 0
}

func getStoreStatus(fs afero.Fs, cfg wisesaying.StoreConfig, s store.Store) storeStatus {
	status := storeStatus{
		Kind: cfg.Kind,
		Size: -1,
	}

	if l, ok := wisesaying.Unwrap(s).(store.Locator); ok {
		status.Location = l.Location()
	}

	all, err := s.List()
	if err != nil {
		status.Err = err
		return status
	}
	status.Count = len(all)

	switch cfg.Kind {
	case wisesaying.PerFileStore, wisesaying.JSONFileStore:
		status.Size, status.Err = file.DirSize(fs, cfg.Dir)
	case wisesaying.SQLiteStore:
		if info, err := fs.Stat(cfg.SQL.Path); err == nil {
			status.Size = info.Size()
		}
	}
	return status
}

func showStoreStatus(w io.Writer, status storeStatus) {
	fmt.Fprintln(w, "Store:    ", status.Kind)
	if status.Location != "" {
		fmt.Fprintln(w, "Location: ", status.Location)
	}
	fmt.Fprintln(w, "Sayings:  ", humanize.Comma(int64(status.Count)))
	if status.Size >= 0 {
		fmt.Fprintln(w, "Size:     ", humanize.Bytes(uint64(status.Size)))
	}
	if status.Err != nil {
		fmt.Fprintf(w, "Status:    INVALID [%+v]\n", status.Err)
	} else {
		fmt.Fprintln(w, "Status:    Valid")
	}
}
