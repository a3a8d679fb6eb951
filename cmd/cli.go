package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wisesaying/wisesaying/internal/config"
	"github.com/wisesaying/wisesaying/wisesaying"
)

var persistentOpts = config.CliOnlyOptions{}

func setGlobalCliOptions() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	flags.CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug, -vvv = trace)")
	flags.BoolP("quiet", "q", false, "suppress all logging output")
	flags.String("store", "", fmt.Sprintf("the store holding the sayings, options=%v", wisesaying.StoreKinds))

	if err := bindGlobalConfigOptions(flags); err != nil {
		fmt.Printf("unable to bind flags: %+v", err)
		os.Exit(1)
	}
}

func bindGlobalConfigOptions(flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"quiet":      "quiet",
		"store.kind": "store",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("unable to bind flag '%s': %w", flag, err)
		}
	}
	return nil
}
