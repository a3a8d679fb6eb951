package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisesaying/wisesaying/internal"
	"github.com/wisesaying/wisesaying/internal/version"
)

var outputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runVersionCmd(cmd, args))
	},
}

func init() {
	versionCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "format to show version information (available=[text, json])")

	rootCmd.AddCommand(versionCmd)
}

func runVersionCmd(_ *cobra.Command, _ []string) int {
	if err := printVersion(os.Stdout, outputFormat, version.FromBuild()); err != nil {
		return exitCode(err)
	}
	return 0
}

func printVersion(w io.Writer, format string, versionInfo version.Version) error {
	switch format {
	case "text":
		fmt.Fprintln(w, "Application:   ", internal.ApplicationName)
		fmt.Fprintln(w, "Version:       ", versionInfo.Version)
		fmt.Fprintln(w, "BuildDate:     ", versionInfo.BuildDate)
		fmt.Fprintln(w, "GitCommit:     ", versionInfo.GitCommit)
		fmt.Fprintln(w, "GitTreeState:  ", versionInfo.GitTreeState)
		fmt.Fprintln(w, "Platform:      ", versionInfo.Platform)
		fmt.Fprintln(w, "GoVersion:     ", versionInfo.GoVersion)
		fmt.Fprintln(w, "Compiler:      ", versionInfo.Compiler)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			version.Version
			Application string `json:"application"`
		}{
			Version:     versionInfo,
			Application: internal.ApplicationName,
		})
		if err != nil {
			return fmt.Errorf("failed to show version information: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}
