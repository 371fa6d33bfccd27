package cmd

import (
	"fmt"
	"runtime"

	"github.com/mweagle/keygen/buildinfo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "keygen %s (%s, %s/%s)\n",
			buildinfo.BuildInfo(),
			runtime.Version(),
			runtime.GOOS,
			runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
