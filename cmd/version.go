package cmd

import (
	"fmt"

	"github.com/rnwolfe/studycal/internal/version"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print studycal version",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if versionShort {
			fmt.Println(version.Short())
			return
		}
		fmt.Printf("studycal %s\n", version.Full())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
