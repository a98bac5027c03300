package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// set through -ldflags at build time
var (
	version string
	commit  string
	built   string
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version
			if v == "" {
				v = "dev"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "utfconv %s\ncommit:  %s\nbuilt:   %s\ngo:      %s %s/%s\n",
				v, commit, built, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
