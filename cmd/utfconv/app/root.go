// Package app implements the utfconv command line tool.
package app

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the entrance to the utfconv CLI with every subcommand
// attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "utfconv",
		Short: "Fast UTF-8 and UTF-16 transcoder",
		Long: `
	utfconv converts UTF-8 text into UTF-16 and back. Input and output may be
	files or the standard streams, optionally gzip or zstd compressed. Malformed
	input stops the conversion and the error names the offset of the first bad
	character.
	`,
		SilenceUsage: true,
	}
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newVersionCmd())
	return root
}
