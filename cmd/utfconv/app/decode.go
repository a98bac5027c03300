package app

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/config"
	"github.com/coregx/utfconv/stream"
)

func newDecodeCmd() *cobra.Command {
	cfg := config.NewWithOpts(config.WithDecode())
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Convert UTF-16 into UTF-8",
		Example: `  utfconv decode -i export.utf16.gz -o export.txt --bom use
  utfconv decode --endianness be --bom expect < in.utf16be`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transcode(cmd, cfg, utfconv.UTF16ToUTF8, newDecoder)
		},
	}
	cfg.MustViperize(cmd)
	return cmd
}

func newDecoder(cfg *config.Config, tc *utfconv.Transcoder) transform.Transformer {
	return stream.NewDecoder(cfg.Endianness, cfg.BOM, stream.WithTranscoder(tc))
}
