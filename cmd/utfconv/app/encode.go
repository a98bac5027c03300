package app

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/config"
	"github.com/coregx/utfconv/stream"
)

func newEncodeCmd() *cobra.Command {
	cfg := config.NewWithOpts(config.WithEncode())
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Convert UTF-8 into UTF-16",
		Example: `  utfconv encode -i notes.txt -o notes.utf16 --bom use
  utfconv encode --endianness be < in.txt > out.utf16be`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transcode(cmd, cfg, utfconv.UTF8ToUTF16, newEncoder)
		},
	}
	cfg.MustViperize(cmd)
	return cmd
}

func newEncoder(cfg *config.Config, tc *utfconv.Transcoder) transform.Transformer {
	return stream.NewEncoder(cfg.Endianness, cfg.BOM, stream.WithTranscoder(tc))
}
