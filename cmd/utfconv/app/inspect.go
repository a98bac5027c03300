package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/config"
	"github.com/coregx/utfconv/internal/fileio"
	"github.com/coregx/utfconv/simd"
)

// measureUnits is the size of the scratch buffer used to count UTF-16 units.
const measureUnits = 4096

// Report summarizes a UTF-8 input.
type Report struct {
	Input string `json:"input"`
	Size  int    `json:"size"`
	// ASCIIPrefix is the length of the leading run of ASCII bytes.
	ASCIIPrefix int     `json:"ascii_prefix"`
	NonASCII    int     `json:"non_ascii"`
	ASCIIRatio  float64 `json:"ascii_ratio"`
	Valid       bool    `json:"valid"`
	// UTF16Units is the number of code units the input, or its valid prefix,
	// converts to.
	UTF16Units int    `json:"utf16_units"`
	Offset     *int64 `json:"error_offset,omitempty"`
	Error      string `json:"error,omitempty"`
}

func newInspectCmd() *cobra.Command {
	cfg := config.NewWithOpts(config.WithInspect())
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report size, ASCII share and UTF-8 validity of the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, cfg)
		},
	}
	cfg.MustViperize(cmd)
	return cmd
}

func inspect(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Init(); err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	tc, err := cfg.Transcoder()
	if err != nil {
		return err
	}

	in, err := fileio.OpenInput(cfg.Input, cmd.InOrStdin(), cfg.InputCompression)
	if err != nil {
		return err
	}
	defer in.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(in); err != nil {
		return errors.Wrapf(err, "unable to read %s", cfg.Input)
	}
	log.Debugf("read %s from %s", humanize.Bytes(uint64(buf.Len())), cfg.Input)

	r := inspectBytes(tc, buf.B)
	r.Input = cfg.Input
	return writeReport(cmd.OutOrStdout(), cfg.Format, r)
}

// inspectBytes builds the report for data, counting UTF-16 units through a
// fixed scratch buffer rather than materializing the conversion.
func inspectBytes(tc *utfconv.Transcoder, data []byte) Report {
	r := Report{
		Size:        len(data),
		ASCIIPrefix: len(data),
		NonASCII:    simd.CountNonASCII(data),
		ASCIIRatio:  1,
		Valid:       true,
	}
	if simd.IsASCII(data) {
		r.UTF16Units = len(data)
		return r
	}
	r.ASCIIPrefix = simd.FirstNonASCII(data)
	r.ASCIIRatio = float64(len(data)-r.NonASCII) / float64(len(data))

	scratch := make([]uint16, measureUnits)
	pos := 0
	for pos < len(data) {
		n, m, status := tc.ToUTF16(scratch, data[pos:])
		r.UTF16Units += n
		pos += m
		if status == utfconv.Done {
			break
		}
		if status == utfconv.DestinationTooSmall && n+m > 0 {
			continue
		}
		err := &utfconv.TranscodeError{Dir: utfconv.UTF8ToUTF16, Offset: int64(pos), Status: status}
		r.Valid = false
		r.Offset = &err.Offset
		r.Error = err.Error()
		break
	}
	return r
}

func writeReport(w io.Writer, format string, r Report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	validity := "valid UTF-8"
	if !r.Valid {
		validity = r.Error
	}
	_, err := fmt.Fprintf(w,
		"input:        %s\n"+
			"size:         %s (%s bytes)\n"+
			"ascii:        %.2f%% (%s non-ASCII bytes, %s leading ASCII bytes)\n"+
			"utf-16 units: %s\n"+
			"status:       %s\n",
		r.Input,
		humanize.Bytes(uint64(r.Size)), humanize.Comma(int64(r.Size)),
		r.ASCIIRatio*100, humanize.Comma(int64(r.NonASCII)), humanize.Comma(int64(r.ASCIIPrefix)),
		humanize.Comma(int64(r.UTF16Units)),
		validity,
	)
	return err
}
