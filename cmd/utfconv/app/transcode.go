package app

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/config"
	"github.com/coregx/utfconv/internal/fileio"
	"github.com/coregx/utfconv/internal/logging"
	"github.com/coregx/utfconv/stream"
)

// transformerFn builds the stream transformer of a conversion command.
type transformerFn func(cfg *config.Config, tc *utfconv.Transcoder) transform.Transformer

func newLogger(cmd *cobra.Command, cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	if err := logging.Init(log, cfg.Log, cmd.ErrOrStderr()); err != nil {
		return nil, errors.Wrap(err, "unable to initialize logging")
	}
	return log, nil
}

// transcode copies the configured input to the configured output through the
// transformer returned by fn.
func transcode(cmd *cobra.Command, cfg *config.Config, dir utfconv.Direction, fn transformerFn) error {
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
	out, err := fileio.CreateOutput(cfg.Output, cmd.OutOrStdout(), cfg.OutputCompression)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"direction": dir,
		"input":     cfg.Input,
		"output":    cfg.Output,
		"kernel":    tc.Kernel(),
	}).Debug("starting conversion")

	var (
		src   = &fileio.CountingReader{R: in}
		dst   = &fileio.CountingWriter{W: out}
		start = time.Now()
	)
	if _, err := io.Copy(dst, stream.NewReader(src, fn(cfg, tc))); err != nil {
		_ = out.Close()
		discard(log, cfg.Output)
		return errors.Wrapf(err, "unable to convert %s", cfg.Input)
	}
	if err := out.Close(); err != nil {
		discard(log, cfg.Output)
		return errors.Wrapf(err, "unable to finish %s", cfg.Output)
	}

	log.WithFields(logrus.Fields{
		"direction": dir,
		"read":      humanize.Bytes(uint64(src.N)),
		"written":   humanize.Bytes(uint64(dst.N)),
		"elapsed":   time.Since(start),
	}).Info("conversion finished")
	return nil
}

// discard removes a partially written output file.
func discard(log *logrus.Logger, path string) {
	if path == fileio.Stdio || path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Warnf("unable to remove partial output %s: %v", path, err)
	}
}
