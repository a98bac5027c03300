package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init applies c to logger. Console output, when enabled, goes to stderr
// because standard output may carry converted data.
func Init(logger *logrus.Logger, c Config, stderr io.Writer) error {
	var formatter logrus.Formatter
	switch c.Formatter {
	case "json":
		formatter = &logrus.JSONFormatter{}
	case "text", "":
		formatter = &logrus.TextFormatter{DisableColors: true}
	default:
		return errors.Errorf("unknown log formatter %q", c.Formatter)
	}
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logger.SetFormatter(formatter)
	logger.SetLevel(level)

	console := io.Discard
	if c.Stderr {
		console = stderr
	}
	logger.SetOutput(console)

	if c.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return errors.Wrapf(err, "cannot create log directory %s", filepath.Dir(c.Path))
	}
	logger.AddHook(&fileHook{
		out: &lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSize,
			MaxBackups: c.Keep,
			MaxAge:     c.KeepDays,
		},
		levels:    logrus.AllLevels[:level+1],
		formatter: formatter,
	})
	return nil
}

// fileHook copies entries into the rotated log file.
type fileHook struct {
	out       io.Writer
	levels    []logrus.Level
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return h.levels }

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}
