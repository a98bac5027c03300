// Package logging configures logrus for the command line tool.
package logging

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names. Every name lives under the logging. prefix so the settings
// group together in a config file and map to UTFCONV_LOGGING_* variables.
const (
	flagLevel     = "logging.level"
	flagFormatter = "logging.formatter"
	flagStderr    = "logging.log-stderr"
	flagPath      = "logging.path"
	flagMaxSize   = "logging.max-size"
	flagKeep      = "logging.max-backups"
	flagKeepDays  = "logging.max-age"
)

// Config is where log lines go and how they look.
type Config struct {
	Level     string // logrus level name, e.g. "info"
	Formatter string // "text" or "json"
	Stderr    bool   // mirror log lines to standard error

	// Path enables the rotated log file when non-empty. Rotation happens
	// once the file reaches MaxSize megabytes; at most Keep rotated files
	// are kept, and none older than KeepDays days (0 keeps them forever).
	Path     string
	MaxSize  int
	Keep     int
	KeepDays int
}

// AddFlags registers the logging flags on flags.
func (c *Config) AddFlags(flags *pflag.FlagSet) {
	flags.String(flagLevel, "warn", "Lowest level that gets logged (trace|debug|info|warn|error)")
	flags.String(flagFormatter, "text", "Log line format (text|json)")
	flags.Bool(flagStderr, true, "Write log lines to standard error")
	flags.String(flagPath, "", "Also log to this file, rotated by size")
	flags.Int(flagMaxSize, 100, "Rotate the log file after this many megabytes")
	flags.Int(flagKeep, 15, "Number of rotated log files to keep")
	flags.Int(flagKeepDays, 0, "Delete rotated log files older than this many days; 0 disables")
}

// InitFromViper reads the flag values, or their environment and config file
// overrides, back from v.
func (c *Config) InitFromViper(v *viper.Viper) {
	*c = Config{
		Level:     v.GetString(flagLevel),
		Formatter: v.GetString(flagFormatter),
		Stderr:    v.GetBool(flagStderr),
		Path:      v.GetString(flagPath),
		MaxSize:   v.GetInt(flagMaxSize),
		Keep:      v.GetInt(flagKeep),
		KeepDays:  v.GetInt(flagKeepDays),
	}
}
