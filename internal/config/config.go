// Package config binds the command line tool's flags, environment variables
// and optional configuration file into a single Config.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding/unicode"

	"github.com/coregx/utfconv"
	"github.com/coregx/utfconv/internal/fileio"
	"github.com/coregx/utfconv/internal/logging"
	"github.com/coregx/utfconv/simd"
)

const (
	configFile        = "config-file"
	input             = "input"
	output            = "output"
	endianness        = "endianness"
	bom               = "bom"
	inputCompression  = "input-compression"
	outputCompression = "output-compression"
	kernel            = "kernel"
	format            = "format"

	// EnvPrefix prefixes every environment variable, e.g. UTFCONV_KERNEL.
	EnvPrefix = "utfconv"
)

// Config is the resolved configuration of one command invocation.
type Config struct {
	// Input is the input path; "-" is standard input.
	Input string
	// Output is the output path; "-" is standard output.
	Output string
	// Endianness is the byte order of the UTF-16 side.
	Endianness unicode.Endianness
	// BOM is the byte order mark policy of the UTF-16 side.
	BOM unicode.BOMPolicy
	// InputCompression is the compression of the input.
	InputCompression fileio.Compression
	// OutputCompression is the compression of the output.
	OutputCompression fileio.Compression
	// Kernel selects the ASCII kernel of the transcoder.
	Kernel simd.KernelKind
	// Format is the report format of the inspect command (text|json).
	Format string
	// Log is where log lines go and how they look.
	Log logging.Config

	flags *pflag.FlagSet
	viper *viper.Viper
	opts  *Options
}

// Options records which command a Config is for. Each command only gets the
// flags it reads.
type Options struct {
	encode  bool
	decode  bool
	inspect bool
}

// Option sets up Options.
type Option func(*Options)

// WithEncode adds the flags of the encode command.
func WithEncode() Option {
	return func(o *Options) { o.encode = true }
}

// WithDecode adds the flags of the decode command.
func WithDecode() Option {
	return func(o *Options) { o.decode = true }
}

// WithInspect adds the flags of the inspect command.
func WithInspect() Option {
	return func(o *Options) { o.inspect = true }
}

// NewWithOpts returns an unresolved Config with the flags for the commands
// selected by options. Values are looked up in flags first, then UTFCONV_*
// environment variables, then the config file.
func NewWithOpts(options ...Option) *Config {
	var opts Options
	for _, opt := range options {
		opt(&opts)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := &Config{viper: v, flags: pflag.NewFlagSet("utfconv", pflag.ContinueOnError), opts: &opts}
	c.addFlags()
	return c
}

func (c *Config) addFlags() {
	f := c.flags
	f.String(configFile, "", "YAML or JSON file supplying defaults for the flags below")
	f.StringP(input, "i", fileio.Stdio, "File to read; - reads standard input")
	f.String(inputCompression, "auto", "Compression of the input (auto|none|gzip|zstd)")
	f.String(kernel, "auto", "ASCII fast path implementation (auto|scalar|block)")
	if c.opts.encode || c.opts.decode {
		f.StringP(output, "o", fileio.Stdio, "File to write; - writes standard output")
		f.String(outputCompression, "auto", "Compression of the output (auto|none|gzip|zstd); auto picks by file extension")
		f.String(endianness, "le", "UTF-16 byte order (le|be)")
		f.String(bom, "ignore", "UTF-16 byte order mark handling (ignore|use|expect)")
	}
	if c.opts.inspect {
		f.String(format, "text", "Report format (text|json)")
	}
	c.Log.AddFlags(f)
}

// MustViperize attaches the flags to cmd and makes them visible to the
// lookups in Init. It panics if viper rejects the flag set.
func (c *Config) MustViperize(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(c.flags)
	if err := c.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// Init reads the config file named by --config-file, if any, and parses
// every value into its typed field.
func (c *Config) Init() error {
	if file := c.viper.GetString(configFile); file != "" {
		c.viper.SetConfigFile(file)
		if err := c.viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "cannot read config file %s", file)
		}
	}

	c.Log.InitFromViper(c.viper)
	c.Input = c.viper.GetString(input)

	var err error
	if c.InputCompression, err = fileio.ParseCompression(c.viper.GetString(inputCompression)); err != nil {
		return errors.Wrap(err, inputCompression)
	}
	if c.Kernel, err = simd.ParseKernelKind(c.viper.GetString(kernel)); err != nil {
		return errors.Wrap(err, kernel)
	}

	if c.opts.inspect {
		c.Format = c.viper.GetString(format)
		if c.Format != "text" && c.Format != "json" {
			return errors.Errorf("%s: unknown report format %q: want text or json", format, c.Format)
		}
	}

	if !c.opts.encode && !c.opts.decode {
		return nil
	}
	c.Output = c.viper.GetString(output)
	if c.OutputCompression, err = fileio.ParseCompression(c.viper.GetString(outputCompression)); err != nil {
		return errors.Wrap(err, outputCompression)
	}
	if c.Endianness, err = ParseEndianness(c.viper.GetString(endianness)); err != nil {
		return err
	}
	if c.BOM, err = ParseBOMPolicy(c.viper.GetString(bom)); err != nil {
		return err
	}
	return nil
}

// Transcoder builds the transcoder selected by the configuration.
func (c *Config) Transcoder() (*utfconv.Transcoder, error) {
	conf := utfconv.DefaultConfig()
	conf.Kernel = c.Kernel
	return utfconv.New(conf)
}

// ParseEndianness parses "le" or "be".
func ParseEndianness(s string) (unicode.Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "le", "little", "utf-16le":
		return unicode.LittleEndian, nil
	case "be", "big", "utf-16be":
		return unicode.BigEndian, nil
	}
	return unicode.LittleEndian, errors.Errorf("%s: unknown byte order %q: want le or be", endianness, s)
}

// ParseBOMPolicy parses "ignore", "use" or "expect".
func ParseBOMPolicy(s string) (unicode.BOMPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore", "none":
		return unicode.IgnoreBOM, nil
	case "use":
		return unicode.UseBOM, nil
	case "expect", "require":
		return unicode.ExpectBOM, nil
	}
	return unicode.IgnoreBOM, errors.Errorf("%s: unknown policy %q: want ignore, use or expect", bom, s)
}
