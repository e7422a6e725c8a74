// Package config loads text ingestion jobs from files and the environment.
//
// Keys live under "ingestion":
//
//	ingestion:
//	  field_delimiter: ","
//	  record_delimiter: "\n"
//	  lenient: true
//	  field_types: [int64, string, skip, float64]
//
// Every key can be overridden by an environment variable with the TYPEFLOW
// prefix, e.g. TYPEFLOW_INGESTION_LENIENT=true. Lists in the environment are
// comma separated.
package config

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wippyai/typeflow/csvinput"
	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/typeinfo"
)

const (
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "TYPEFLOW"
	// EnvConfigFile names the variable holding the config file path.
	EnvConfigFile = "TYPEFLOW_CONFIG"
)

// Ingestion describes how to read one delimited text input.
type Ingestion struct {
	FieldDelimiter  string   `mapstructure:"field_delimiter"`
	RecordDelimiter string   `mapstructure:"record_delimiter"`
	Lenient         bool     `mapstructure:"lenient"`
	FieldTypes      []string `mapstructure:"field_types"`
}

type file struct {
	Ingestion Ingestion `mapstructure:"ingestion"`
}

type loadConfig struct {
	path   *string
	noFile bool
}

// Option configures Load.
type Option func(*loadConfig)

// WithConfigPath reads the given file instead of $TYPEFLOW_CONFIG.
func WithConfigPath(path string) Option {
	return func(c *loadConfig) {
		c.path = &path
	}
}

// WithoutConfigFile uses defaults and the environment only.
func WithoutConfigFile() Option {
	return func(c *loadConfig) {
		c.noFile = true
	}
}

func (c *loadConfig) resolvePath() string {
	switch {
	case c.noFile:
		return ""
	case c.path != nil:
		return *c.path
	}
	return os.Getenv(EnvConfigFile)
}

// Load reads the ingestion configuration.
func Load(opts ...Option) (*Ingestion, error) {
	lc := &loadConfig{}
	for _, opt := range opts {
		opt(lc)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("ingestion.field_delimiter", string(rune(csvinput.DefaultFieldDelimiter)))
	v.SetDefault("ingestion.record_delimiter", string(rune(csvinput.DefaultRecordDelimiter)))
	v.SetDefault("ingestion.lenient", false)
	v.SetDefault("ingestion.field_types", []string{})

	if path := lc.resolvePath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.PhaseConfigure, errors.KindInvalidConfiguration, err,
				"read config file "+path)
		}
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, errors.Wrap(errors.PhaseConfigure, errors.KindInvalidConfiguration, err,
			"decode ingestion config")
	}

	Logger().Info("configuration loaded",
		zap.String("configFile", v.ConfigFileUsed()),
		zap.Strings("configKeys", v.AllKeys()))
	return &f.Ingestion, nil
}

// Tags resolves FieldTypes. Empty entries, "skip", "none" and "null" mark
// columns that are read but not selected.
func (c *Ingestion) Tags() ([]typeinfo.Tag, error) {
	if len(c.FieldTypes) == 0 {
		return nil, errors.InvalidConfiguration("field_types is empty")
	}
	tags := make([]typeinfo.Tag, len(c.FieldTypes))
	for i, name := range c.FieldTypes {
		t, ok := typeinfo.ParseTag(name)
		if !ok {
			return nil, errors.InvalidType([]string{"field_types[" + strconv.Itoa(i) + "]"}, name,
				"unknown field type")
		}
		tags[i] = t
	}
	return tags, nil
}

// Format builds the csvinput format this configuration describes.
func (c *Ingestion) Format() (*csvinput.Format, error) {
	tags, err := c.Tags()
	if err != nil {
		return nil, err
	}
	fd, err := single("field_delimiter", c.FieldDelimiter)
	if err != nil {
		return nil, err
	}
	rd, err := single("record_delimiter", c.RecordDelimiter)
	if err != nil {
		return nil, err
	}
	if rd > 127 {
		return nil, errors.InvalidConfiguration("record_delimiter %q is not an ASCII character", rd)
	}
	return csvinput.NewFormat(tags,
		csvinput.WithFieldDelimiter(fd),
		csvinput.WithRecordDelimiter(byte(rd)),
		csvinput.WithLenient(c.Lenient))
}

// single decodes a one-character setting. The escapes \t and \n are accepted
// for convenience in flags and environment variables.
func single(key, s string) (rune, error) {
	switch s {
	case `\t`:
		return '\t', nil
	case `\n`:
		return '\n', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, errors.InvalidConfiguration("%s must be a single character, got %q", key, s)
	}
	return r, nil
}
