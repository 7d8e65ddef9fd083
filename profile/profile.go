package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/signadot/jsonv/debug"
	"github.com/signadot/jsonv/format"
)

// ErrUnknownProfile is returned by Config.Get for a name with no profile.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile holds formatter settings as read from a config file or the
// environment. Unset fields keep the formatter defaults.
type Profile struct {
	Layout              string  `mapstructure:"layout"`
	Indent              *int    `mapstructure:"indent"`
	IndentString        *string `mapstructure:"indent-string"`
	LineBreak           *string `mapstructure:"line-break"`
	IndentObjects       *bool   `mapstructure:"indent-objects"`
	IndentArrays        *bool   `mapstructure:"indent-arrays"`
	BeforeArrayValues   *string `mapstructure:"before-array-values"`
	AfterArrayValues    *string `mapstructure:"after-array-values"`
	FieldValueSeparator *string `mapstructure:"field-value-separator"`
}

// Config is the root of a jv config file. The top level settings form the
// default profile; Profiles holds named ones.
type Config struct {
	Profile  `mapstructure:",squash"`
	Profiles map[string]Profile `mapstructure:"profiles"`

	// File is the config file read, empty when none was found.
	File string `mapstructure:"-"`
}

var keys = []string{
	"layout",
	"indent",
	"indent-string",
	"line-break",
	"indent-objects",
	"indent-arrays",
	"before-array-values",
	"after-array-values",
	"field-value-separator",
}

// Load reads configuration from path if it is non-empty. Otherwise the
// file named by JV_CONFIG is used, and failing that jv.{yaml,json,toml} is
// searched for in the working directory and $HOME/.config/jv. A missing
// file in the search locations is not an error.
//
// Top level settings may be overridden from the environment with the JV_
// prefix, e.g. JV_INDENT=4 or JV_LINE_BREAK.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if path == "" {
		path = os.Getenv("JV_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jv")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "jv"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if debug.Profile() {
		debug.Logf("profile: loaded %q with profiles %v\n", cfg.File, cfg.Names())
	}
	return cfg, nil
}

// Names returns the named profiles in sorted order.
func (c *Config) Names() []string {
	res := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Get returns the named profile, or the top level profile for "".
func (c *Config) Get(name string) (*Profile, error) {
	if name == "" {
		p := c.Profile
		return &p, nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownProfile, name)
	}
	return &p, nil
}

// Options translates p into formatter options.
func (p *Profile) Options() ([]format.Option, error) {
	var opts []format.Option
	if p.Layout != "" {
		l, err := format.ParseLayout(p.Layout)
		if err != nil {
			return nil, &format.InvalidConfigurationError{Option: "layout", Msg: err.Error()}
		}
		opts = append(opts, l.Options()...)
	}
	if p.Indent != nil {
		opts = append(opts, format.Indent(*p.Indent))
	}
	if p.IndentString != nil {
		opts = append(opts, format.IndentString(*p.IndentString))
	}
	if p.LineBreak != nil {
		opts = append(opts, format.LineBreak(*p.LineBreak))
	}
	if p.IndentObjects != nil {
		opts = append(opts, format.IndentObjects(*p.IndentObjects))
	}
	if p.IndentArrays != nil {
		opts = append(opts, format.IndentArrays(*p.IndentArrays))
	}
	if p.BeforeArrayValues != nil {
		opts = append(opts, format.BeforeArrayValues(*p.BeforeArrayValues))
	}
	if p.AfterArrayValues != nil {
		opts = append(opts, format.AfterArrayValues(*p.AfterArrayValues))
	}
	if p.FieldValueSeparator != nil {
		opts = append(opts, format.FieldValueSeparator(*p.FieldValueSeparator))
	}
	return opts, nil
}

// Formatter builds the formatter described by p, with extra options
// applied last.
func (p *Profile) Formatter(extra ...format.Option) (*format.Formatter, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	f, err := format.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	if debug.Profile() {
		debug.Logf("profile: formatter indent=%q line-break=%q compact=%t\n",
			f.IndentUnit(), f.LineBreakString(), f.IsCompact())
	}
	return f, nil
}
