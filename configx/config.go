package configx

import (
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/topicboard/topicboard/errorx"
)

const envPrefix = "TOPICBOARD_"

// Config carries the dashboard settings. Precedence, lowest to highest:
// built-in defaults, YAML file, TOPICBOARD_* environment variables, forced
// values.
type Config struct {
	// BaseURL of the remote topic service REST API.
	BaseURL string `koanf:"base_url"`
	// PollInterval between two dashboard snapshot fetches.
	PollInterval time.Duration `koanf:"poll_interval"`
	// RequestTimeout applied to every remote call.
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// RedirectDelay between a successful partition alteration and the
	// navigate-home callback.
	RedirectDelay time.Duration `koanf:"redirect_delay"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"base_url":        "http://127.0.0.1:8000",
		"poll_interval":   time.Second,
		"request_timeout": 10 * time.Second,
		"redirect_delay":  time.Second,
	}
}

// New loads the dashboard configuration.
func New(opts ...OptionModifier) (*Config, error) {
	p := &provider{}
	for _, opt := range opts {
		opt(p)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, f := range p.files {
		if err := k.Load(file.Provider(f), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %q", f)
		}
	}

	if !p.disableEnvLoading {
		if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, envPrefix))
		}), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if len(p.forcedValues) > 0 {
		if err := k.Load(confmap.Provider(p.forcedValues, "."), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var c Config
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			WeaklyTypedInput: true,
			Result:           &c,
		},
	}); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errorx.ValidationErrorf("base_url must not be empty")
	}
	if c.PollInterval <= 0 {
		return errorx.ValidationErrorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.RequestTimeout <= 0 {
		return errorx.ValidationErrorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RedirectDelay < 0 {
		return errorx.ValidationErrorf("redirect_delay must not be negative, got %s", c.RedirectDelay)
	}
	return nil
}
