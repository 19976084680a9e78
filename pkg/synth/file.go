package synth

import (
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/labelsynth/labelsynth/pkg/labeling"
)

// Config is the file form of the synthesizer options. Zero fields keep
// their defaults.
type Config struct {
	MaxDepth     *int          `mapstructure:"maxDepth"`
	MaxWidth     int           `mapstructure:"maxWidth"`
	InitialWidth int           `mapstructure:"initialWidth"`
	WidthStep    int           `mapstructure:"widthStep"`
	MaxAttempts  int           `mapstructure:"maxAttempts"`
	Relations    []string      `mapstructure:"relations"`
	Alternatives int           `mapstructure:"alternatives"`
	Workers      int           `mapstructure:"workers"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Verify       *bool         `mapstructure:"verify"`
	Labels       []string      `mapstructure:"labels"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return config, nil
}

// ParseConfig decodes a YAML config document. Values are weakly typed,
// so "3" is accepted where a number is expected, and durations are
// written as "30s".
func ParseConfig(data []byte) (*Config, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &config,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &config, nil
}

// Options returns the options set by c.
func (c *Config) Options() []Option {
	var options []Option
	if c.MaxDepth != nil {
		options = append(options, WithMaxDepth(*c.MaxDepth))
	}
	if c.MaxWidth != 0 {
		options = append(options, WithMaxWidth(c.MaxWidth))
	}
	if c.InitialWidth != 0 {
		options = append(options, WithInitialWidth(c.InitialWidth))
	}
	if c.WidthStep != 0 {
		options = append(options, WithWidthStep(c.WidthStep))
	}
	if c.MaxAttempts != 0 {
		options = append(options, WithMaxAttempts(c.MaxAttempts))
	}
	if len(c.Relations) > 0 {
		options = append(options, WithRelations(c.Relations...))
	}
	if c.Alternatives != 0 {
		options = append(options, WithAlternatives(c.Alternatives))
	}
	if c.Workers != 0 {
		options = append(options, WithWorkers(c.Workers))
	}
	if c.Timeout != 0 {
		options = append(options, WithTimeout(c.Timeout))
	}
	if c.Verify != nil {
		options = append(options, WithVerify(*c.Verify))
	}
	if len(c.Labels) > 0 {
		labels := make([]labeling.Label, len(c.Labels))
		for i, l := range c.Labels {
			labels[i] = labeling.Label(l)
		}
		options = append(options, WithLabels(labels...))
	}
	return options
}
