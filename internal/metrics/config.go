package metrics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/rank-metrics/internal/apperr"
)

type KPolicy string

const (
	// KPolicyClamp truncates k to the number of items.
	KPolicyClamp KPolicy = "clamp"
	// KPolicyStrict rejects k larger than the number of items.
	KPolicyStrict KPolicy = "strict"
)

type RelevanceMode string

const (
	RelevanceBinary RelevanceMode = "binary"
	RelevanceGraded RelevanceMode = "graded"
)

const DefaultWorkers = 4

type Config struct {
	KPolicy   KPolicy       `yaml:"k_policy"`
	Relevance RelevanceMode `yaml:"relevance"`
	// Workers bounds concurrent queries in EvaluateBatch.
	Workers int `yaml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		KPolicy:   KPolicyClamp,
		Relevance: RelevanceBinary,
		Workers:   DefaultWorkers,
	}
}

func (c Config) Validate() error {
	switch c.KPolicy {
	case KPolicyClamp, KPolicyStrict:
	default:
		return fmt.Errorf("invalid k_policy %q", c.KPolicy)
	}
	switch c.Relevance {
	case RelevanceBinary, RelevanceGraded:
	default:
		return fmt.Errorf("invalid relevance mode %q", c.Relevance)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.KPolicy == "" {
		c.KPolicy = d.KPolicy
	}
	if c.Relevance == "" {
		c.Relevance = d.Relevance
	}
	if c.Workers == 0 {
		c.Workers = d.Workers
	}
	return c
}

func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read metrics config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, apperr.NewValidationWrap("config", "parse metrics config YAML", err)
	}
	c = c.withDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("metrics config: %w", err)
	}
	return c, nil
}
