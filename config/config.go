package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tirthikdurgam/GhostTag/ecc"
	"github.com/tirthikdurgam/GhostTag/util"
)

/*
 * configuration of the ghosttag tool. the engine part must match
 * between the embedding and the extracting side, or the payload is just
 * noise.
 */

// engine parameters, immutable for the lifetime of an engine instance
type EngineConfig struct {
	// parity bytes appended to the payload. higher survives more
	// corruption but eats carrier capacity.
	Redundancy	int	`yaml:"redundancy"`

	// the secret scattering key. ignored when UsePassphrase is set.
	Seed		int64	`yaml:"seed"`

	// when true the seed is derived from a passphrase read from the
	// terminal instead of being stored here in the clear.
	UsePassphrase	bool	`yaml:"use_passphrase"`
}

type FullConfig struct {
	Engine	EngineConfig	`yaml:"engine_config"`
	Logger	util.LoggerInfo	`yaml:"logger_config"`
}

func (c *EngineConfig) Validate() error {
	if c.Redundancy < 1 || c.Redundancy > ecc.MaxRedundancy {
		return fmt.Errorf("Invalid redundancy %d, expected 1..%d", c.Redundancy, ecc.MaxRedundancy)
	}
	if !c.UsePassphrase && c.Seed == 0 {
		return fmt.Errorf("No seed configured: set seed or use_passphrase")
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	if err := conf.Engine.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal(*c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func DefaultConfig(logFilename string) *FullConfig {
	return &FullConfig{
		Engine: EngineConfig{
			Redundancy: 20,
			UsePassphrase: true,
		},
		Logger: util.LoggerInfo{
			Filename: logFilename,
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning,
		},
	}
}
