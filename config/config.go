package config

import (
	"os"
	"fmt"
	"gopkg.in/yaml.v3"

	"ppmsteg/stegano/img"
	"ppmsteg/util"
)

/*
 * Codec options. Policy decides what to do with byte 255 when it must
 * carry a zero bit, Locator how the pixel payload is found in the file.
 */
type CodecConfig struct {
	Policy			string	`yaml:"policy"`
	Locator			string	`yaml:"locator"`
	NormalizeUnicode	bool	`yaml:"normalize_unicode"`
}

type FullConfig struct {
	Codec		CodecConfig		`yaml:"codec"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Codec: CodecConfig{
			Policy: img.PolicyStepDown.String(),
			Locator: img.LocateAuto.String(),
			NormalizeUnicode: false,
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning,
		},
	}
}

func (c *CodecConfig) Validate() error {
	if _, err := img.ParsePolicy( c.Policy ); err != nil {
		return err
	}
	if _, err := img.ParseLocatorMode( c.Locator ); err != nil {
		return err
	}
	return nil
}

// Codec builds the codec described by the configuration.
func (c *CodecConfig) Codec( log img.Logger ) (*img.Codec, error) {
	policy, err := img.ParsePolicy( c.Policy )
	if err != nil {
		return nil, err
	}
	locator, err := img.ParseLocatorMode( c.Locator )
	if err != nil {
		return nil, err
	}
	return &img.Codec{
		Policy: policy,
		Locator: locator,
		Normalize: c.NormalizeUnicode,
		Log: log,
	}, nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Fields missing from the file keep their default values.
 */
func LoadConfig(filename string) (*FullConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", img.ErrIO, filename, err)
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := conf.Codec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return conf, nil
}

func SaveConfig(filename string, c *FullConfig) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("%w: write %s: %v", img.ErrIO, filename, err)
	}
	return nil
}
