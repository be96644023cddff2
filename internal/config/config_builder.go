package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	flags   Flags
	layers  []Vars
	flagCfg *Config
	environ func() []string
	err     error
}

func newConfigBuilder(flags Flags) *configBuilder {
	return &configBuilder{
		flags:   flags,
		layers:  make([]Vars, 0, 2),
		environ: os.Environ,
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	vars, err := Merge(b.layers...)
	if err != nil {
		return nil, err
	}

	config := new(Config)
	if err = parseEnv(config, vars); err != nil {
		return nil, err
	}

	if b.flagCfg != nil {
		if err = mergo.Merge(config, b.flagCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging flag configs: %w", err)
		}
	}

	config.Vars = vars
	config.applyDefaults()

	return config, config.Validate()
}

func (b *configBuilder) withVarsFile() *configBuilder {
	vars, err := LoadVarsFile(b.flags.VarsPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, vars)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	b.layers = append(b.layers, varsFromEnviron(b.environ()))
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.flagCfg = &Config{
		Bitable: Bitable{
			AppToken:  b.flags.AppToken,
			TableID:   b.flags.TableID,
			TableKeys: ParseTableKeys(b.flags.TableKeys),
		},
		Output: Output{
			VarsPath: b.flags.VarsPath,
			Path:     b.flags.Output,
			Verbose:  b.flags.Verbose,
			LogJSON:  b.flags.LogJSON,
		},
	}

	return b
}

func (cfg *Config) applyDefaults() {
	if cfg.Lark.BaseURL == "" {
		cfg.Lark.BaseURL = DefaultBaseURL
	}
}
