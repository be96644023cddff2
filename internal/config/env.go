// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from vars using the caarlos0/env library. Struct
// fields are mapped via their `env` tags defined on [Config] and its nested
// types; the real process environment is not consulted, vars already
// contains it.
func parseEnv(cfg any, vars Vars) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
