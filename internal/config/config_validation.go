// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Validate checks that the credentials needed for any API call are present.
//
// Every missing variable is reported at once, in a fixed order, via a
// *[MissingVarsError] that wraps [ErrMissingRequiredVars].
func (cfg *Config) Validate() error {
	var missing []string
	for _, required := range []struct {
		name  string
		value string
	}{
		{"LARK_APP_ID", cfg.Lark.AppID},
		{"LARK_APP_SECRET", cfg.Lark.AppSecret},
		{"BITABLE_APP_TOKEN", cfg.Bitable.AppToken},
	} {
		if required.value == "" {
			missing = append(missing, required.name)
		}
	}

	if len(missing) > 0 {
		return &MissingVarsError{Names: missing}
	}

	return nil
}
