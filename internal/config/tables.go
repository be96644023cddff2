// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/bitable-schema/models"

// TableRefs resolves Bitable.TableKeys against the merged vars.
//
// Tables are returned in key order with empty Fields. Keys that are unset
// or empty are collected in missing rather than treated as an error; it is
// up to the caller to decide whether an empty result is fatal.
func (cfg *Config) TableRefs() (tables []models.Table, missing []string) {
	for _, key := range cfg.Bitable.TableKeys {
		id := cfg.Vars[key]
		if id == "" {
			missing = append(missing, key)
			continue
		}
		tables = append(tables, models.Table{Key: key, ID: id})
	}

	return tables, missing
}
