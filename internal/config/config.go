// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

const (
	// DefaultVarsPath is the vars file read when no --vars flag is given.
	DefaultVarsPath = ".dev.vars"

	// DefaultOutputPath is the Markdown file written in document mode.
	DefaultOutputPath = "schema.md"

	// DefaultTableKeys lists the variables holding table IDs that are
	// documented when no single table is requested.
	DefaultTableKeys = "APPLICATIONS_TABLE_ID,VISIONARY_TABLE_ID,MENTOR_TABLE_ID,MENTOR_TOOLS_TABLE_ID"

	// DefaultBaseURL is the Lark Open Platform API root.
	DefaultBaseURL = "https://open.larksuite.com/open-apis"
)

// Config is the merged, typed view of all configuration sources.
//
// Struct tags:
//   - env — variable name looked up in the merged vars (caarlos0/env).
//
// Fields without an env tag are only settable from command-line flags.
type Config struct {
	// Lark holds the application credentials and API location.
	Lark Lark

	// Bitable identifies the Bitable app and the tables to document.
	Bitable Bitable

	// Output controls where and how results are written.
	Output Output

	// Vars is the merged vars-file and environment mapping. Table IDs are
	// resolved from it by key.
	Vars Vars
}

// Lark holds the credentials of the Lark custom app.
type Lark struct {
	// AppID is the custom app identifier ("cli_...").
	// Env: LARK_APP_ID
	AppID string `env:"LARK_APP_ID"`

	// AppSecret is the custom app secret. Must be kept confidential.
	// Env: LARK_APP_SECRET
	AppSecret string `env:"LARK_APP_SECRET"`

	// BaseURL is the Open API root every request path is joined to.
	// Env: LARK_BASE_URL
	BaseURL string `env:"LARK_BASE_URL" envDefault:"https://open.larksuite.com/open-apis"`
}

// Bitable identifies what to fetch.
type Bitable struct {
	// AppToken is the Bitable app (base) token.
	// Env: BITABLE_APP_TOKEN, flag: --app-token
	AppToken string `env:"BITABLE_APP_TOKEN"`

	// TableID, when set, selects line mode for this single table.
	// Env: BITABLE_TABLE_ID, flag: --table-id
	TableID string `env:"BITABLE_TABLE_ID"`

	// TableKeys are variable names whose values are table IDs, documented
	// in this order in document mode.
	// Flag: --table-keys
	TableKeys []string
}

// Output controls the destination of results.
type Output struct {
	// VarsPath is the vars file that was read.
	// Flag: --vars
	VarsPath string

	// Path is the Markdown file written in document mode.
	// Flag: --output
	Path string

	// Verbose enables debug logging.
	// Flag: --verbose
	Verbose bool

	// LogJSON switches stderr logging from console text to JSON lines.
	// Flag: --log-json
	LogJSON bool
}

// Flags carries raw command-line values. Values are taken as given: an empty
// VarsPath reads no file and an empty TableKeys selects no tables. Start from
// [DefaultFlags] to get the documented defaults.
type Flags struct {
	VarsPath  string
	TableID   string
	AppToken  string
	TableKeys string
	Output    string
	Verbose   bool
	LogJSON   bool
}

// DefaultFlags returns the flag values used when none are given on the
// command line.
func DefaultFlags() Flags {
	return Flags{
		VarsPath:  DefaultVarsPath,
		TableKeys: DefaultTableKeys,
		Output:    DefaultOutputPath,
	}
}

// SingleTable reports whether a single table was requested, which selects
// line mode.
func (cfg *Config) SingleTable() bool {
	return cfg.Bitable.TableID != ""
}

// GetConfig loads, merges and validates configuration in the following
// priority order (later source wins):
//  1. vars file at flags.VarsPath
//  2. process environment
//  3. command-line flags
//
// The returned *Config is non-nil whenever the sources could be read, even
// if validation failed, so callers can still inspect it. A validation
// failure wraps [ErrMissingRequiredVars].
func GetConfig(flags Flags) (*Config, error) {
	return newConfigBuilder(flags).
		withVarsFile().
		withEnv().
		withFlags().
		build()
}

// ParseTableKeys splits a comma-separated list of variable names, trimming
// whitespace and dropping empty entries.
func ParseTableKeys(raw string) []string {
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}
