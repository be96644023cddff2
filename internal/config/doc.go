// Package config loads, layers and validates the settings of the
// bitable-schema tool.
//
// Settings are assembled from three sources, each overriding the previous
// one for any key it sets:
//  1. A KEY=VALUE vars file (".dev.vars" by default)
//  2. Process environment variables
//  3. Command-line flags
//
// The first two sources are merged as flat string maps ([Vars]) so that
// arbitrary table-key variables stay addressable; the typed [Config] view is
// then decoded from the merged map. The main entry point is [GetConfig].
package config
