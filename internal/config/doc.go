// Package config loads the glitter configuration.
//
// It handles:
//   - Locating .glitterrc, .glitterrc.json or .glitterrc.toml in the working directory
//   - JSON files with comments and TOML files
//   - Defaults for the commit message template and the "default config" marker
package config
