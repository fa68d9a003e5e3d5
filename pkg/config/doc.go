// Package config loads insightdump settings from, in increasing priority:
// the embedded defaults, the user config file, INSIGHT_* environment
// variables and explicit overrides (command-line flags).
package config
