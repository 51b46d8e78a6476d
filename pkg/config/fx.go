package config

import "go.uber.org/fx"

// Module provides the default *Config. The CLI replaces it with the result of
// Resolve before any command runs, so a bad config file is reported as a
// command failure rather than failing application startup.
var Module = fx.Module("config", fx.Provide(Default))
