package config

import "path/filepath"

const (
	defaultConfigPath        = "~/.config/hoarder/config.toml"
	projectConfigName        = "hoarder.toml"
	defaultTMDBBaseURL       = "https://api.themoviedb.org/3"
	defaultTMDBLanguage      = "en-US"
	defaultTMDBTimeout       = 10
	defaultRequestsPerSecond = 20
	defaultCacheTTLHours     = 24 * 30
	defaultImagePrefix       = "IMG_"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:           defaultTMDBBaseURL,
			Language:          defaultTMDBLanguage,
			TimeoutSeconds:    defaultTMDBTimeout,
			RequestsPerSecond: defaultRequestsPerSecond,
		},
		LookupCache: LookupCache{
			Enabled:  true,
			Path:     filepath.Join(defaultCacheDir(), "lookup.db"),
			TTLHours: defaultCacheTTLHours,
		},
		Rename: Rename{
			ImagePrefix: defaultImagePrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
