package config

const (
	defaultConfigPath        = "~/.config/discsub/config.toml"
	defaultRedumpBaseURL     = "http://redump.org"
	defaultRedumpForumURL    = "http://forum.redump.org"
	defaultUserAgent         = "discsub/dev"
	defaultRequestTimeout    = 30
	defaultRequestsPerSecond = 2.0
	defaultOutputDir         = "."
	defaultMatchCachePath    = "~/.cache/discsub/matches.db"
	defaultMatchCacheMaxAge  = 168
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Redump: Redump{
			BaseURL:           defaultRedumpBaseURL,
			ForumURL:          defaultRedumpForumURL,
			UserAgent:         defaultUserAgent,
			RequestTimeout:    defaultRequestTimeout,
			RequestsPerSecond: defaultRequestsPerSecond,
		},
		Submission: Submission{
			OutputDir:           defaultOutputDir,
			RedumpCompatibility: true,
			NormalizeTitles:     true,
		},
		MatchCache: MatchCache{
			Enabled:     false,
			Path:        defaultMatchCachePath,
			MaxAgeHours: defaultMatchCacheMaxAge,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
