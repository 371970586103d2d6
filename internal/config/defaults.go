package config

const (
	defaultDataDir        = "~/.local/share/aniweek"
	defaultLogDir         = "~/.local/share/aniweek/logs"
	defaultSocket         = "~/.local/share/aniweek/aniweek.sock"
	defaultAniListBaseURL = "https://graphql.anilist.co"
	defaultRequestTimeout = 10
	defaultDebounceMS     = 500
	defaultTheme          = "orange-flame"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			Socket:  defaultSocket,
		},
		AniList: AniList{
			BaseURL:        defaultAniListBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Search: Search{
			DebounceMS: defaultDebounceMS,
		},
		Theme: Theme{
			Default: defaultTheme,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
