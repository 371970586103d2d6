package config

import "strings"

// normalize expands path fields and backfills empty values with defaults.
func (c *Config) normalize() error {
	defaults := Default()

	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaults.Paths.DataDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaults.Paths.LogDir
	}
	if strings.TrimSpace(c.Paths.Socket) == "" {
		c.Paths.Socket = defaults.Paths.Socket
	}

	for _, field := range []*string{&c.Paths.DataDir, &c.Paths.LogDir, &c.Paths.Socket} {
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	// ShellSocket stays empty when the desktop shell is not attached.
	if strings.TrimSpace(c.Paths.ShellSocket) != "" {
		expanded, err := expandPath(c.Paths.ShellSocket)
		if err != nil {
			return err
		}
		c.Paths.ShellSocket = expanded
	}

	c.AniList.BaseURL = strings.TrimRight(strings.TrimSpace(c.AniList.BaseURL), "/")
	if c.AniList.BaseURL == "" {
		c.AniList.BaseURL = defaults.AniList.BaseURL
	}
	if c.AniList.RequestTimeout <= 0 {
		c.AniList.RequestTimeout = defaults.AniList.RequestTimeout
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = defaults.Search.DebounceMS
	}
	if strings.TrimSpace(c.Theme.Default) == "" {
		c.Theme.Default = defaults.Theme.Default
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	return nil
}
