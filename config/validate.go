package config

import (
	"fmt"
	"strings"

	"edna-quiz/quiz"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Source) == "" {
		return fmt.Errorf("data.source must not be empty")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 0..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %v)", c.Server.RateLimit)
	}

	switch quiz.Level(c.Quiz.Level) {
	case quiz.LevelIcons, quiz.LevelSequences:
	default:
		return fmt.Errorf("quiz.level must be %q or %q (got %q)", quiz.LevelIcons, quiz.LevelSequences, c.Quiz.Level)
	}
	if _, ok := quiz.ParseLocale(c.Quiz.Lang); !ok && c.Quiz.Lang != "" {
		return fmt.Errorf("quiz.lang must be en or cz (got %q)", c.Quiz.Lang)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	return nil
}

// Addr is the server listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
