package config

import "time"

// Config is the root application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Server ServerConfig `yaml:"server"`
	Quiz   QuizConfig   `yaml:"quiz"`
	Log    LogConfig    `yaml:"log"`
}

// DataConfig locates the dataset.
type DataConfig struct {
	// Source is a file path or an http(s) URL.
	Source string `yaml:"source" env:"DATA_SOURCE" env-default:"data.json"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"localhost"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// HostPage is an HTML file to render into; empty uses the built-in page.
	HostPage  string  `yaml:"host_page"  env:"SERVER_HOST_PAGE"`
	RateLimit float64 `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"20"`
	Burst     int     `yaml:"burst"      env:"SERVER_BURST"      env-default:"40"`
}

// QuizConfig holds the quiz defaults for both front ends. The web server
// applies them to requests that name no level or lang. An empty Lang
// means English in the terminal and host page detection on the web.
type QuizConfig struct {
	Level string `yaml:"level" env:"QUIZ_LEVEL" env-default:"icons"`
	Lang  string `yaml:"lang"  env:"QUIZ_LANG"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	// File receives the log while the terminal quiz owns the screen;
	// empty discards it.
	File string `yaml:"file" env:"LOG_FILE"`
}
