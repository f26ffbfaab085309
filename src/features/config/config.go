package config

// Config holds the application configuration.
type Config struct {
	Monitor  Monitor  `yaml:"monitor"`
	Sensors  Sensors  `yaml:"sensors"`
	Logger   Logger   `yaml:"logger"`
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Telegram Telegram `yaml:"telegram"`
}

// Monitor holds the configuration for the file monitor itself.
type Monitor struct {
	// Path of the text file to monitor. May be empty, in which case the
	// monitor reports a configuration error until a path is set.
	Path                string `yaml:"path"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds" validate:"min=1"`
	// Continuous enables OS change notifications on top of polling.
	Continuous       bool `yaml:"continuous"`
	MaxContentLength int  `yaml:"max_content_length" validate:"min=100"`
}

// Sensors holds the configuration for the derived display values.
type Sensors struct {
	PreviewLength int `yaml:"preview_length" validate:"min=1"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Server holds the configuration for the Fiber server.
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Database holds the configuration for the emission history store.
type Database struct {
	Path    string `yaml:"path" validate:"required"`
	MaxRows int    `yaml:"max_rows" validate:"min=1"`
}

// Telegram holds the configuration for the optional change notifier.
type Telegram struct {
	Enabled bool    `yaml:"enabled"`
	Token   string  `yaml:"token"`
	ChatIDs []int64 `yaml:"chat_ids"`
}
