package config

const (
	defaultConfigPath  = "~/.config/mediaorg/config.toml"
	projectConfigName  = "mediaorg.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultCreatedTime = "auto"
	defaultTimezone    = "Local"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Organize: Organize{
			IgnoreHidden: true,
			CreatedTime:  defaultCreatedTime,
			Timezone:     defaultTimezone,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
