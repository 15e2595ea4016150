package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	PollCooldown Duration
	CacheTTL     Duration
	Provider     string
	LeaguesFile  string
	// AllowedCompetitions is used when no leagues file is configured.
	AllowedCompetitions []int64
	AdminToken          string
	HTTP                HTTPConfig
	Log                 LogConfig
	MatchList           MatchListConfig
	Metrics             MetricsConfig
	Snapshots           SnapshotConfig
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                envOrDefault(envPort, defaultPort),
		PollInterval:        durationEnvOrDefault(envPollInterval, defaultPollInterval),
		PollCooldown:        durationEnvOrDefault(envPollCooldown, defaultPollCooldown),
		CacheTTL:            durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		Provider:            envOrDefault(envProvider, defaultProvider),
		LeaguesFile:         envOrDefault(envLeaguesFile, ""),
		AllowedCompetitions: idListEnv(envAllowedComps),
		AdminToken:          envOrDefault(envAdminToken, ""),
		HTTP:                loadHTTP(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		MatchList: loadMatchList(),
		Metrics:   loadMetrics(),
		Snapshots: loadSnapshots(),
	}
}
