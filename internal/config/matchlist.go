package config

// MatchListConfig controls how we talk to the upstream match-list feed.
type MatchListConfig struct {
	BaseURL     string
	Path        string
	SportID     string
	APIHost     string
	APIKey      string
	Timeout     Duration
	MinInterval Duration
}

func loadMatchList() MatchListConfig {
	return MatchListConfig{
		BaseURL:     envOrDefault(envMatchListBaseURL, defaultMatchListBaseURL),
		Path:        envOrDefault(envMatchListPath, defaultMatchListPath),
		SportID:     envOrDefault(envMatchListSportID, defaultMatchListSportID),
		APIHost:     envOrDefault(envRapidAPIHost, ""),
		APIKey:      envOrDefault(envRapidAPIKey, ""),
		Timeout:     durationEnvOrDefault(envMatchListTimeout, defaultMatchListTimeout),
		MinInterval: durationEnvOrDefault(envMatchListMinInterval, defaultMatchListMinInterval),
	}
}
