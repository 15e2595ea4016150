package rapidapi

import "time"

const (
	providerName = "rapidapi"

	defaultBaseURL     = "https://all-sport-live-stream.p.rapidapi.com"
	defaultPath        = "/api/d/match_list"
	defaultSportID     = "1"
	defaultHTTPTimeout = 10 * time.Second

	headerAPIHost    = "x-rapidapi-host"
	headerAPIKey     = "x-rapidapi-key"
	headerRetryAfter = "Retry-After"
	headerRemaining  = "X-RateLimit-Requests-Remaining"

	maxErrorBody = 512
)
