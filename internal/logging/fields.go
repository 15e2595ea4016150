package logging

// Structured log keys shared across packages.
const (
	FieldService     = "service"
	FieldVersion     = "version"
	FieldProvider    = "provider"
	FieldRequestID   = "request_id"
	FieldPath        = "path"
	FieldMethod      = "method"
	FieldStatusCode  = "status_code"
	FieldCount       = "count"
	FieldDurationMS  = "duration_ms"
	FieldError       = "error"
	FieldCompetition = "competition_id"
	FieldMatchID     = "gmid"
	FieldAttempt     = "attempt"
)
