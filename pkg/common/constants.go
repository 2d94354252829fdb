package common

const (
	// DefaultSeedKeyword is loaded automatically on a session's first activation.
	DefaultSeedKeyword = "AAPL"

	// DefaultBackendBaseURL is used when backend.base_url is unset.
	DefaultBackendBaseURL = "http://localhost:8000"

	RedisKeyViewStatePrefix = "dashboard:session:"

	SessionCookieName = "dashboard_session"

	// ReportDateLayout is the wire format of email report dates.
	ReportDateLayout = "2006-01-02"
)
