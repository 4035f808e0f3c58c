package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingSuccessKey    = "success"
	LoggingDurationKey   = "duration"
	LoggingUserIDKey     = "user_id"
	LoggingPatientIDKey  = "patient_id"
)
