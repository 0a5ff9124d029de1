package errors

// ErrorCode identifies a class of application error
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1006

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002

	// Meetings
	ErrorCode_MEETING_NOT_FOUND          ErrorCode = 3000
	ErrorCode_MEETING_INDEX_OUT_OF_RANGE ErrorCode = 3001
	ErrorCode_INVALID_DATE_RANGE         ErrorCode = 3002

	// Pipeline
	ErrorCode_PIPELINE_RUN_FAILED ErrorCode = 4000
	ErrorCode_PIPELINE_NO_OUTPUT  ErrorCode = 4001

	// Publishing
	ErrorCode_PUBLISH_FAILED          ErrorCode = 5000
	ErrorCode_PUBLISH_INVALID_STATUS  ErrorCode = 5001
	ErrorCode_SOCIAL_PUBLISH_FAILED   ErrorCode = 5002
	ErrorCode_PUBLISH_MISSING_CONTENT ErrorCode = 5003

	// Integrations
	ErrorCode_INTEGRATION_FIREFLIES_FAILED ErrorCode = 6000
	ErrorCode_INTEGRATION_GROQ_FAILED      ErrorCode = 6001
	ErrorCode_INTEGRATION_STORAGE_FAILED   ErrorCode = 6002
	ErrorCode_INTEGRATION_CACHE_FAILED     ErrorCode = 6003

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 7000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                      "OK",
	ErrorCode_INTERNAL:                     "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:             "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                    "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:               "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:            "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:              "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:              "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:           "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:           "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:     "AUTH_INVALID_CREDENTIALS",
	ErrorCode_MEETING_NOT_FOUND:            "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INDEX_OUT_OF_RANGE:   "MEETING_INDEX_OUT_OF_RANGE",
	ErrorCode_INVALID_DATE_RANGE:           "INVALID_DATE_RANGE",
	ErrorCode_PIPELINE_RUN_FAILED:          "PIPELINE_RUN_FAILED",
	ErrorCode_PIPELINE_NO_OUTPUT:           "PIPELINE_NO_OUTPUT",
	ErrorCode_PUBLISH_FAILED:               "PUBLISH_FAILED",
	ErrorCode_PUBLISH_INVALID_STATUS:       "PUBLISH_INVALID_STATUS",
	ErrorCode_SOCIAL_PUBLISH_FAILED:        "SOCIAL_PUBLISH_FAILED",
	ErrorCode_PUBLISH_MISSING_CONTENT:      "PUBLISH_MISSING_CONTENT",
	ErrorCode_INTEGRATION_FIREFLIES_FAILED: "INTEGRATION_FIREFLIES_FAILED",
	ErrorCode_INTEGRATION_GROQ_FAILED:      "INTEGRATION_GROQ_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:   "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:     "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:              "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
